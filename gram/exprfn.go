package gram

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sparqlet/sparqlet/term"
)

// enumerable is implemented by contexts that can list their bindings, such
// as [Bindings]. The Context interface itself only supports lookup, so the
// expr bridge enumerates bindings when the concrete type allows it.
type enumerable interface {
	Each(fn func(term.Term, any) bool)
}

// ExprEvalFn compiles an expr-lang program into an [EvalFn].
//
// The program runs with an environment containing the node's resolved
// attributes plus, when the context is enumerable, every context binding
// keyed by its bare name. RDF literals are converted to Go-native values so
// arithmetic and comparison work directly.
//
// The optional vars name identifiers the caller expects the environment to
// supply (a result document's header variables, for example). Each named
// identifier is resolved as an environment variable even when it collides
// with an expr built-in function such as count or len; built-ins not named
// remain available.
//
// Compilation failures are defects; runtime failures of the program are
// evaluation-domain errors and therefore flow as values through
// [Expr.Eval].
func ExprEvalFn(source string, vars ...string) (EvalFn, error) {
	opts := make([]expr.Option, 0, len(vars)+1)
	opts = append(opts, expr.AllowUndefinedVariables())

	for _, v := range vars {
		opts = append(opts, expr.DisableBuiltin(v))
	}

	prog, err := expr.Compile(source, opts...)
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return func(ctx Context, n *CompValue) (any, error) {
		env, err := exprEnv(ctx, n)
		if err != nil {
			return nil, err
		}

		out, err := vm.Run(prog, env)
		if err != nil {
			return nil, ErrEval.Wrap(err).
				With(slog.String("source", source))
		}

		return out, nil
	}, nil
}

// exprEnv builds the program environment from context bindings and the
// node's attributes. Attributes shadow context bindings of the same name.
func exprEnv(ctx Context, n *CompValue) (map[string]any, error) {
	env := make(map[string]any)

	if each, ok := ctx.(enumerable); ok {
		each.Each(func(k term.Term, v any) bool {
			env[bareName(k)] = nativize(v)

			return true
		})
	}

	for _, k := range n.Keys() {
		v, err := n.Get(ctx, k, AllowUnbound())
		if err != nil {
			return nil, err
		}

		env[k] = nativize(v)
	}

	return env, nil
}

// bareName strips the surface-syntax sigil from variable and blank-node
// keys so programs reference them as plain identifiers.
func bareName(t term.Term) string {
	switch x := t.(type) {
	case term.Variable:
		return string(x)

	case term.BNode:
		return string(x)

	default:
		return t.String()
	}
}

func nativize(v any) any {
	if t, ok := v.(term.Term); ok {
		return term.Native(t)
	}

	return v
}
