package gram

import (
	"log/slog"

	"github.com/sparqlet/sparqlet/rule"
	"github.com/sparqlet/sparqlet/term"
)

// resolveConfig holds the caller-selectable resolution policies.
type resolveConfig struct {
	unbound bool
	errors  bool
}

// ResolveOption configures [Resolve].
type ResolveOption func(*resolveConfig)

// AllowUnbound makes resolution return unbound variables and blank nodes
// unchanged instead of failing with [ErrNotBound].
func AllowUnbound() ResolveOption {
	return func(c *resolveConfig) {
		c.unbound = true
	}
}

// AllowErrors makes resolution return a stored evaluation-domain error as
// an ordinary value instead of propagating it.
func AllowErrors() ResolveOption {
	return func(c *resolveConfig) {
		c.errors = true
	}
}

// Resolve turns a possibly-symbolic value into a concrete one against a
// binding context. It is the single dereferencing routine used everywhere:
//
//   - an evaluable node is evaluated recursively;
//   - a bare attributed node is a defect ([ErrOpaqueNode]);
//   - ordered sequences are resolved element-wise, preserving length and
//     order;
//   - variables and blank nodes are looked up in ctx subject to the
//     [AllowUnbound] and [AllowErrors] policies;
//   - a singleton raw match sequence is collapsed and resolved;
//   - anything else is already concrete and returned unchanged.
func Resolve(ctx Context, v any, opts ...ResolveOption) (any, error) {
	var cfg resolveConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	return resolve(ctx, v, cfg)
}

func resolve(ctx Context, v any, cfg resolveConfig) (any, error) {
	switch x := v.(type) {
	case *Expr:
		return x.Eval(ctx)

	case *CompValue:
		return nil, ErrOpaqueNode.With(slog.String("tag", x.Tag()))

	case List:
		out := make(List, len(x))

		for i, e := range x {
			r, err := resolve(ctx, e, cfg)
			if err != nil {
				return nil, err
			}

			out[i] = r
		}

		return out, nil

	case []any:
		out := make([]any, len(x))

		for i, e := range x {
			r, err := resolve(ctx, e, cfg)
			if err != nil {
				return nil, err
			}

			out[i] = r
		}

		return out, nil

	case term.Variable:
		return lookup(ctx, x, cfg)

	case term.BNode:
		return lookup(ctx, x, cfg)

	case rule.Tokens:
		if len(x) == 1 {
			return resolve(ctx, x[0], cfg)
		}

		return v, nil

	default:
		return v, nil
	}
}

// lookup dereferences a variable or blank-node placeholder through the
// context.
func lookup(ctx Context, key term.Term, cfg resolveConfig) (any, error) {
	if ctx != nil {
		r, ok := ctx.Get(key)

		if err, failed := r.(error); failed && IsDomainError(err) && !cfg.errors {
			// A previously failed sub-computation was stored under this
			// binding; surface it unless the caller opted in.
			return nil, err
		}

		if ok && r != nil {
			return r, nil
		}
	}

	if cfg.unbound {
		return key, nil
	}

	return nil, ErrNotBound.With(slog.String("name", key.String()))
}
