package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sparqlet/sparqlet/gram"
	"github.com/sparqlet/sparqlet/log"
	"github.com/sparqlet/sparqlet/results/tsv"
	"github.com/sparqlet/sparqlet/term"
)

// Eval compiles an expression and evaluates it against each row of a result
// document, printing one value per row.
//
// The expression references row variables by bare name, so a document with
// header "?a\t?b" exposes identifiers a and b. The same compiled expression
// is shared across all rows; only the binding context changes.
type Eval struct {
	Expr   string `arg:"" help:"Expression over row bindings" name:"expr"`
	Source string `       help:"Result document file or '-' for stdin" default:"-" short:"f"`

	SkipUnbound bool `help:"Skip rows with unbound variables instead of exposing them as nil" short:"u"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := parseSource(ctx, e.Source)
	if err != nil {
		return err
	}

	// Compile with the header variables declared so names like count or
	// len resolve to row bindings instead of expr built-ins.
	names := make([]string, len(res.Vars))
	for i, v := range res.Vars {
		names[i] = string(v)
	}

	fn, err := gram.ExprEvalFn(e.Expr, names...)
	if err != nil {
		return ErrExpression.Wrap(err).
			With(slog.String("expr", e.Expr))
	}

	node := gram.NewExpr("expression", fn)

	log.DebugContext(ctx, "evaluating rows",
		slog.String("expr", e.Expr),
		slog.Int("rows", len(res.Bindings)),
	)

	for i, row := range res.Bindings {
		if e.SkipUnbound && rowHasUnbound(row, res.Vars) {
			continue
		}

		v, err := node.Eval(row)
		if err != nil {
			// A defect in the expression or grammar aborts the run.
			return gram.WrapError(err).
				With(slog.Int("row", i+1))
		}

		// Evaluation-domain failures arrive as values; report them per
		// row without aborting the remaining rows.
		if rowErr, ok := v.(error); ok {
			fmt.Fprintf(os.Stdout, "error: %v\n", rowErr)

			continue
		}

		fmt.Fprintf(os.Stdout, "%v\n", v)
	}

	return nil
}

// rowHasUnbound reports whether any projected variable is unbound in row.
func rowHasUnbound(row tsv.Binding, vars []term.Variable) bool {
	for _, v := range vars {
		if t, ok := row[v]; ok && t == nil {
			return true
		}
	}

	return false
}
