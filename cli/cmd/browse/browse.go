// Package browse implements the interactive result-document viewer.
//
// A parsed document is presented as a scrollable table, one column per
// projected variable, with an incremental fuzzy filter over row contents.
package browse

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sparqlet/sparqlet/cli/cmd"
	"github.com/sparqlet/sparqlet/log"
	"github.com/sparqlet/sparqlet/results/tsv"
)

// Browse is the command that opens a result document in an interactive
// table.
type Browse struct {
	Source string `arg:"" default:"-" help:"Result document file or '-' for stdin" optional:""`

	Height int `default:"20" help:"Maximum number of table rows shown at once" short:"n"`
}

// Run parses the source document and starts the interactive viewer.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	in, err := cmd.OpenSource(ctx, b.Source)
	if err != nil {
		return err
	}
	defer in.Close()

	logger := log.Default()

	result, err := tsv.Parse(ctx, in, tsv.WithLogger(logger))
	if err != nil {
		return err
	}

	if len(result.Vars) == 0 {
		return ErrEmptyDocument
	}

	logger.TraceContext(
		ctx,
		"browse start",
		slog.String("source", b.Source),
		slog.Int("var_count", len(result.Vars)),
		slog.Int("row_count", len(result.Bindings)),
	)

	m := newModel(ctx, result, b.Height, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()

	return err
}
