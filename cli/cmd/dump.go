package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/sparqlet/sparqlet/log"
	"github.com/sparqlet/sparqlet/results/tsv"
)

// Dump parses a result document and prints it in the chosen format.
type Dump struct {
	Tree Tree `cmd:"" default:"withargs" help:"Render rows as an indented tree (default)."`
	YAML YAML `cmd:""                    help:"Render rows as YAML."`
	JSON JSON `cmd:""                    help:"Render rows as JSON."`
}

// parseSource opens and parses the result document named by source.
func parseSource(ctx context.Context, source string) (*tsv.Result, error) {
	in, err := OpenSource(ctx, source)
	if err != nil {
		return nil, ErrReadSource.Wrap(err).
			With(slog.String("source", source))
	}
	defer in.Close()

	return tsv.Parse(ctx, in, tsv.WithLogger(log.Default()))
}

// Tree renders each row as an indented attribute listing.
type Tree struct {
	Source string `arg:"" default:"-" help:"Result document file or '-' for default stdin." name:"source"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := parseSource(ctx, t.Source)
	if err != nil {
		return err
	}

	return writeTree(os.Stdout, res)
}

// writeTree renders rows in the same indented form the node prettifier uses.
func writeTree(w io.Writer, res *tsv.Result) error {
	for i, row := range res.Bindings {
		_, err := fmt.Fprintf(w, "> row %d:\n", i+1)
		if err != nil {
			return err
		}

		for _, v := range res.Vars {
			t := row[v]
			if t == nil {
				_, err = fmt.Fprintf(w, "  - %s: UNDEF\n", v)
			} else {
				_, err = fmt.Fprintf(w, "  - %s: %s\n", v, t)
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}

// YAML renders rows as a YAML sequence of mappings.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Result document file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := parseSource(ctx, y.Source)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout, yaml.Indent(y.Indent))

	err = enc.Encode(rowSlices(res))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return enc.Close()
}

// rowSlices renders each row as an ordered mapping from variable name to
// the term's surface syntax, preserving header order. Unbound variables
// map to null.
func rowSlices(res *tsv.Result) []yaml.MapSlice {
	rows := make([]yaml.MapSlice, len(res.Bindings))

	for i, row := range res.Bindings {
		ms := make(yaml.MapSlice, 0, len(res.Vars))

		for _, v := range res.Vars {
			var val any
			if t := row[v]; t != nil {
				val = t.String()
			}

			ms = append(ms, yaml.MapItem{Key: string(v), Value: val})
		}

		rows[i] = ms
	}

	return rows
}

// JSON renders rows as a JSON array of objects.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Result document file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	res, err := parseSource(ctx, j.Source)
	if err != nil {
		return err
	}

	rows := make([]map[string]any, len(res.Bindings))

	for i, row := range res.Bindings {
		m := make(map[string]any, len(res.Vars))

		for _, v := range res.Vars {
			if t := row[v]; t != nil {
				m[string(v)] = t.String()
			} else {
				m[string(v)] = nil
			}
		}

		rows[i] = m
	}

	buf, err := json.MarshalIndent(rows, "", indentString(j.Indent))
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(os.Stdout, string(buf))

	return err
}

func indentString(width int) string {
	if width < 0 {
		width = 0
	}

	b := make([]byte, width)
	for i := range b {
		b[i] = ' '
	}

	return string(b)
}
