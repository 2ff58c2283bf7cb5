package tsv

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/sparqlet/sparqlet/gram"
	"github.com/sparqlet/sparqlet/log"
	"github.com/sparqlet/sparqlet/rule"
	"github.com/sparqlet/sparqlet/term"
)

// Predefined errors (sentinel values).
var (
	// ErrMissingHeader is returned when the input has no header line.
	ErrMissingHeader = gram.NewError("missing header line")

	// ErrHeader is returned when the header line does not parse as
	// tab-separated variable names.
	ErrHeader = gram.NewError("malformed header line")

	// ErrRow is returned when a data line does not parse as tab-separated
	// terms.
	ErrRow = gram.NewError("malformed result row")

	// ErrBadTerm is returned when a row matched a node the converter does
	// not recognize.
	ErrBadTerm = gram.NewError("unhandled term in result row")
)

// maxLineBytes bounds a single header or data line.
const maxLineBytes = 1 << 20

// Result is a parsed tabular result set.
type Result struct {
	Vars     []term.Variable
	Bindings []Binding
}

// Binding maps the header variables of one row to their terms. An unbound
// variable is present with a nil value, mirroring the empty field in the
// source row.
type Binding map[term.Variable]term.Term

// Get implements [gram.Context], so a row can back evaluation directly.
// Unbound variables report absent.
func (b Binding) Get(key term.Term) (any, bool) {
	v, ok := key.(term.Variable)
	if !ok {
		return nil, false
	}

	t, ok := b[v]
	if !ok || t == nil {
		return nil, false
	}

	return t, true
}

// Each visits every bound variable of the row until fn returns false.
func (b Binding) Each(fn func(term.Term, any) bool) {
	for k, v := range b {
		if v == nil {
			continue
		}

		if !fn(k, v) {
			return
		}
	}
}

// config holds parsing options.
type config struct {
	logger  log.Logger
	nocache bool
}

// Option configures parsing.
type Option func(*config)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithoutCache disables the parsed-document cache used by [ParseString].
func WithoutCache() Option {
	return func(c *config) {
		c.nocache = true
	}
}

// Parse reads a tab-separated result document: one header line of variable
// names followed by zero or more data lines. Input bytes are decoded as
// UTF-8, and blank lines between rows are ignored.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	// Wrap the reader with async read-ahead so input is pre-fetched while
	// earlier rows are still parsing.
	ra := readahead.NewReader(r)
	defer ra.Close()

	sc := bufio.NewScanner(ra)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, gram.WrapError(err)
		}

		return nil, ErrMissingHeader
	}

	head, err := rule.ParseString(
		headerRule,
		strings.TrimSpace(sc.Text()),
		rule.WithSkip(fieldSkip),
	)
	if err != nil {
		return nil, ErrHeader.Wrap(err)
	}

	res := &Result{Vars: make([]term.Variable, len(head))}

	for i, tok := range head {
		res.Vars[i] = tok.(term.Variable)
	}

	cfg.logger.TraceContext(ctx, "header parsed",
		slog.Int("variables", len(res.Vars)))

	lineNo := 1

	for sc.Scan() {
		lineNo++

		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, ErrRow.Wrap(err).With(slog.Int("line", lineNo))
		}

		res.Bindings = append(res.Bindings, bind(res.Vars, row))
	}

	if err := sc.Err(); err != nil {
		return nil, gram.WrapError(err)
	}

	cfg.logger.TraceContext(ctx, "document parsed",
		slog.Int("rows", len(res.Bindings)))

	return res, nil
}

// parseRow matches one data line and converts its fields to terms.
func parseRow(line string) ([]term.Term, error) {
	toks, err := rule.ParseString(rowRule, line, rule.WithSkip(fieldSkip))
	if err != nil {
		return nil, err
	}

	terms := make([]term.Term, len(toks))

	for i, tok := range toks {
		t, err := convertTerm(tok)
		if err != nil {
			return nil, err
		}

		terms[i] = t
	}

	return terms, nil
}

// bind zips header variables with row terms positionally. A short row
// leaves its trailing variables out, matching the source truncation.
func bind(vars []term.Variable, terms []term.Term) Binding {
	b := make(Binding, len(vars))

	for i, v := range vars {
		if i >= len(terms) {
			break
		}

		b[v] = terms[i]
	}

	return b
}

// convertTerm turns one matched row token into a concrete term, or nil for
// an empty field. A literal node's attributes are always concrete at this
// grammar's level, so they are read directly with no context.
func convertTerm(v any) (term.Term, error) {
	switch x := v.(type) {
	case unbound:
		return nil, nil

	case *gram.CompValue:
		if x.Tag() != "literal" {
			return nil, ErrBadTerm.With(slog.String("tag", x.Tag()))
		}

		lex, _ := x.Value("string").(string)
		lang, _ := x.Value("lang").(string)
		dt, _ := x.Value("datatype").(term.IRI)

		return term.NewLiteral(lex, lang, dt), nil

	case term.Term:
		return x, nil

	default:
		return nil, ErrBadTerm.With(slog.Any("token", v))
	}
}
