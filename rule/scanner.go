package rule

import (
	"strings"
	"unicode/utf8"
)

// DefaultSkip is the whitespace skipped before terminals when no
// [WithSkip] option is given.
const DefaultSkip = " \t\n\r"

// Position locates a point in the scanner input.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Scanner walks input text with line and column tracking.
// Rules consume it left to right and rewind it on failed alternatives.
type Scanner struct {
	input  []byte
	pos    int
	line   int
	col    int
	skip   string
	noskip bool
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithSkip sets the characters skipped before each terminal match.
// Pass an empty string to make all whitespace significant.
func WithSkip(chars string) ScannerOption {
	return func(s *Scanner) {
		s.skip = chars
	}
}

// NewScanner creates a scanner over input.
func NewScanner(input string, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		input: []byte(input),
		pos:   0,
		line:  1,
		col:   1,
		skip:  DefaultSkip,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Offset returns the current byte offset into the input.
func (s *Scanner) Offset() int { return s.pos }

// Text returns the verbatim input between two byte offsets.
func (s *Scanner) Text(start, end int) string {
	if start < 0 || end > len(s.input) || start > end {
		return ""
	}

	return string(s.input[start:end])
}

// Position returns the current position.
func (s *Scanner) Position() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.col,
	}
}

func (s *Scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *Scanner) peek() rune {
	if s.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(s.input[s.pos:])

	return r
}

func (s *Scanner) advance() {
	if s.eof() {
		return
	}

	r, size := utf8.DecodeRune(s.input[s.pos:])

	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

// skipSpace advances past skip-set characters unless skipping is suspended
// by an enclosing [Adjacent] rule.
func (s *Scanner) skipSpace() {
	if s.noskip {
		return
	}

	for !s.eof() && strings.ContainsRune(s.skip, s.peek()) {
		s.advance()
	}
}

// mark captures scanner state for backtracking.
type mark struct {
	pos  int
	line int
	col  int
}

func (s *Scanner) mark() mark {
	return mark{pos: s.pos, line: s.line, col: s.col}
}

func (s *Scanner) restore(m mark) {
	s.pos = m.pos
	s.line = m.line
	s.col = m.col
}
