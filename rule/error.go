package rule

import (
	"strconv"
	"strings"
)

// MatchError reports a failed match with the position it failed at and a
// description of what the failing rule expected.
type MatchError struct {
	Pos      Position
	Expected string
}

func (s *Scanner) errExpected(expected string) *MatchError {
	return &MatchError{
		Pos:      s.Position(),
		Expected: expected,
	}
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	var b strings.Builder

	b.WriteString("line ")
	b.WriteString(strconv.Itoa(e.Pos.Line))
	b.WriteString(", column ")
	b.WriteString(strconv.Itoa(e.Pos.Column))
	b.WriteString(": expected ")
	b.WriteString(e.Expected)

	return b.String()
}

// furthest returns whichever error failed deeper into the input, preferring
// prev on ties so the first alternative's report wins.
func furthest(prev, next error) error {
	pe, pok := prev.(*MatchError)
	ne, nok := next.(*MatchError)

	switch {
	case prev == nil:
		return next

	case !pok || !nok:
		return prev

	case ne.Pos.Offset > pe.Pos.Offset:
		return next

	default:
		return prev
	}
}
