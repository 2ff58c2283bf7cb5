package rule

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokens is the ordered sequence of values emitted by a successful match.
type Tokens []any

// Rule matches a prefix of the scanner input and emits tokens.
// On failure the rule leaves the scanner where the failure occurred; callers
// that try alternatives are responsible for rewinding.
type Rule interface {
	Match(s *Scanner) (Tokens, error)
}

// ParseString matches r against the whole of input, failing if any input
// other than trailing skip characters remains.
func ParseString(r Rule, input string, opts ...ScannerOption) (Tokens, error) {
	s := NewScanner(input, opts...)

	toks, err := r.Match(s)
	if err != nil {
		return nil, err
	}

	s.skipSpace()

	if !s.eof() {
		return nil, s.errExpected("end of input")
	}

	return toks, nil
}

// lit matches literal text.
type lit struct {
	text string
}

// Lit matches text exactly and emits it as a single token.
func Lit(text string) Rule { return lit{text: text} }

func (r lit) Match(s *Scanner) (Tokens, error) {
	s.skipSpace()

	if !strings.HasPrefix(string(s.input[s.pos:]), r.text) {
		return nil, s.errExpected(strconv.Quote(r.text))
	}

	for range utf8.RuneCountInString(r.text) {
		s.advance()
	}

	return Tokens{r.text}, nil
}

// pattern matches an anchored regular expression.
type pattern struct {
	re   *regexp.Regexp
	name string
}

// Pattern matches the regular expression expr at the scanner position and
// emits the matched text as a single token. The expression is compiled
// anchored; it must not be able to match empty input.
func Pattern(expr string) Rule {
	return pattern{
		re:   regexp.MustCompile(`^(?:` + expr + `)`),
		name: expr,
	}
}

func (r pattern) Match(s *Scanner) (Tokens, error) {
	s.skipSpace()

	m := r.re.Find(s.input[s.pos:])
	if m == nil {
		return nil, s.errExpected(r.name)
	}

	for range utf8.RuneCount(m) {
		s.advance()
	}

	return Tokens{string(m)}, nil
}

// seq matches rules in order.
type seq struct {
	rules []Rule
}

// Seq matches each rule in order, concatenating their tokens.
func Seq(rules ...Rule) Rule { return seq{rules: rules} }

func (r seq) Match(s *Scanner) (Tokens, error) {
	var out Tokens

	for _, sub := range r.rules {
		toks, err := sub.Match(s)
		if err != nil {
			return nil, err
		}

		out = append(out, toks...)
	}

	return out, nil
}

// alt matches the first succeeding alternative.
type alt struct {
	rules []Rule
}

// Alt tries each rule in order from the same position and returns the first
// success. On overall failure it reports the alternative that matched
// furthest into the input.
func Alt(rules ...Rule) Rule { return alt{rules: rules} }

func (r alt) Match(s *Scanner) (Tokens, error) {
	m := s.mark()

	var deepest error

	for _, sub := range r.rules {
		toks, err := sub.Match(s)
		if err == nil {
			return toks, nil
		}

		deepest = furthest(deepest, err)

		s.restore(m)
	}

	if deepest == nil {
		deepest = s.errExpected("one of no alternatives")
	}

	return nil, deepest
}

// opt makes a rule optional.
type opt struct {
	rule Rule
}

// Opt matches rule if possible, succeeding with no tokens otherwise.
func Opt(rule Rule) Rule { return opt{rule: rule} }

func (r opt) Match(s *Scanner) (Tokens, error) {
	m := s.mark()

	toks, err := r.rule.Match(s)
	if err != nil {
		s.restore(m)

		return nil, nil
	}

	return toks, nil
}

// repeat matches a rule at least min times.
type repeat struct {
	rule Rule
	min  int
}

// ZeroOrMore matches rule as many times as possible, concatenating tokens.
func ZeroOrMore(rule Rule) Rule { return repeat{rule: rule, min: 0} }

// OneOrMore matches rule one or more times, concatenating tokens.
func OneOrMore(rule Rule) Rule { return repeat{rule: rule, min: 1} }

func (r repeat) Match(s *Scanner) (Tokens, error) {
	var out Tokens

	count := 0

	for {
		m := s.mark()

		toks, err := r.rule.Match(s)
		if err != nil {
			s.restore(m)

			break
		}

		// A successful match that consumes nothing would loop forever.
		if s.pos == m.pos {
			break
		}

		out = append(out, toks...)
		count++
	}

	if count < r.min {
		return nil, s.errExpected("at least one repetition")
	}

	return out, nil
}

// suppress matches a rule and discards its tokens.
type suppress struct {
	rule Rule
}

// Suppress matches rule but emits no tokens. Use it for punctuation and
// separators that carry no semantic content.
func Suppress(rule Rule) Rule { return suppress{rule: rule} }

func (r suppress) Match(s *Scanner) (Tokens, error) {
	_, err := r.rule.Match(s)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

// followedBy is a zero-width lookahead.
type followedBy struct {
	rule Rule
}

// FollowedBy succeeds when rule would match at the current position, without
// consuming input or emitting tokens.
func FollowedBy(rule Rule) Rule { return followedBy{rule: rule} }

func (r followedBy) Match(s *Scanner) (Tokens, error) {
	m := s.mark()

	_, err := r.rule.Match(s)

	s.restore(m)

	if err != nil {
		return nil, err
	}

	return nil, nil
}

// end matches only at end of input.
type end struct{}

// End succeeds at end of input, after skipping trailing skip characters.
func End() Rule { return end{} }

func (end) Match(s *Scanner) (Tokens, error) {
	m := s.mark()

	s.skipSpace()

	if !s.eof() {
		s.restore(m)

		return nil, s.errExpected("end of input")
	}

	s.restore(m)

	return nil, nil
}

// adjacent suspends whitespace skipping.
type adjacent struct {
	rule Rule
}

// Adjacent matches rule with whitespace skipping suspended, so the rule must
// match immediately at the current position.
func Adjacent(rule Rule) Rule { return adjacent{rule: rule} }

func (r adjacent) Match(s *Scanner) (Tokens, error) {
	prev := s.noskip
	s.noskip = true

	toks, err := r.rule.Match(s)

	s.noskip = prev

	return toks, err
}

// action transforms tokens after a match.
type action struct {
	rule Rule
	fn   func(Tokens) Tokens
}

// Action matches rule and passes its tokens through fn. The function may
// replace, reduce, or extend the emitted tokens.
func Action(rule Rule, fn func(Tokens) Tokens) Rule {
	return action{rule: rule, fn: fn}
}

func (r action) Match(s *Scanner) (Tokens, error) {
	toks, err := r.rule.Match(s)
	if err != nil {
		return nil, err
	}

	return r.fn(toks), nil
}

// Forward is a rule resolved after construction, enabling recursive
// grammars. Match panics if Set was never called.
type Forward struct {
	rule Rule
}

// NewForward creates an unresolved forward rule.
func NewForward() *Forward { return &Forward{} }

// Set resolves the forward rule to r.
func (f *Forward) Set(r Rule) { f.rule = r }

// Match implements Rule.
func (f *Forward) Match(s *Scanner) (Tokens, error) {
	if f.rule == nil {
		panic("rule: forward rule matched before Set")
	}

	return f.rule.Match(s)
}
