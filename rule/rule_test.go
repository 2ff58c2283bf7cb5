package rule

import (
	"errors"
	"testing"
)

func TestLit_Match(t *testing.T) {
	toks, err := ParseString(Lit("hello"), "  hello")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(toks) != 1 || toks[0] != "hello" {
		t.Errorf("expected [hello], got %v", toks)
	}
}

func TestLit_Mismatch(t *testing.T) {
	_, err := ParseString(Lit("hello"), "world")
	if err == nil {
		t.Fatal("expected match error")
	}

	me := &MatchError{}
	if !errors.As(err, &me) {
		t.Fatalf("expected *MatchError, got %T", err)
	}

	if me.Expected != `"hello"` {
		t.Errorf("unexpected expected-token: %s", me.Expected)
	}
}

func TestPattern_Match(t *testing.T) {
	toks, err := ParseString(Pattern(`[0-9]+`), "12345")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if toks[0] != "12345" {
		t.Errorf("expected 12345, got %v", toks[0])
	}
}

func TestSeq_ConcatenatesTokens(t *testing.T) {
	r := Seq(Lit("a"), Lit("b"), Lit("c"))

	toks, err := ParseString(r, "a b c")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(toks) != 3 {
		t.Errorf("expected 3 tokens, got %v", toks)
	}
}

func TestAlt_FirstMatchWins(t *testing.T) {
	r := Alt(Lit("ab"), Lit("abc"))

	s := NewScanner("abc")

	toks, err := r.Match(s)
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if toks[0] != "ab" {
		t.Errorf("expected first alternative, got %v", toks[0])
	}
}

func TestAlt_ReportsDeepestFailure(t *testing.T) {
	r := Alt(
		Seq(Lit("a"), Lit("X")),
		Lit("b"),
	)

	_, err := ParseString(r, "a Y")
	if err == nil {
		t.Fatal("expected match error")
	}

	me := &MatchError{}
	if !errors.As(err, &me) {
		t.Fatalf("expected *MatchError, got %T", err)
	}

	// The first alternative consumed "a" before failing, so its error
	// should win over the immediate failure of the second alternative.
	if me.Expected != `"X"` {
		t.Errorf("expected deepest failure, got: %s", me.Expected)
	}
}

func TestOpt_AbsentSucceeds(t *testing.T) {
	r := Seq(Lit("a"), Opt(Lit("b")), Lit("c"))

	toks, err := ParseString(r, "ac")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(toks) != 2 {
		t.Errorf("expected 2 tokens, got %v", toks)
	}
}

func TestZeroOrMore(t *testing.T) {
	r := ZeroOrMore(Lit("x"))

	toks, err := ParseString(r, "xxx")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(toks) != 3 {
		t.Errorf("expected 3 tokens, got %v", toks)
	}

	toks, err = ParseString(r, "")
	if err != nil {
		t.Fatalf("empty match error: %v", err)
	}

	if len(toks) != 0 {
		t.Errorf("expected no tokens, got %v", toks)
	}
}

func TestOneOrMore_RequiresOne(t *testing.T) {
	r := OneOrMore(Lit("x"))

	if _, err := ParseString(r, ""); err == nil {
		t.Fatal("expected match error on empty input")
	}
}

func TestSuppress_EmitsNothing(t *testing.T) {
	r := Seq(Lit("a"), Suppress(Lit(",")), Lit("b"))

	toks, err := ParseString(r, "a,b")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(toks) != 2 || toks[0] != "a" || toks[1] != "b" {
		t.Errorf("expected [a b], got %v", toks)
	}
}

func TestFollowedBy_ConsumesNothing(t *testing.T) {
	r := Seq(FollowedBy(Lit("ab")), Lit("a"), Lit("b"))

	toks, err := ParseString(r, "ab")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(toks) != 2 {
		t.Errorf("expected 2 tokens, got %v", toks)
	}
}

func TestEnd(t *testing.T) {
	r := Seq(Lit("a"), End())

	if _, err := ParseString(r, "a  "); err != nil {
		t.Errorf("expected End to match at trailing whitespace: %v", err)
	}

	s := NewScanner("ab")
	if _, err := r.Match(s); err == nil {
		t.Error("expected End to fail mid-input")
	}
}

func TestAdjacent_SuspendsSkipping(t *testing.T) {
	r := Seq(Lit("a"), Adjacent(Lit("@")))

	if _, err := ParseString(r, "a@"); err != nil {
		t.Fatalf("adjacent match error: %v", err)
	}

	if _, err := ParseString(r, "a @"); err == nil {
		t.Fatal("expected failure with whitespace before adjacent rule")
	}
}

func TestAction_TransformsTokens(t *testing.T) {
	r := Action(Lit("5"), func(toks Tokens) Tokens {
		return Tokens{len(toks)}
	})

	toks, err := ParseString(r, "5")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if toks[0] != 1 {
		t.Errorf("expected transformed token, got %v", toks[0])
	}
}

func TestForward_Recursion(t *testing.T) {
	// expr = "(" expr ")" | "x"
	expr := NewForward()
	expr.Set(Alt(
		Seq(Suppress(Lit("(")), expr, Suppress(Lit(")"))),
		Lit("x"),
	))

	toks, err := ParseString(expr, "((x))")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}

	if len(toks) != 1 || toks[0] != "x" {
		t.Errorf("expected [x], got %v", toks)
	}
}

func TestParseString_RequiresFullConsumption(t *testing.T) {
	_, err := ParseString(Lit("a"), "a b")
	if err == nil {
		t.Fatal("expected error on trailing input")
	}
}

func TestWithSkip_TabSignificant(t *testing.T) {
	r := Seq(Lit("a"), Lit("\t"), Lit("b"))

	_, err := ParseString(r, "a\tb", WithSkip(" "))
	if err != nil {
		t.Fatalf("tab should be matchable when excluded from skip set: %v", err)
	}
}

func TestMatchError_Position(t *testing.T) {
	r := Seq(Lit("a"), Lit("b"))

	_, err := ParseString(r, "a\nc")
	if err == nil {
		t.Fatal("expected match error")
	}

	me := &MatchError{}
	if !errors.As(err, &me) {
		t.Fatalf("expected *MatchError, got %T", err)
	}

	if me.Pos.Line != 2 || me.Pos.Column != 1 {
		t.Errorf("expected line 2 column 1, got line %d column %d",
			me.Pos.Line, me.Pos.Column)
	}
}
