package gram

import (
	"errors"
	"slices"
	"testing"

	"github.com/sparqlet/sparqlet/term"
)

func TestCompValue_AbsentAttributeIsNil(t *testing.T) {
	n := NewCompValue("Opt")

	if n.Value("missing") != nil {
		t.Error("expected nil for absent attribute")
	}

	got, err := n.Get(Bindings{}, "missing")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if got != nil {
		t.Errorf("expected nil no-value marker, got %v", got)
	}
}

func TestCompValue_GetWithoutContextIsRaw(t *testing.T) {
	n := NewCompValue("Raw")
	n.set("v", term.Variable("x"))

	got, err := n.Get(nil, "v")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if got != term.Variable("x") {
		t.Errorf("expected the raw placeholder, got %v", got)
	}
}

func TestCompValue_GetResolvesAgainstContext(t *testing.T) {
	n := NewCompValue("Res")
	n.set("v", term.Variable("x"))

	ctx := Bindings{term.Variable("x"): "hello"}

	got, err := n.Get(ctx, "v")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if got != "hello" {
		t.Errorf("expected resolved binding, got %v", got)
	}
}

func TestCompValue_GetUnboundPolicy(t *testing.T) {
	n := NewCompValue("Res")
	n.set("v", term.Variable("x"))

	if _, err := n.Get(Bindings{}, "v"); !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}

	got, err := n.Get(Bindings{}, "v", AllowUnbound())
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if got != term.Variable("x") {
		t.Errorf("expected the placeholder, got %v", got)
	}
}

func TestCompValue_Clone(t *testing.T) {
	n := NewCompValue("Orig")
	n.set("a", 1)
	n.set("b", 2)

	c := n.Clone()

	if c.Tag() != "Orig" {
		t.Errorf("expected tag to carry over, got %s", c.Tag())
	}

	if !slices.Equal(c.Keys(), n.Keys()) {
		t.Errorf("expected identical key order, got %v", c.Keys())
	}

	c.set("a", 99)

	if n.Value("a") != 1 {
		t.Error("clone must not alias the original's attributes")
	}
}

func TestCompValue_String(t *testing.T) {
	n := NewCompValue("Tagged")
	n.set("k", "v")

	if got := n.String(); got != "Tagged{k: v}" {
		t.Errorf("unexpected rendering: %s", got)
	}
}
