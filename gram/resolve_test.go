package gram

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sparqlet/sparqlet/rule"
	"github.com/sparqlet/sparqlet/term"
)

func TestResolve_IdentityOnConcreteValues(t *testing.T) {
	ctx := Bindings{}

	for _, v := range []any{
		42,
		"plain",
		3.14,
		true,
		term.NewLiteral("hi", "en", ""),
		term.IRI("http://example.org/"),
	} {
		got, err := Resolve(ctx, v)
		if err != nil {
			t.Fatalf("Resolve(%v): %v", v, err)
		}

		if got != v {
			t.Errorf("expected identity for %v, got %v", v, got)
		}
	}
}

func TestResolve_BoundVariable(t *testing.T) {
	ctx := Bindings{term.Variable("x"): term.NewLiteral("7", "", term.XSDInteger)}

	got, err := Resolve(ctx, term.Variable("x"))
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if got != term.NewLiteral("7", "", term.XSDInteger) {
		t.Errorf("unexpected binding: %v", got)
	}
}

func TestResolve_UnboundVariableFails(t *testing.T) {
	_, err := Resolve(Bindings{}, term.Variable("missing"))
	if !errors.Is(err, ErrNotBound) {
		t.Fatalf("expected ErrNotBound, got %v", err)
	}
}

func TestResolve_UnboundVariableAllowed(t *testing.T) {
	v := term.Variable("missing")

	got, err := Resolve(Bindings{}, v, AllowUnbound())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if got != v {
		t.Errorf("expected the placeholder unchanged, got %v", got)
	}
}

func TestResolve_UnboundBNode(t *testing.T) {
	if _, err := Resolve(Bindings{}, term.BNode("b0")); !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound for blank node, got %v", err)
	}
}

func TestResolve_StoredErrorPropagates(t *testing.T) {
	stored := ErrEval.Wrap(errors.New("type mismatch"))
	ctx := Bindings{term.Variable("x"): stored}

	_, err := Resolve(ctx, term.Variable("x"))
	if !errors.Is(err, ErrEval) {
		t.Fatalf("expected the stored error to propagate, got %v", err)
	}
}

func TestResolve_StoredErrorAllowed(t *testing.T) {
	stored := ErrEval.Wrap(errors.New("type mismatch"))
	ctx := Bindings{term.Variable("x"): stored}

	got, err := Resolve(ctx, term.Variable("x"), AllowErrors())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if got != any(stored) {
		t.Errorf("expected the stored error as a value, got %v", got)
	}
}

func TestResolve_ListStructuralDescent(t *testing.T) {
	ctx := Bindings{term.Variable("x"): 1}

	got, err := Resolve(ctx, List{term.Variable("x"), "lit", List{term.Variable("x")}})
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	want := List{1, "lit", List{1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolve_SingletonTokensCollapse(t *testing.T) {
	ctx := Bindings{term.Variable("x"): "bound"}

	got, err := Resolve(ctx, rule.Tokens{term.Variable("x")})
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if got != "bound" {
		t.Errorf("expected collapse then lookup, got %v", got)
	}
}

func TestResolve_MultiTokensUnchanged(t *testing.T) {
	toks := rule.Tokens{"a", "b"}

	got, err := Resolve(Bindings{}, toks)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if !reflect.DeepEqual(got, toks) {
		t.Errorf("expected the sequence unchanged, got %v", got)
	}
}

func TestResolve_OpaqueNodeIsDefect(t *testing.T) {
	n := NewCompValue("Orphan")

	_, err := Resolve(Bindings{}, n)
	if !errors.Is(err, ErrOpaqueNode) {
		t.Fatalf("expected ErrOpaqueNode, got %v", err)
	}

	if IsDomainError(err) {
		t.Error("an unresolvable node is a defect, not a domain error")
	}
}

func TestResolve_NestedExprEvaluated(t *testing.T) {
	e := NewExpr("Const", func(Context, *CompValue) (any, error) {
		return 99, nil
	})

	got, err := Resolve(Bindings{}, e)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if got != 99 {
		t.Errorf("expected nested evaluation result, got %v", got)
	}
}
