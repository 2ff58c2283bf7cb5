package gram

import (
	"strings"
	"testing"
)

func TestSprint_NestedNode(t *testing.T) {
	inner := NewCompValue("Inner")
	inner.set("w", "deep")

	outer := NewCompValue("Outer")
	outer.set("child", inner)
	outer.set("items", List{"a", "b"})

	got := Sprint(outer)

	want := strings.Join([]string{
		"> Outer:",
		"  - child:",
		"    > Inner:",
		"      - w:",
		"        - deep",
		"  - items:",
		"      - a",
		"      - b",
		"",
	}, "\n")

	if got != want {
		t.Errorf("unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}

func TestSprint_Leaf(t *testing.T) {
	if got := Sprint(42); got != "- 42\n" {
		t.Errorf("unexpected leaf rendering: %q", got)
	}
}
