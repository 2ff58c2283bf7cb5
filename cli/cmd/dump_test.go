package cmd

import (
	"bytes"
	"testing"

	"github.com/sparqlet/sparqlet/results/tsv"
	"github.com/sparqlet/sparqlet/term"
)

func dumpResult() *tsv.Result {
	return &tsv.Result{
		Vars: []term.Variable{"x", "y"},
		Bindings: []tsv.Binding{
			{
				"x": term.Literal{Lexical: "42", Datatype: term.XSDInteger},
				"y": term.IRI("http://example.org/y"),
			},
			{
				"x": term.Literal{Lexical: "hi", Lang: "en"},
				"y": nil,
			},
		},
	}
}

func TestWriteTree(t *testing.T) {
	var buf bytes.Buffer

	err := writeTree(&buf, dumpResult())
	if err != nil {
		t.Fatalf("writeTree failed: %v", err)
	}

	want := "> row 1:\n" +
		"  - ?x: \"42\"^^<http://www.w3.org/2001/XMLSchema#integer>\n" +
		"  - ?y: <http://example.org/y>\n" +
		"> row 2:\n" +
		"  - ?x: \"hi\"@en\n" +
		"  - ?y: UNDEF\n"

	if got := buf.String(); got != want {
		t.Errorf("writeTree output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRowSlices_PreservesHeaderOrder(t *testing.T) {
	rows := rowSlices(dumpResult())

	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}

	first := rows[0]
	if len(first) != 2 {
		t.Fatalf("mapping size = %d, want 2", len(first))
	}

	if first[0].Key != "x" || first[1].Key != "y" {
		t.Errorf("key order = [%v %v], want [x y]", first[0].Key, first[1].Key)
	}

	if first[1].Value != "<http://example.org/y>" {
		t.Errorf("y = %v, want IRI surface form", first[1].Value)
	}

	// Unbound variables render as null in the encoded document.
	if rows[1][1].Value != nil {
		t.Errorf("unbound y = %v, want nil", rows[1][1].Value)
	}
}

func TestIndentString(t *testing.T) {
	if got := indentString(2); got != "  " {
		t.Errorf("indentString(2) = %q, want two spaces", got)
	}

	if got := indentString(-1); got != "" {
		t.Errorf("indentString(-1) = %q, want empty", got)
	}
}
