package browse

import (
	"context"
	"testing"

	"github.com/sparqlet/sparqlet/log"
	"github.com/sparqlet/sparqlet/results/tsv"
	"github.com/sparqlet/sparqlet/term"
)

func testResult() *tsv.Result {
	return &tsv.Result{
		Vars: []term.Variable{"name", "home"},
		Bindings: []tsv.Binding{
			{
				"name": term.Literal{Lexical: "alice"},
				"home": term.IRI("http://example.org/alice"),
			},
			{
				"name": term.Literal{Lexical: "bob"},
				"home": nil,
			},
			{
				"name": term.Literal{Lexical: "carol"},
				"home": term.IRI("http://example.org/carol"),
			},
		},
	}
}

func TestNewModel_RowsFollowHeaderOrder(t *testing.T) {
	m := newModel(context.Background(), testResult(), 20, log.Logger{})

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3", len(rows))
	}

	if got := rows[0][0]; got != `"alice"` {
		t.Errorf("row 0 name = %q, want %q", got, `"alice"`)
	}

	if got := rows[1][1]; got != unboundCell {
		t.Errorf("row 1 home = %q, want %q", got, unboundCell)
	}
}

func TestNewModel_ColumnWidthsClamped(t *testing.T) {
	result := &tsv.Result{
		Vars: []term.Variable{"x"},
		Bindings: []tsv.Binding{
			{"x": term.IRI("http://example.org/a-very-long-identifier-path/deeper/still")},
		},
	}

	m := newModel(context.Background(), result, 20, log.Logger{})

	cols := m.table.Columns()
	if len(cols) != 1 {
		t.Fatalf("column count = %d, want 1", len(cols))
	}

	if cols[0].Width != maxColWidth {
		t.Errorf("column width = %d, want %d", cols[0].Width, maxColWidth)
	}

	if cols[0].Title != "?x" {
		t.Errorf("column title = %q, want %q", cols[0].Title, "?x")
	}
}

func TestApplyFilter_NarrowsAndRestores(t *testing.T) {
	m := newModel(context.Background(), testResult(), 20, log.Logger{})

	m.filter.SetValue("carol")
	m = m.applyFilter()

	if m.shown != 1 {
		t.Fatalf("shown = %d, want 1", m.shown)
	}

	if got := m.table.Rows()[0][0]; got != `"carol"` {
		t.Errorf("filtered row name = %q, want %q", got, `"carol"`)
	}

	m.filter.SetValue("")
	m = m.applyFilter()

	if m.shown != 3 {
		t.Errorf("shown after clearing = %d, want 3", m.shown)
	}
}

func TestApplyFilter_MatchesAcrossColumns(t *testing.T) {
	m := newModel(context.Background(), testResult(), 20, log.Logger{})

	// The query only appears in IRI cells, never in the name column.
	m.filter.SetValue("example.org")
	m = m.applyFilter()

	if m.shown != 2 {
		t.Errorf("shown = %d, want 2", m.shown)
	}
}

func TestCellText(t *testing.T) {
	if got := cellText(nil); got != unboundCell {
		t.Errorf("cellText(nil) = %q, want %q", got, unboundCell)
	}

	if got := cellText(term.BNode("b0")); got != "_:b0" {
		t.Errorf("cellText(bnode) = %q, want %q", got, "_:b0")
	}
}
