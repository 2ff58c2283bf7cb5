package gram

import (
	"fmt"
	"io"
	"strings"

	"github.com/sparqlet/sparqlet/rule"
)

// Fprint writes a recursive, indented rendering of a parse result to w for
// diagnostics. It descends through token sequences, attributed nodes, and
// list attributes; anything else is printed as a leaf.
func Fprint(w io.Writer, v any) error {
	var b strings.Builder

	prettify(&b, v, 0)

	_, err := io.WriteString(w, b.String())

	return err
}

// Sprint returns the rendering produced by [Fprint] as a string.
func Sprint(v any) string {
	var b strings.Builder

	prettify(&b, v, 0)

	return b.String()
}

func prettify(b *strings.Builder, v any, depth int) {
	pad := strings.Repeat("  ", depth)

	switch x := v.(type) {
	case *Expr:
		prettifyNode(b, &x.CompValue, depth)

	case *CompValue:
		prettifyNode(b, x, depth)

	case rule.Tokens:
		for _, e := range x {
			prettify(b, e, depth+1)
		}

	case List:
		for _, e := range x {
			prettify(b, e, depth+1)
		}

	case []any:
		for _, e := range x {
			prettify(b, e, depth+1)
		}

	default:
		fmt.Fprintf(b, "%s- %v\n", pad, x)
	}
}

func prettifyNode(b *strings.Builder, n *CompValue, depth int) {
	pad := strings.Repeat("  ", depth)

	fmt.Fprintf(b, "%s> %s:\n", pad, n.Tag())

	for _, k := range n.Keys() {
		fmt.Fprintf(b, "%s  - %s:\n", pad, k)
		prettify(b, n.Value(k), depth+2)
	}
}
