// Package term defines the minimal set of RDF term values exchanged between
// the grammar framework, value resolution, and result readers.
//
// Only the surface needed by those layers is modeled: variables, blank node
// labels, IRIs, and literals with an optional language tag or datatype.
// Full round-trip serialization of terms is out of scope.
package term

import "strings"

// Term is implemented by every RDF term value in this package.
// All implementations are comparable and usable as map keys.
type Term interface {
	// String returns the term in SPARQL surface syntax.
	String() string

	term()
}

// Variable is a query variable identifier, stored without its ?/$ sigil.
type Variable string

func (v Variable) String() string { return "?" + string(v) }

func (Variable) term() {}

// BNode is a blank node label, stored without its _: prefix.
type BNode string

func (b BNode) String() string { return "_:" + string(b) }

func (BNode) term() {}

// IRI is an absolute or relative IRI reference.
type IRI string

func (i IRI) String() string { return "<" + string(i) + ">" }

func (IRI) term() {}

// XSD datatype IRIs assigned to auto-typed literals.
const (
	XSDInteger IRI = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal IRI = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble  IRI = "http://www.w3.org/2001/XMLSchema#double"
	XSDBoolean IRI = "http://www.w3.org/2001/XMLSchema#boolean"
)

// Literal is an RDF literal. At most one of Lang and Datatype is set.
type Literal struct {
	Lexical  string
	Lang     string
	Datatype IRI
}

// NewLiteral creates a literal from its lexical form and optional language
// tag or datatype. A non-empty lang takes precedence over datatype, matching
// the grammar where the two are mutually-exclusive alternatives.
func NewLiteral(lexical, lang string, datatype IRI) Literal {
	if lang != "" {
		return Literal{Lexical: lexical, Lang: lang}
	}

	return Literal{Lexical: lexical, Datatype: datatype}
}

// String returns the literal in SPARQL surface syntax.
func (l Literal) String() string {
	var b strings.Builder

	b.WriteByte('"')
	b.WriteString(escape(l.Lexical))
	b.WriteByte('"')

	switch {
	case l.Lang != "":
		b.WriteByte('@')
		b.WriteString(l.Lang)

	case l.Datatype != "":
		b.WriteString("^^")
		b.WriteString(l.Datatype.String())
	}

	return b.String()
}

func (Literal) term() {}

// escape backslash-escapes the characters that terminate or corrupt a
// double-quoted lexical form.
func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)

	return r.Replace(s)
}
