package tsv

import (
	"strconv"
	"strings"

	"github.com/sparqlet/sparqlet/gram"
	"github.com/sparqlet/sparqlet/rule"
	"github.com/sparqlet/sparqlet/term"
)

// fieldSkip keeps tabs significant; they are the field separators.
const fieldSkip = " "

// unbound is the sentinel a matched empty field emits.
type unbound struct{}

func (unbound) String() string { return "UNDEF" }

// Terminal rules follow the SPARQL 1.1 grammar productions needed by the
// results format.
var (
	varName = rule.Action(
		rule.Pattern(`[?$][A-Za-z_][A-Za-z0-9_]*`),
		func(toks rule.Tokens) rule.Tokens {
			name := toks[0].(string)

			return rule.Tokens{term.Variable(name[1:])}
		},
	)

	iriRef = rule.Action(
		rule.Pattern(`<[^<>"{}|^`+"`"+`\\\x00-\x20]*>`),
		func(toks rule.Tokens) rule.Tokens {
			ref := toks[0].(string)

			return rule.Tokens{term.IRI(ref[1 : len(ref)-1])}
		},
	)

	bnodeLabel = rule.Action(
		rule.Pattern(`_:[A-Za-z0-9_](?:[A-Za-z0-9_.-]*[A-Za-z0-9_-])?`),
		func(toks rule.Tokens) rule.Tokens {
			label := toks[0].(string)

			return rule.Tokens{term.BNode(label[2:])}
		},
	)

	quoted = rule.Action(
		rule.Alt(
			rule.Pattern(`'(?:[^'\\\n\r]|\\.)*'`),
			rule.Pattern(`"(?:[^"\\\n\r]|\\.)*"`),
		),
		func(toks rule.Tokens) rule.Tokens {
			return rule.Tokens{unquote(toks[0].(string))}
		},
	)

	langTag = rule.Action(
		rule.Pattern(`@[a-zA-Z]+(?:-[a-zA-Z0-9]+)*`),
		func(toks rule.Tokens) rule.Tokens {
			return rule.Tokens{toks[0].(string)[1:]}
		},
	)

	numericLit = rule.Action(
		rule.Pattern(`[+-]?(?:\d+\.\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?|\d+(?:[eE][+-]?\d+)?)`),
		func(toks rule.Tokens) rule.Tokens {
			text := toks[0].(string)

			dt := term.XSDInteger

			switch {
			case strings.ContainsAny(text, "eE"):
				dt = term.XSDDouble

			case strings.Contains(text, "."):
				dt = term.XSDDecimal
			}

			return rule.Tokens{term.NewLiteral(text, "", dt)}
		},
	)

	booleanLit = rule.Action(
		rule.Pattern(`true|false`),
		func(toks rule.Tokens) rule.Tokens {
			return rule.Tokens{term.NewLiteral(toks[0].(string), "", term.XSDBoolean)}
		},
	)
)

// literalTerm matches a quoted literal with its optional language tag or
// datatype. The suffix must be adjacent to the closing quote.
var literalTerm = gram.NewComp("literal", rule.Seq(
	gram.Param("string", quoted),
	rule.Opt(rule.Alt(
		gram.Param("lang", rule.Adjacent(langTag)),
		rule.Adjacent(rule.Seq(
			rule.Suppress(rule.Lit("^^")),
			gram.Param("datatype", iriRef),
		)),
	)),
))

// emptyField matches the zero-width position directly before a separator or
// line end, denoting an unbound variable.
var emptyField = rule.Action(
	rule.Alt(rule.FollowedBy(rule.Lit("\t")), rule.End()),
	func(rule.Tokens) rule.Tokens {
		return rule.Tokens{unbound{}}
	},
)

var (
	tsvTerm = rule.Alt(literalTerm, iriRef, bnodeLabel, numericLit, booleanLit)

	field = rule.Alt(emptyField, tsvTerm)

	rowRule = rule.Seq(field, rule.ZeroOrMore(rule.Seq(
		rule.Suppress(rule.Lit("\t")),
		field,
	)))

	headerRule = rule.Seq(varName, rule.ZeroOrMore(rule.Seq(
		rule.Suppress(rule.Lit("\t")),
		varName,
	)))
)

// unquote strips the surrounding quotes and decodes backslash escapes.
func unquote(s string) string {
	body := s[1 : len(s)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)

			continue
		}

		i++

		switch body[i] {
		case 't':
			b.WriteByte('\t')

		case 'n':
			b.WriteByte('\n')

		case 'r':
			b.WriteByte('\r')

		case 'b':
			b.WriteByte('\b')

		case 'f':
			b.WriteByte('\f')

		case 'u', 'U':
			digits := 4
			if body[i] == 'U' {
				digits = 8
			}

			n, ok := writeCodepoint(&b, body[i+1:], digits)
			if !ok {
				// Malformed escape passes through verbatim.
				b.WriteByte('\\')
				b.WriteByte(body[i])
			}

			i += n

		default:
			b.WriteByte(body[i])
		}
	}

	return b.String()
}

// writeCodepoint decodes an n-digit hex escape, reporting the number of
// input bytes consumed and whether decoding succeeded.
func writeCodepoint(b *strings.Builder, s string, n int) (int, bool) {
	if len(s) < n {
		return 0, false
	}

	v, err := strconv.ParseUint(s[:n], 16, 32)
	if err != nil {
		return 0, false
	}

	b.WriteRune(rune(v))

	return n, true
}
