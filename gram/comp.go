package gram

import (
	"strings"

	"github.com/sparqlet/sparqlet/rule"
)

const (
	// serviceGraphTag is the one production whose semantics depend on the
	// original unparsed text rather than its parsed structure: a remote
	// sub-pattern is forwarded verbatim to the remote endpoint.
	serviceGraphTag = "ServiceGraphPattern"

	// serviceTextKey is the reserved attribute holding that verbatim text.
	serviceTextKey = "service_string"
)

// Comp wraps a grammar production with a tag and builds an attributed node
// from the labeled matches the production emits. It implements [rule.Rule],
// so the built node is returned to the enclosing production as a single
// token.
type Comp struct {
	tag  string
	expr rule.Rule
	fn   EvalFn
}

// NewComp creates a node builder for the production expr tagged tag.
func NewComp(tag string, expr rule.Rule) *Comp {
	return &Comp{tag: tag, expr: expr}
}

// SetEvalFn binds an evaluation function, making the builder produce
// [Expr] nodes instead of plain [CompValue] nodes. It returns the builder
// for chaining.
func (c *Comp) SetEvalFn(fn EvalFn) *Comp {
	c.fn = fn

	return c
}

// Match implements [rule.Rule]. On a successful match of the wrapped
// production it assembles a node from the emitted *ParamValue tokens:
// list-labeled repeats append to an ordered [List] under their name, in
// match order, while a repeated scalar name overwrites its earlier value
// (last write wins). Tokens without a label, such as punctuation and
// keywords, are discarded.
func (c *Comp) Match(s *rule.Scanner) (rule.Tokens, error) {
	start := s.Offset()

	toks, err := c.expr.Match(s)
	if err != nil {
		return nil, err
	}

	var node *CompValue

	var out any

	if c.fn != nil {
		e := NewExpr(c.tag, c.fn)
		node = &e.CompValue
		out = e
	} else {
		node = NewCompValue(c.tag)
		out = node
	}

	if c.tag == serviceGraphTag {
		node.set(serviceTextKey, strings.TrimSpace(s.Text(start, s.Offset())))
	}

	for _, t := range toks {
		pv, ok := t.(*ParamValue)
		if !ok {
			continue
		}

		if pv.List {
			node.appendList(pv.Name, pv.Value)
		} else {
			node.set(pv.Name, pv.Value)
		}
	}

	return rule.Tokens{out}, nil
}
