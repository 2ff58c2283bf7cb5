package gram

import (
	"fmt"

	"github.com/sparqlet/sparqlet/rule"
)

// ParamValue is the labeled result of matching a [Param] rule.
// It only carries the name and collapsed sub-match; aggregation happens in
// the node builder that consumes it.
type ParamValue struct {
	Name  string
	Value any
	List  bool
}

// String returns a short diagnostic rendering.
func (p *ParamValue) String() string {
	return fmt.Sprintf("Param(%s, %v)", p.Name, p.Value)
}

// Param labels the result of matching expr with name. On a successful match
// the wrapped rule's tokens are collapsed and emitted as a single
// *ParamValue token for the enclosing node builder to consume.
func Param(name string, expr rule.Rule) rule.Rule {
	return labeled(name, expr, false)
}

// ParamList is a Param whose repeated occurrences within one production are
// merged into an ordered [List] attribute by the node builder.
func ParamList(name string, expr rule.Rule) rule.Rule {
	return labeled(name, expr, true)
}

func labeled(name string, expr rule.Rule, isList bool) rule.Rule {
	return rule.Action(expr, func(toks rule.Tokens) rule.Tokens {
		return rule.Tokens{&ParamValue{
			Name:  name,
			Value: Collapse(toks),
			List:  isList,
		}}
	})
}

// Collapse reduces a singleton token sequence to its sole element and
// returns longer sequences unchanged.
func Collapse(toks rule.Tokens) any {
	if len(toks) == 1 {
		return toks[0]
	}

	return toks
}
