package gram

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sparqlet/sparqlet/term"
)

// List is an ordered attribute value aggregating the repeated occurrences
// of one [ParamList] label, in match order. The distinguished type keeps
// aggregated attributes apart from scalar attributes that happen to hold a
// token sequence.
type List []any

// Context supplies variable and blank-node bindings during evaluation.
// The framework never constructs one; it is owned by the evaluation caller
// and read-only for the duration of a call.
//
// A stored value may itself be an evaluation-domain error representing a
// previously failed sub-computation.
type Context interface {
	// Get returns the binding for key, or false when key is unbound.
	Get(key term.Term) (any, bool)
}

// Bindings is a map-backed Context for evaluation callers and tests.
type Bindings map[term.Term]any

// Get implements Context.
func (b Bindings) Get(key term.Term) (any, bool) {
	v, ok := b[key]

	return v, ok
}

// Each visits every binding until fn returns false.
func (b Bindings) Each(fn func(term.Term, any) bool) {
	for k, v := range b {
		if !fn(k, v) {
			return
		}
	}
}

// EvalFn computes the runtime value of an evaluable node against a binding
// context. Semantic failures are reported as evaluation-domain errors
// (see [NewEvalError]); any other error is treated as a defect.
//
// The node is passed as an explicit argument rather than captured by the
// function, so one parsed subtree can be evaluated repeatedly and
// concurrently against different contexts.
type EvalFn func(ctx Context, n *CompValue) (any, error)

// CompValue is an attributed syntax node: a production tag plus an ordered
// mapping from labeled-match names to their values. Attributes are set only
// by the node builder during construction; afterwards the node is
// effectively immutable.
type CompValue struct {
	tag   string
	keys  []string
	attrs map[string]any
}

// NewCompValue creates an empty attributed node with the given tag.
func NewCompValue(tag string) *CompValue {
	return &CompValue{
		tag:   tag,
		attrs: make(map[string]any),
	}
}

// Tag returns the production tag the node was built from.
func (c *CompValue) Tag() string { return c.tag }

// Keys returns the attribute names in insertion order.
func (c *CompValue) Keys() []string { return slices.Clone(c.keys) }

// Has reports whether the attribute name is present.
func (c *CompValue) Has(name string) bool {
	_, ok := c.attrs[name]

	return ok
}

// Value returns the raw stored attribute without resolution, or nil when
// the name is absent. The nil result is the explicit no-value marker that
// lets evaluation functions probe optional grammar parts speculatively.
func (c *CompValue) Value(name string) any {
	return c.attrs[name]
}

// Get returns the attribute resolved against ctx through [Resolve].
// With a nil context the raw stored value is returned unresolved, and an
// absent name yields the nil no-value marker in either case.
func (c *CompValue) Get(ctx Context, name string, opts ...ResolveOption) (any, error) {
	raw, ok := c.attrs[name]
	if !ok {
		return nil, nil
	}

	if ctx == nil {
		return raw, nil
	}

	return Resolve(ctx, raw, opts...)
}

// Clone returns a node with the same tag and a shallow copy of the
// attributes.
func (c *CompValue) Clone() *CompValue {
	n := NewCompValue(c.tag)
	for _, k := range c.keys {
		n.set(k, c.attrs[k])
	}

	return n
}

// String returns a compact diagnostic rendering.
func (c *CompValue) String() string {
	var b strings.Builder

	b.WriteString(c.tag)
	b.WriteByte('{')

	for i, k := range c.keys {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s: %v", k, c.attrs[k])
	}

	b.WriteByte('}')

	return b.String()
}

// set stores a scalar attribute. A repeated name overwrites the earlier
// value but keeps its original position: last write wins.
func (c *CompValue) set(name string, v any) {
	if _, ok := c.attrs[name]; !ok {
		c.keys = append(c.keys, name)
	}

	c.attrs[name] = v
}

// appendList appends v to the ordered list attribute name, creating the
// list on first occurrence.
func (c *CompValue) appendList(name string, v any) {
	cur, ok := c.attrs[name].(List)
	if !ok {
		c.set(name, List{v})

		return
	}

	c.attrs[name] = append(cur, v)
}

// Expr is an attributed node bound to an evaluation function.
type Expr struct {
	CompValue

	fn EvalFn
}

// NewExpr creates an empty evaluable node with the given tag and bound
// evaluation function.
func NewExpr(tag string, fn EvalFn) *Expr {
	return &Expr{
		CompValue: CompValue{tag: tag, attrs: make(map[string]any)},
		fn:        fn,
	}
}

// Eval invokes the bound evaluation function against ctx.
//
// An evaluation-domain error produced by the function is captured and
// returned as the value with a nil error, so it can flow through the same
// channel as successful results; callers that need a true failure must
// inspect the returned value. Defects propagate as the error return.
//
// The context is passed through the whole resolution call chain rather than
// stored on the node, so Eval is safe to call repeatedly and from multiple
// goroutines on the same node.
func (e *Expr) Eval(ctx Context) (any, error) {
	if e.fn == nil {
		return nil, ErrNoEvalFn.Wrap(fmt.Errorf("tag %q", e.tag))
	}

	v, err := e.fn(ctx, &e.CompValue)
	if err != nil {
		if IsDomainError(err) {
			return err, nil
		}

		return nil, err
	}

	return v, nil
}
