// Package gram turns grammar-production matches into labeled, attributed
// syntax nodes and evaluates parts of that tree lazily against a runtime
// binding context.
//
// Grammar rules declare named sub-matches with [Param] and repeated
// sub-matches with [ParamList]. A [Comp] wraps a whole production: on a
// successful match it gathers the labeled sub-results into a [CompValue],
// an ordered name-to-value node addressable by key. For example:
//
//	// BaseDecl ::= 'BASE' IRIREF
//	baseDecl := gram.NewComp("Base",
//		rule.Seq(rule.Suppress(rule.Lit("BASE")), gram.Param("iri", iriref)))
//
// Parsing then yields a node whose "iri" attribute holds the labeled match.
//
// A builder given an evaluation function via [Comp.SetEvalFn] produces an
// [Expr] instead. [Expr.Eval] runs the function against a caller-supplied
// [Context]; reads of the node's attributes pass through [Resolve], which
// dereferences nested evaluable nodes and variable placeholders against
// that context. Evaluation-domain errors are captured and returned as
// ordinary values so that a failed sub-computation can be stored, passed
// along, and inspected later; defects unwind as Go errors.
//
// The binding context is threaded explicitly through every call, never
// stored on a node, so a production parsed once can be evaluated for many
// rows, from many goroutines, without interference.
package gram
