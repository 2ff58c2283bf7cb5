// Package rule implements a small backtracking parser-combinator engine.
//
// Rules match a prefix of a [Scanner]'s input and emit an ordered token
// sequence. Grammars are composed at runtime from terminals ([Lit],
// [Pattern]) and combinators ([Seq], [Alt], [Opt], [ZeroOrMore],
// [OneOrMore], [Suppress], [FollowedBy], [Adjacent], [Forward]).
// A rule can be wrapped with [Action] to transform its tokens after a
// successful match, which is how higher layers attach semantic results to
// productions.
//
// Terminals skip the scanner's configured whitespace characters before
// matching. The skip set is chosen per scanner so that grammars with
// significant separators, such as tab-separated rows, can keep those
// characters visible to the rules.
package rule
