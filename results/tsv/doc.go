// Package tsv reads the tab-separated SPARQL results format.
//
// A document is one header line of tab-separated variable names followed by
// zero or more data lines. Each data field is a recognized term: a quoted
// literal with optional @lang or ^^datatype, an IRI in angle brackets, a
// blank node label, or an auto-typed numeric or boolean literal. An empty
// field between separators denotes an unbound variable for that row.
//
// The grammar is composed from the same combinators the rest of the module
// parses with, and each parsed row is usable directly as an evaluation
// context.
package tsv
