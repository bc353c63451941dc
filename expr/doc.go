// Package expr tokenizes, parses and evaluates arithmetic expressions.
//
// The package is intentionally self-contained: parsing produces an immutable
// tree that can be evaluated repeatedly against different variable bindings,
// which the graph package relies on when sampling a function per pixel column.
package expr
