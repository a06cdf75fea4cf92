// Package token provides the token tree that splice macros consume and
// produce.
//
// A Token is a tagged union of four kinds: Ident, Literal, Punct and
// Group. Groups own their interior tokens, so a Stream is a tree:
//
//	exec!(five, package main ...)
//	  Ident "exec"  Punct '!'  Group ( Ident "five"  Punct ','  Ident "package" ... )
//
// Tokenize lexes Go-like source into a Stream, Render turns a Stream back
// into source text, and Concat joins tokens tightly for type expressions.
// The predicates in classify.go (IsSeparator, IsAnnotation, OpensGroup,
// IsKeyword) and the depth-aware Split are shared by the snippet runner and
// the declaration parser.
package token
