// Package decl parses the simplified type declarations accepted by the
// codec macros into a Declaration model.
//
// The grammar is deliberately small:
//
//	struct Pair<K: comparable, V: any> { Key: K, Value: V }
//	enum Shape { Circle: Circle, Square: Square }
//
// Field types and generic bounds are Go type expressions taken as text.
// There are no attributes, tuple or unit variants, and no parsing of
// bounds beyond splitting parameters at top-level commas.
package decl
