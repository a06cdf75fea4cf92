// Package expand rewrites template files by expanding macro call sites.
//
// A call site is an identifier, a '!' and a parenthesized group with no
// whitespace in between:
//
//	var table = exec!(gen, package main ... )
//	codec!(struct Pair<K: comparable, V> { Key: K, Value: V })
//
// Call sites are found anywhere in the token tree, except inside another
// call's arguments. Each one is replaced by its macro's output, the text
// around it is copied unchanged, and the file is then gofmt'd.
package expand
