// Package codegen turns a parsed declaration into Go source for its wire
// codec.
//
// Generation is two steps. Generate builds an Impl, a small IR holding
// the signature pieces and one statement per field in declared order.
// Render writes it out as text. Nothing is validated or reordered:
// field names and types reach the output exactly as they were parsed,
// and the Go compiler is left to reject anything ill-typed.
//
// For `struct Pair<K: comparable, V: any> { Key: K, Value: V }` the
// decode half is a constructor plus a method delegating to it:
//
//	func DecodePair[K comparable, V any](r *wire.Reader) (v Pair[K, V], err error)
//	func (v *Pair[K, V]) DecodeWire(r *wire.Reader) (err error)
//
// and the encode half is a single method:
//
//	func (v Pair[K, V]) EncodeWire(w *wire.Writer) error
package codegen
