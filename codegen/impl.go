package codegen

import (
	"github.com/wippyai/splice/decl"
	"github.com/wippyai/splice/errors"
)

// Direction selects the half of the codec to generate.
type Direction uint8

const (
	Decode Direction = iota
	Encode
)

func (d Direction) String() string {
	switch d {
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	}
	return "unknown"
}

// Options tune the rendered code.
type Options struct {
	// WirePkg qualifies runtime calls; empty means "wire".
	WirePkg string
}

func (o Options) qualifier() string {
	if o.WirePkg == "" {
		return "wire"
	}
	return o.WirePkg
}

// Header is everything the signature needs: the constraint form of the
// type parameters for the declaration site and the bound-free form for
// instantiation.
type Header struct {
	Func       string // constructor name, decode only
	Receiver   string // "v" for both directions
	TypeName   string
	TypeParams string // "K comparable,V any"; empty without generics
	TypeArgs   string // "K,V"; empty without generics
	Qualifier  string
}

// Type returns the instantiated type, e.g. Pair[K,V].
func (h Header) Type() string {
	if h.TypeArgs == "" {
		return h.TypeName
	}
	return h.TypeName + "[" + h.TypeArgs + "]"
}

// Params returns the bracketed type parameter list for a declaration,
// or nothing.
func (h Header) Params() string {
	if h.TypeParams == "" {
		return ""
	}
	return "[" + h.TypeParams + "]"
}

// Stmt is one field access. Index is the declaration position, which
// for enumerations is also the wire tag.
type Stmt struct {
	Index int
	Field string
	Type  string
}

// Impl is one direction of a codec for one declaration, with one Stmt
// per field in declared order.
type Impl struct {
	Direction Direction
	Kind      decl.Kind
	Header    Header
	Stmts     []Stmt
}

// Generate builds the IR for d. Names and types are taken verbatim.
func Generate(d *decl.Declaration, dir Direction, opts Options) (*Impl, error) {
	if d == nil || d.Name == "" {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "declaration has no name")
	}
	if dir != Decode && dir != Encode {
		return nil, errors.Unsupported(errors.PhaseGenerate, "direction "+dir.String())
	}

	impl := &Impl{
		Direction: dir,
		Kind:      d.Kind,
		Header: Header{
			Receiver:  "v",
			TypeName:  d.Name,
			Qualifier: opts.qualifier(),
		},
		Stmts: make([]Stmt, 0, len(d.Fields)),
	}
	if !d.Generics.Empty() {
		impl.Header.TypeParams = d.Generics.Constraints()
		impl.Header.TypeArgs = d.Generics.BoundFree()
	}
	if dir == Decode {
		impl.Header.Func = "Decode" + d.Name
	}
	for i, f := range d.Fields {
		impl.Stmts = append(impl.Stmts, Stmt{Index: i, Field: f.Name, Type: f.Type})
	}
	return impl, nil
}
