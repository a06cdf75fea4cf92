package decl

import (
	"strings"

	"github.com/wippyai/splice/token"
)

// Kind is the declaration kind.
type Kind uint8

const (
	Structure Kind = iota
	Enumeration
)

func (k Kind) String() string {
	switch k {
	case Structure:
		return "struct"
	case Enumeration:
		return "enum"
	}
	return "unknown"
}

// KindOf resolves a keyword token to a declaration kind.
func KindOf(t token.Token) (Kind, bool) {
	switch {
	case token.IsKeyword(t, "struct"):
		return Structure, true
	case token.IsKeyword(t, "enum"):
		return Enumeration, true
	}
	return 0, false
}

// Field is one `name: type` entry of the body. For enumerations each
// field is a variant and Type its payload.
type Field struct {
	Name string
	Type string
	Line int
}

// Generics holds the raw tokens between the angle brackets that follow
// the declaration name. They are kept unparsed and only rendered.
type Generics token.Stream

// Empty reports whether the declaration has no type parameters.
func (g Generics) Empty() bool {
	return len(g) == 0
}

// Params splits the list on top-level separators into one token run per
// parameter, dropping a trailing empty run.
func (g Generics) Params() []token.Stream {
	parts := token.Split(token.Stream(g), token.IsSeparator)
	if n := len(parts); n > 0 && len(parts[n-1]) == 0 {
		parts = parts[:n-1]
	}
	return parts
}

// Verbatim renders the list unchanged, bounds included: `T:Clone,U:Default`.
func (g Generics) Verbatim() string {
	return token.Concat(token.Stream(g))
}

// BoundFree renders the names only, each parameter cut at its first
// ':': `T: Clone, U: Default` becomes `T,U`.
func (g Generics) BoundFree() string {
	params := g.Params()
	names := make([]string, 0, len(params))
	for _, p := range params {
		name, _ := token.Cut(p, token.IsAnnotation)
		names = append(names, token.Concat(name))
	}
	return strings.Join(names, ",")
}

// Constraints renders the list as Go type parameters: `T Clone,U any`.
// A parameter without a bound is constrained by any.
func (g Generics) Constraints() string {
	params := g.Params()
	out := make([]string, 0, len(params))
	for _, p := range params {
		name, found := token.Cut(p, token.IsAnnotation)
		bound := "any"
		if found && len(p) > len(name)+1 {
			bound = token.Concat(p[len(name)+1:])
		}
		out = append(out, token.Concat(name)+" "+bound)
	}
	return strings.Join(out, ",")
}

// Declaration is the parsed form of one `struct` or `enum` declaration.
// It is built once by Parse and only read afterwards.
type Declaration struct {
	Name     string
	Generics Generics
	Fields   []Field
	Kind     Kind
	Line     int
}

// TypeArgs returns Name instantiated with its own parameters:
// `Pair[K,V]`, or just `Pair` when it has none.
func (d *Declaration) TypeArgs() string {
	if d.Generics.Empty() {
		return d.Name
	}
	return d.Name + "[" + d.Generics.BoundFree() + "]"
}
