package codegen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/wippyai/splice/decl"
	"github.com/wippyai/splice/errors"
)

// Source renders the requested directions for d, in the order given, and
// formats the result. With no directions it renders decode then encode.
func Source(d *decl.Declaration, opts Options, dirs ...Direction) (string, error) {
	if len(dirs) == 0 {
		dirs = []Direction{Decode, Encode}
	}
	parts := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		impl, err := Generate(d, dir, opts)
		if err != nil {
			return "", err
		}
		parts = append(parts, impl.Render())
	}
	return Format(strings.Join(parts, "\n"))
}

// TypeDecl renders the Go type for d. A struct keeps its fields; an enum
// becomes a struct with one pointer field per variant.
func TypeDecl(d *decl.Declaration) string {
	var b strings.Builder
	params := ""
	if !d.Generics.Empty() {
		params = "[" + d.Generics.Constraints() + "]"
	}
	if d.Kind == decl.Enumeration {
		fmt.Fprintf(&b, "// %s holds exactly one non-nil variant.\n", d.Name)
	}
	fmt.Fprintf(&b, "type %s%s struct {\n", d.Name, params)
	for _, f := range d.Fields {
		typ := f.Type
		if d.Kind == decl.Enumeration {
			typ = "*" + typ
		}
		fmt.Fprintf(&b, "%s %s\n", f.Name, typ)
	}
	b.WriteString("}\n")
	return b.String()
}

// Format runs gofmt over a fragment of top-level declarations. The
// fragment is wrapped in a throwaway package clause for the parser and
// unwrapped again afterwards.
func Format(src string) (string, error) {
	const clause = "package p\n\n"
	out, err := format.Source([]byte(clause + src))
	if err != nil {
		return "", errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "generated code does not format")
	}
	return strings.TrimPrefix(string(out), clause), nil
}
