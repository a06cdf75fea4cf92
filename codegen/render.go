package codegen

import (
	"fmt"
	"strings"

	"github.com/wippyai/splice/decl"
)

// Render writes the Go source for the impl. The text is valid Go but not
// gofmt'd; Source formats it.
func (impl *Impl) Render() string {
	var b strings.Builder
	switch {
	case impl.Direction == Decode && impl.Kind == decl.Enumeration:
		impl.renderEnumDecode(&b)
	case impl.Direction == Decode:
		impl.renderStructDecode(&b)
	case impl.Kind == decl.Enumeration:
		impl.renderEnumEncode(&b)
	default:
		impl.renderStructEncode(&b)
	}
	return b.String()
}

func (impl *Impl) q(name string) string {
	return impl.Header.Qualifier + "." + name
}

// decodeSignature opens the constructor and, once the body is written,
// the DecodeWire method that delegates to it.
func (impl *Impl) decodeSignature(b *strings.Builder) {
	h := impl.Header
	fmt.Fprintf(b, "// %s reads a %s from r.\n", h.Func, h.TypeName)
	fmt.Fprintf(b, "func %s%s(r *%s) (%s %s, err error) {\n",
		h.Func, h.Params(), impl.q("Reader"), h.Receiver, h.Type())
}

func (impl *Impl) decodeMethod(b *strings.Builder) {
	h := impl.Header
	call := h.Func
	if h.TypeArgs != "" {
		call += "[" + h.TypeArgs + "]"
	}
	fmt.Fprintf(b, "\nfunc (%s *%s) DecodeWire(r *%s) (err error) {\n", h.Receiver, h.Type(), impl.q("Reader"))
	fmt.Fprintf(b, "*%s, err = %s(r)\n", h.Receiver, call)
	b.WriteString("return err\n}\n")
}

func (impl *Impl) renderStructDecode(b *strings.Builder) {
	h := impl.Header
	impl.decodeSignature(b)
	for _, s := range impl.Stmts {
		fmt.Fprintf(b, "if %s.%s, err = %s[%s](r); err != nil {\n", h.Receiver, s.Field, impl.q("Decode"), s.Type)
		fmt.Fprintf(b, "return %s, %s(%q, %q, err)\n}\n", h.Receiver, impl.q("DecodeError"), h.TypeName, s.Field)
	}
	fmt.Fprintf(b, "return %s, nil\n}\n", h.Receiver)
	impl.decodeMethod(b)
}

func (impl *Impl) renderStructEncode(b *strings.Builder) {
	h := impl.Header
	fmt.Fprintf(b, "func (%s %s) EncodeWire(w *%s) error {\n", h.Receiver, h.Type(), impl.q("Writer"))
	for _, s := range impl.Stmts {
		fmt.Fprintf(b, "if err := %s(w, %s.%s); err != nil {\n", impl.q("Encode"), h.Receiver, s.Field)
		fmt.Fprintf(b, "return %s(%q, %q, err)\n}\n", impl.q("EncodeError"), h.TypeName, s.Field)
	}
	b.WriteString("return nil\n}\n")
}

func (impl *Impl) renderEnumDecode(b *strings.Builder) {
	h := impl.Header
	impl.decodeSignature(b)
	b.WriteString("tag, err := r.ReadUvarint()\nif err != nil {\n")
	fmt.Fprintf(b, "return %s, %s(%q, \"tag\", err)\n}\n", h.Receiver, impl.q("DecodeError"), h.TypeName)
	unknown := fmt.Sprintf("%s(%q, tag, %d)", impl.q("UnknownVariant"), h.TypeName, len(impl.Stmts))
	if len(impl.Stmts) == 0 {
		fmt.Fprintf(b, "return %s, %s\n}\n", h.Receiver, unknown)
		impl.decodeMethod(b)
		return
	}
	b.WriteString("switch tag {\n")
	for _, s := range impl.Stmts {
		fmt.Fprintf(b, "case %d:\n", s.Index)
		fmt.Fprintf(b, "%s.%s = new(%s)\n", h.Receiver, s.Field, s.Type)
		fmt.Fprintf(b, "if *%s.%s, err = %s[%s](r); err != nil {\n", h.Receiver, s.Field, impl.q("Decode"), s.Type)
		fmt.Fprintf(b, "return %s, %s(%q, %q, err)\n}\n", h.Receiver, impl.q("DecodeError"), h.TypeName, s.Field)
	}
	fmt.Fprintf(b, "default:\nreturn %s, %s\n}\n", h.Receiver, unknown)
	fmt.Fprintf(b, "return %s, nil\n}\n", h.Receiver)
	impl.decodeMethod(b)
}

func (impl *Impl) renderEnumEncode(b *strings.Builder) {
	h := impl.Header
	fmt.Fprintf(b, "func (%s %s) EncodeWire(w *%s) error {\n", h.Receiver, h.Type(), impl.q("Writer"))
	none := fmt.Sprintf("%s(%q)", impl.q("NoVariant"), h.TypeName)
	if len(impl.Stmts) == 0 {
		fmt.Fprintf(b, "return %s\n}\n", none)
		return
	}
	b.WriteString("switch {\n")
	for _, s := range impl.Stmts {
		fmt.Fprintf(b, "case %s.%s != nil:\n", h.Receiver, s.Field)
		fmt.Fprintf(b, "w.WriteUvarint(%d)\n", s.Index)
		fmt.Fprintf(b, "if err := %s(w, *%s.%s); err != nil {\n", impl.q("Encode"), h.Receiver, s.Field)
		fmt.Fprintf(b, "return %s(%q, %q, err)\n}\n", impl.q("EncodeError"), h.TypeName, s.Field)
	}
	fmt.Fprintf(b, "default:\nreturn %s\n}\n", none)
	b.WriteString("return nil\n}\n")
}
