package token

import (
	"fmt"
	"strings"
)

// Render converts a stream back to source text. Tokens that came from
// Tokenize keep their original whitespace class (none, space or newline);
// synthesized tokens are spaced automatically.
func Render(s Stream) string {
	r := renderer{}
	r.stream(s)
	return r.b.String()
}

// Concat joins tokens ignoring their source whitespace. A single space is
// inserted only where two words would otherwise merge into one, so
// `chan int` survives while `[]byte` and `T,U` stay tight. Newlines inside
// a group are kept: they separate the members of a multi-line struct or
// interface type.
func Concat(s Stream) string {
	r := renderer{auto: true}
	r.stream(s)
	return r.b.String()
}

type renderer struct {
	b    strings.Builder
	prev  *Token
	auto  bool
	depth int
}

func (r *renderer) gap(lead Lead, next *Token) {
	if r.b.Len() == 0 {
		return
	}
	if r.auto {
		if lead == LeadNewline && r.depth > 0 && next != nil {
			r.b.WriteByte('\n')
			return
		}
		lead = LeadAuto
	}
	switch lead {
	case LeadNone:
	case LeadSpace:
		r.b.WriteByte(' ')
	case LeadNewline:
		r.b.WriteByte('\n')
	default:
		if r.prev == nil || next == nil {
			return
		}
		if IsWord(*r.prev) && IsWord(*next) {
			r.b.WriteByte(' ')
		} else if r.prev.Kind == Punct && r.prev.Spacing == Alone && next.Kind == Punct {
			r.b.WriteByte(' ')
		}
	}
}

func (r *renderer) stream(s Stream) {
	for i := range s {
		t := &s[i]
		r.gap(t.Lead, t)
		switch t.Kind {
		case Group:
			r.b.WriteByte(t.Delim.Open())
			r.prev = nil
			r.depth++
			r.stream(t.Children)
			r.depth--
			if len(t.Children) > 0 && !r.auto {
				r.gap(t.CloseLead, nil)
			}
			r.b.WriteByte(t.Delim.Close())
		default:
			r.b.WriteString(t.Text)
		}
		r.prev = t
	}
}

// Dump renders the token tree one token per line, indented by nesting depth.
func Dump(s Stream) string {
	var b strings.Builder
	dumpStream(&b, s, 0)
	return b.String()
}

func dumpStream(b *strings.Builder, s Stream, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, t := range s {
		switch t.Kind {
		case Ident:
			fmt.Fprintf(b, "%sIdent %s (line %d)\n", indent, t.Text, t.Pos.Line)
		case Literal:
			fmt.Fprintf(b, "%sLiteral %s %s (line %d)\n", indent, t.Lit, t.Text, t.Pos.Line)
		case Punct:
			spacing := "alone"
			if t.Spacing == Joint {
				spacing = "joint"
			}
			fmt.Fprintf(b, "%sPunct %q %s (line %d)\n", indent, t.Text, spacing, t.Pos.Line)
		case Group:
			fmt.Fprintf(b, "%sGroup %c%c (line %d)\n", indent, t.Delim.Open(), t.Delim.Close(), t.Pos.Line)
			dumpStream(b, t.Children, depth+1)
		}
	}
}
