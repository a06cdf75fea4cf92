package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wippyai/splice/errors"
)

const punctChars = "!#$%&*+-./:;<=>?@^|~,"

func isPunct(r rune) bool {
	return r < utf8.RuneSelf && strings.IndexByte(punctChars, byte(r)) >= 0
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

type frame struct {
	children Stream
	open     Token
}

type lexer struct {
	src   string
	stack []frame
	pos   int
	line  int
	lead  Lead
}

// Tokenize splits Go-like source text into a token tree. Comments are
// dropped, but the whitespace class in front of every token is kept in
// Lead so Render can reproduce line structure.
func Tokenize(src string) (Stream, error) {
	l := &lexer{
		src:   src,
		line:  1,
		lead:  LeadNone,
		stack: []frame{{}},
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.stack[0].children, nil
}

func (l *lexer) errorf(line int, format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Line(line).
		Detail(format, args...).
		Build()
}

func (l *lexer) emit(t Token) {
	top := &l.stack[len(l.stack)-1]
	top.children = append(top.children, t)
	l.lead = LeadNone
}

func (l *lexer) peekRune(at int) rune {
	if at >= len(l.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.src[at:])
	return r
}

func (l *lexer) sawSpace(newline bool) {
	if newline {
		l.lead = LeadNewline
	} else if l.lead == LeadNone {
		l.lead = LeadSpace
	}
}

func (l *lexer) run() error {
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		start := l.pos

		switch {
		case r == '\n':
			l.line++
			l.sawSpace(true)
			l.pos += w
			continue

		case unicode.IsSpace(r):
			l.sawSpace(false)
			l.pos += w
			continue

		case r == '/' && strings.HasPrefix(l.src[l.pos:], "//"):
			end := strings.IndexByte(l.src[l.pos:], '\n')
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end
			}
			l.sawSpace(false)
			continue

		case r == '/' && strings.HasPrefix(l.src[l.pos:], "/*"):
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				return l.errorf(l.line, "comment not terminated")
			}
			body := l.src[l.pos : l.pos+2+end+2]
			n := strings.Count(body, "\n")
			l.line += n
			l.sawSpace(n > 0)
			l.pos += len(body)
			continue

		case r == '(' || r == '[' || r == '{':
			delim := Paren
			if r == '[' {
				delim = Bracket
			} else if r == '{' {
				delim = Brace
			}
			l.stack = append(l.stack, frame{open: Token{
				Kind:  Group,
				Delim: delim,
				Pos:   Pos{Offset: start, Line: l.line},
				Lead:  l.lead,
			}})
			l.lead = LeadNone
			l.pos += w
			continue

		case r == ')' || r == ']' || r == '}':
			if len(l.stack) == 1 {
				return l.errorf(l.line, "unexpected %q", r)
			}
			f := l.stack[len(l.stack)-1]
			if f.open.Delim.Close() != byte(r) {
				return l.errorf(l.line, "unexpected %q, expected %q to close %q opened at line %d",
					r, f.open.Delim.Close(), f.open.Delim.Open(), f.open.Pos.Line)
			}
			l.stack = l.stack[:len(l.stack)-1]
			g := f.open
			g.Children = f.children
			g.CloseLead = l.lead
			l.pos += w
			g.End = l.pos
			l.emit(g)
			continue

		case r == '"':
			if err := l.lexQuoted('"', LitString); err != nil {
				return err
			}
			continue

		case r == '\'':
			if err := l.lexQuoted('\'', LitRune); err != nil {
				return err
			}
			continue

		case r == '`':
			end := strings.IndexByte(l.src[l.pos+1:], '`')
			if end < 0 {
				return l.errorf(l.line, "raw string literal not terminated")
			}
			text := l.src[l.pos : l.pos+1+end+1]
			l.emit(Token{Kind: Literal, Lit: LitRawString, Text: text, Pos: Pos{start, l.line}, Lead: l.lead, End: start + len(text)})
			l.line += strings.Count(text, "\n")
			l.pos += len(text)
			continue

		case unicode.IsDigit(r) || (r == '.' && unicode.IsDigit(l.peekRune(l.pos+1))):
			l.lexNumber()
			continue

		case isIdentStart(r):
			for l.pos < len(l.src) {
				c, cw := utf8.DecodeRuneInString(l.src[l.pos:])
				if !isIdentPart(c) {
					break
				}
				l.pos += cw
			}
			l.emit(Token{Kind: Ident, Text: l.src[start:l.pos], Pos: Pos{start, l.line}, Lead: l.lead, End: l.pos})
			continue

		case isPunct(r):
			l.pos += w
			spacing := Alone
			next := l.peekRune(l.pos)
			if isPunct(next) && !strings.HasPrefix(l.src[l.pos:], "//") && !strings.HasPrefix(l.src[l.pos:], "/*") {
				spacing = Joint
			}
			l.emit(Token{Kind: Punct, Text: string(r), Spacing: spacing, Pos: Pos{start, l.line}, Lead: l.lead, End: l.pos})
			continue
		}

		return l.errorf(l.line, "unexpected character %q", r)
	}

	if len(l.stack) > 1 {
		f := l.stack[len(l.stack)-1]
		return l.errorf(f.open.Pos.Line, "unclosed %q", f.open.Delim.Open())
	}
	return nil
}

func (l *lexer) lexQuoted(quote byte, kind LitKind) error {
	start := l.pos
	i := l.pos + 1
	for {
		if i >= len(l.src) || l.src[i] == '\n' {
			return l.errorf(l.line, "%s literal not terminated", kind)
		}
		c := l.src[i]
		if c == '\\' {
			if i+1 < len(l.src) && l.src[i+1] == '\n' {
				return l.errorf(l.line, "%s literal not terminated", kind)
			}
			i += 2
			continue
		}
		i++
		if c == quote {
			break
		}
	}
	l.pos = i
	l.emit(Token{Kind: Literal, Lit: kind, Text: l.src[start:i], Pos: Pos{start, l.line}, Lead: l.lead, End: i})
	return nil
}

func (l *lexer) lexNumber() {
	start := l.pos
	kind := LitInt
	hex := strings.HasPrefix(l.src[l.pos:], "0x") || strings.HasPrefix(l.src[l.pos:], "0X")
	if hex {
		l.pos += 2
	}
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c >= '0' && c <= '9', c == '_':
		case c == '.':
			kind = LitFloat
		case hex && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
		case (!hex && (c == 'e' || c == 'E')) || (hex && (c == 'p' || c == 'P')):
			kind = LitFloat
			if l.pos+1 < len(l.src) && (l.src[l.pos+1] == '+' || l.src[l.pos+1] == '-') {
				l.pos++
			}
		case c == 'x' || c == 'X' || c == 'o' || c == 'O' || c == 'b' || c == 'B':
			// base prefixes after a leading zero
		case c == 'i':
			kind = LitImag
			l.pos++
			l.emitNumber(start, kind)
			return
		default:
			l.emitNumber(start, kind)
			return
		}
		l.pos++
	}
	l.emitNumber(start, kind)
}

func (l *lexer) emitNumber(start int, kind LitKind) {
	l.emit(Token{Kind: Literal, Lit: kind, Text: l.src[start:l.pos], Pos: Pos{start, l.line}, Lead: l.lead, End: l.pos})
}
