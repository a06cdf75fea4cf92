package token

import (
	"strconv"

	"github.com/wippyai/splice/errors"
)

// Kind is the variant tag of a Token.
type Kind uint8

const (
	Ident Kind = iota
	Literal
	Punct
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "identifier"
	case Literal:
		return "literal"
	case Punct:
		return "punctuation"
	case Group:
		return "group"
	}
	return "unknown"
}

// LitKind classifies a Literal token.
type LitKind uint8

const (
	LitNone LitKind = iota
	LitInt
	LitFloat
	LitImag
	LitRune
	LitString
	LitRawString
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitImag:
		return "imag"
	case LitRune:
		return "rune"
	case LitString:
		return "string"
	case LitRawString:
		return "raw-string"
	}
	return "none"
}

// Delim is the bracket pair enclosing a Group.
type Delim uint8

const (
	Paren Delim = iota
	Bracket
	Brace
)

// Open returns the opening delimiter character.
func (d Delim) Open() byte {
	switch d {
	case Bracket:
		return '['
	case Brace:
		return '{'
	}
	return '('
}

// Close returns the closing delimiter character.
func (d Delim) Close() byte {
	switch d {
	case Bracket:
		return ']'
	case Brace:
		return '}'
	}
	return ')'
}

// Spacing tells whether a punctuation token is immediately followed by
// another punctuation character (`:=` lexes as ':' Joint, '=' Alone).
type Spacing uint8

const (
	Alone Spacing = iota
	Joint
)

// Lead is the whitespace class that preceded a token in its source.
// LeadAuto marks synthesized tokens; the renderer picks the spacing.
type Lead uint8

const (
	LeadAuto Lead = iota
	LeadNone
	LeadSpace
	LeadNewline
)

// Pos is a source position.
type Pos struct {
	Offset int
	Line   int
}

// Token is one node of a token tree. Kind selects which fields are
// meaningful: Text for Ident, Literal and Punct; Lit for Literal;
// Spacing for Punct; Delim, Children and CloseLead for Group.
type Token struct {
	Children  Stream
	Text      string
	Pos       Pos
	End       int
	Kind      Kind
	Lit       LitKind
	Delim     Delim
	Spacing   Spacing
	Lead      Lead
	CloseLead Lead
}

// Stream is an ordered token sequence.
type Stream []Token

// NewIdent returns a synthesized identifier token.
func NewIdent(name string) Token {
	return Token{Kind: Ident, Text: name}
}

// NewPunct returns a synthesized punctuation token.
func NewPunct(ch byte, spacing Spacing) Token {
	return Token{Kind: Punct, Text: string(ch), Spacing: spacing}
}

// NewLiteral returns a synthesized literal token with the given source text.
func NewLiteral(kind LitKind, text string) Token {
	return Token{Kind: Literal, Lit: kind, Text: text}
}

// NewGroup returns a synthesized group token.
func NewGroup(delim Delim, children Stream) Token {
	return Token{Kind: Group, Delim: delim, Children: children}
}

// String renders the token alone.
func (t Token) String() string {
	return Render(Stream{t})
}

// Int returns the value of an integer literal.
func (t Token) Int() (int64, error) {
	if t.Kind != Literal || t.Lit != LitInt {
		return 0, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Line(t.Pos.Line).
			Detail("expected integer literal, got %s %q", t.Kind, t.Text).
			Build()
	}
	v, err := strconv.ParseInt(t.Text, 0, 64)
	if err != nil {
		return 0, errors.ParseFailed("integer literal", err)
	}
	return v, nil
}

// Float returns the value of a float or integer literal.
func (t Token) Float() (float64, error) {
	if t.Kind != Literal || (t.Lit != LitFloat && t.Lit != LitInt) {
		return 0, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Line(t.Pos.Line).
			Detail("expected float literal, got %s %q", t.Kind, t.Text).
			Build()
	}
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, errors.ParseFailed("float literal", err)
	}
	return v, nil
}

// Unquote returns the value of a string, raw string or rune literal
// with escapes resolved.
func (t Token) Unquote() (string, error) {
	if t.Kind != Literal || (t.Lit != LitString && t.Lit != LitRawString && t.Lit != LitRune) {
		return "", errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Line(t.Pos.Line).
			Detail("expected string literal, got %s %q", t.Kind, t.Text).
			Build()
	}
	s, err := strconv.Unquote(t.Text)
	if err != nil {
		return "", errors.ParseFailed("string literal", err)
	}
	return s, nil
}
