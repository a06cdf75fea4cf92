package decl

import (
	"github.com/wippyai/splice/errors"
	"github.com/wippyai/splice/token"
)

// Parser reads one declaration in a single forward pass with at most one
// token of lookahead:
//
//	... struct Name<T: Bound, U> { a: T, b: []U }
//
// Everything before the struct/enum keyword is skipped.
type Parser struct {
	tokens token.Stream
	pos    int
}

// New returns a parser over tokens.
func New(tokens token.Stream) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is shorthand for New(tokens).Parse().
func Parse(tokens token.Stream) (*Declaration, error) {
	return New(tokens).Parse()
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.Ident}
	}
	return p.tokens[p.pos]
}

func (p *Parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *Parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Pos.Line
}

func fail(line int, format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Line(line).
		Detail(format, args...).
		Build()
}

// Parse reads the declaration.
func (p *Parser) Parse() (*Declaration, error) {
	d := &Declaration{}

	for {
		t := p.next()
		if t == nil {
			return nil, fail(p.lastLine(), "expected struct or enum")
		}
		if k, ok := KindOf(*t); ok {
			d.Kind = k
			d.Line = t.Pos.Line
			break
		}
	}

	name := p.next()
	if name == nil {
		return nil, fail(d.Line, "expected %s name, got end of input", d.Kind)
	}
	if !token.IsIdent(*name) {
		return nil, fail(name.Pos.Line, "expected %s name, got %s %q", d.Kind, name.Kind, name.String())
	}
	d.Name = name.Text

	var (
		generics token.Stream
		angle    token.AngleDepth
		body     *token.Token
	)
	for body == nil {
		t := p.next()
		if t == nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(d.Name).
				Line(d.Line).
				Detail("missing field body").
				Build()
		}
		if angle.Depth() == 0 && token.IsGroup(*t, token.Brace) {
			body = t
			continue
		}
		angle.Step(*t, p.peek())
		generics = append(generics, *t)
	}

	if len(generics) > 0 {
		first, last := generics[0], generics[len(generics)-1]
		if !token.IsPunct(first, '<') || !token.IsPunct(last, '>') {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(d.Name).
				Line(first.Pos.Line).
				Detail("expected generic parameters in <...> before the field body, got %q", token.Concat(generics)).
				Build()
		}
		d.Generics = Generics(generics[1 : len(generics)-1])
	}

	fields, err := parseFields(d.Name, body.Children)
	if err != nil {
		return nil, err
	}
	d.Fields = fields
	return d, nil
}

// parseFields splits a body on top-level commas into `name: type` fields.
// A trailing comma is allowed; any other segment needs a name, a ':' and
// at least one type token.
func parseFields(owner string, body token.Stream) ([]Field, error) {
	segments := token.Split(body, token.IsSeparator)
	fields := make([]Field, 0, len(segments))
	for i, seg := range segments {
		if len(seg) == 0 && i == len(segments)-1 {
			break
		}
		if len(seg) < 3 {
			line := 0
			if len(seg) > 0 {
				line = seg[0].Pos.Line
			}
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(owner).
				Line(line).
				Detail("field %d: expected `name: type`, got %q", i, token.Concat(seg)).
				Build()
		}
		if !token.IsIdent(seg[0]) {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(owner).
				Line(seg[0].Pos.Line).
				Detail("field %d: name must be an identifier, got %q", i, seg[0].String()).
				Build()
		}
		if !token.IsAnnotation(seg[1]) {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(owner, seg[0].Text).
				Line(seg[1].Pos.Line).
				Detail("expected ':' after field name, got %q", seg[1].String()).
				Build()
		}
		fields = append(fields, Field{
			Name: seg[0].Text,
			Type: token.Concat(seg[2:]),
			Line: seg[0].Pos.Line,
		})
	}
	return fields, nil
}
