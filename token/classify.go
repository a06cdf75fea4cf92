package token

// IsIdent reports whether t is an identifier.
func IsIdent(t Token) bool {
	return t.Kind == Ident
}

// IsWord reports whether t is an identifier or a literal.
func IsWord(t Token) bool {
	return t.Kind == Ident || t.Kind == Literal
}

// IsPunct reports whether t is the punctuation character ch.
func IsPunct(t Token, ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

// IsSeparator reports whether t is the top-level list separator ','.
func IsSeparator(t Token) bool {
	return IsPunct(t, ',')
}

// IsAnnotation reports whether t is the ':' between a name and its type
// or bound.
func IsAnnotation(t Token) bool {
	return IsPunct(t, ':')
}

// OpensGroup reports whether t is a nested group.
func OpensGroup(t Token) bool {
	return t.Kind == Group
}

// IsGroup reports whether t is a group with the given delimiter.
func IsGroup(t Token, d Delim) bool {
	return t.Kind == Group && t.Delim == d
}

// IsKeyword reports whether t is an identifier spelled as one of words.
func IsKeyword(t Token, words ...string) bool {
	if t.Kind != Ident {
		return false
	}
	for _, w := range words {
		if t.Text == w {
			return true
		}
	}
	return false
}

// AngleDepth tracks nesting of `<` `>` pairs in a flat stream, where they
// are plain punctuation. Channel arrows (`<-`), comparisons (`<=`, `>=`)
// and `->` are not brackets.
type AngleDepth struct {
	prev  Token
	depth int
}

// Depth returns the current nesting depth.
func (a *AngleDepth) Depth() int {
	return a.depth
}

// Step accounts for t and the token after it (zero Token at the end).
func (a *AngleDepth) Step(t, next Token) {
	defer func() { a.prev = t }()
	if t.Kind != Punct {
		return
	}
	joinedTo := func(ch byte) bool {
		return t.Spacing == Joint && IsPunct(next, ch)
	}
	switch {
	case IsPunct(t, '<') && !joinedTo('-') && !joinedTo('='):
		a.depth++
	case IsPunct(t, '>') && !joinedTo('=') && !(IsPunct(a.prev, '-') && a.prev.Spacing == Joint):
		if a.depth > 0 {
			a.depth--
		}
	}
}

// Split cuts s at every top-level token matched by sep. Tokens inside
// groups are never top level, nor are tokens inside `<...>`. An empty
// stream yields no segments; a trailing separator yields a final empty
// segment.
func Split(s Stream, sep func(Token) bool) []Stream {
	if len(s) == 0 {
		return nil
	}
	var (
		out   []Stream
		cur   Stream
		angle AngleDepth
	)
	for i, t := range s {
		depth := angle.Depth()
		angle.Step(t, at(s, i+1))
		if depth == 0 && sep(t) {
			out = append(out, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	return append(out, cur)
}

// Cut returns the tokens before the first top-level token matched by stop.
func Cut(s Stream, stop func(Token) bool) (before Stream, found bool) {
	var angle AngleDepth
	for i, t := range s {
		if angle.Depth() == 0 && stop(t) {
			return s[:i], true
		}
		angle.Step(t, at(s, i+1))
	}
	return s, false
}

func at(s Stream, i int) Token {
	if i < len(s) {
		return s[i]
	}
	return Token{Kind: Ident}
}
