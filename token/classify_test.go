package token

import (
	"testing"
)

func mustTokenize(t *testing.T, src string) Stream {
	t.Helper()
	s, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return s
}

func TestPredicates(t *testing.T) {
	s := mustTokenize(t, "struct , : {} x 1")
	if !IsKeyword(s[0], "struct", "enum") {
		t.Error("struct should be a keyword")
	}
	if IsKeyword(s[4], "struct", "enum") {
		t.Error("x should not be a keyword")
	}
	if !IsSeparator(s[1]) || IsSeparator(s[2]) {
		t.Error("IsSeparator mismatch")
	}
	if !IsAnnotation(s[2]) {
		t.Error("':' should be an annotation")
	}
	if !OpensGroup(s[3]) || !IsGroup(s[3], Brace) || IsGroup(s[3], Paren) {
		t.Error("group predicates mismatch")
	}
	if !IsIdent(s[4]) || IsIdent(s[5]) {
		t.Error("IsIdent mismatch")
	}
	if !IsWord(s[5]) || IsWord(s[1]) {
		t.Error("IsWord mismatch")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"two fields", "a: u8, b: string", []string{"a:u8", "b:string"}},
		{"trailing separator", "a: u8,", []string{"a:u8", ""}},
		{"nested group", "f: func(a, b int), g: int", []string{"f:func(a,b int)", "g:int"}},
		{"nested angles", "T: Pair<A, B>, U", []string{"T:Pair<A,B>", "U"}},
		{"closing double angle", "T: A<B<C, D>>, U", []string{"T:A<B<C,D>>", "U"}},
		{"channel arrow is not an angle", "c: <-chan int, d: int", []string{"c: <-chan int", "d:int"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := Split(mustTokenize(t, tt.input), IsSeparator)
			var got []string
			for _, p := range parts {
				got = append(got, Concat(p))
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCut(t *testing.T) {
	s := mustTokenize(t, "T: Pair<A: B>")
	before, found := Cut(s, IsAnnotation)
	if !found || Concat(before) != "T" {
		t.Errorf("Cut = %q, %v", Concat(before), found)
	}

	s = mustTokenize(t, "T")
	before, found = Cut(s, IsAnnotation)
	if found || Concat(before) != "T" {
		t.Errorf("Cut without match = %q, %v", Concat(before), found)
	}
}
