package dump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/splice/token"
)

func read(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	args, err := token.Tokenize("struct Point { x: int, y: int }")
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(dir, args); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	tokens := read(t, dir, TokensFile)
	if !strings.Contains(tokens, "Ident struct (line 1)") || !strings.Contains(tokens, "Group {} (line 1)") {
		t.Errorf("tokens dump:\n%s", tokens)
	}

	d := read(t, dir, DeclFile)
	for _, want := range []string{`Name: (string) (len=5) "Point"`, `Type: (string) (len=3) "int"`} {
		if !strings.Contains(d, want) {
			t.Errorf("decl dump missing %q:\n%s", want, d)
		}
	}

	impl := read(t, dir, ImplFile)
	if !strings.Contains(impl, "func DecodePoint(") || !strings.Contains(impl, "func (v Point) EncodeWire(") {
		t.Errorf("impl dump:\n%s", impl)
	}
}

func TestWrite_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	args, err := token.Tokenize("struct Broken { x: }")
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(dir, args); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if d := read(t, dir, DeclFile); !strings.HasPrefix(d, "error: [parse]") {
		t.Errorf("decl dump = %q", d)
	}
	if tokens := read(t, dir, TokensFile); !strings.Contains(tokens, "Ident Broken") {
		t.Errorf("tokens dump = %q", tokens)
	}
}

func TestWrite_Overwrites(t *testing.T) {
	dir := t.TempDir()
	first, _ := token.Tokenize("struct A { a: int }")
	second, _ := token.Tokenize("struct B { b: int }")
	if err := Write(dir, first); err != nil {
		t.Fatal(err)
	}
	if err := Write(dir, second); err != nil {
		t.Fatal(err)
	}
	if impl := read(t, dir, ImplFile); strings.Contains(impl, "DecodeA") || !strings.Contains(impl, "DecodeB") {
		t.Errorf("impl dump not overwritten:\n%s", impl)
	}
}

func TestWrite_MissingDir(t *testing.T) {
	args, _ := token.Tokenize("struct A { a: int }")
	if err := Write(filepath.Join(t.TempDir(), "missing"), args); err == nil {
		t.Error("expected error for missing directory")
	}
}
