package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	serrors "github.com/wippyai/splice/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go.mod")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup, like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestFile_Dialect(t *testing.T) {
	path := writeManifest(t, "module example.com/host\n\ngo 1.24.1\n\nrequire golang.org/x/mod v0.30.0\n")
	got, err := File{Path: path}.Dialect()
	if err != nil {
		t.Fatalf("Dialect() error: %v", err)
	}
	if got != "1.24.1" {
		t.Errorf("Dialect() = %q, want 1.24.1", got)
	}
}

func TestFile_DialectFromSubdirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/host\n\ngo 1.22.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "examples", "basic")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, sub)

	for _, path := range []string{"", DefaultPath} {
		got, err := File{Path: path}.Dialect()
		if err != nil {
			t.Fatalf("File{Path: %q}.Dialect() error: %v", path, err)
		}
		if got != "1.22.3" {
			t.Errorf("File{Path: %q}.Dialect() = %q, want 1.22.3", path, got)
		}
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "go.mod")
	if err := os.WriteFile(want, []byte("module example.com/host\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// A directory named go.mod is not a manifest.
	if err := os.Mkdir(filepath.Join(root, "a", "go.mod"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(sub)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	want, _ = filepath.EvalSymlinks(want)
	if got, _ = filepath.EvalSymlinks(got); got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestFile_DialectErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		kind serrors.Kind
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "go.mod") },
			kind: serrors.KindNotFound,
		},
		{
			name: "unparseable",
			path: func(t *testing.T) string { return writeManifest(t, "module \"example.com/host\ngo 1.22\n") },
			kind: serrors.KindInvalidData,
		},
		{
			name: "no go directive",
			path: func(t *testing.T) string { return writeManifest(t, "module example.com/host\n") },
			kind: serrors.KindInvalidData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := File{Path: tt.path(t)}.Dialect()
			if err == nil {
				t.Fatal("Dialect() succeeded, want error")
			}
			if !errors.Is(err, &serrors.Error{Phase: serrors.PhaseManifest, Kind: tt.kind}) {
				t.Errorf("Dialect() error = %v, want manifest/%s", err, tt.kind)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	if v, err := Static("1.22").Dialect(); err != nil || v != "1.22" {
		t.Errorf("Static.Dialect() = %q, %v", v, err)
	}
	if _, err := Static("").Dialect(); err == nil {
		t.Error("empty Static should fail")
	}
}

func TestLang(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1.24.1", "go1.24", false},
		{"1.21", "go1.21", false},
		{"1.23rc1", "go1.23", false},
		{"go1.25.4", "go1.25", false},
		{"banana", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Lang(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Lang(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Lang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
