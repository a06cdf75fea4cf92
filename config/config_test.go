package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Toolchain != "go" || cfg.Suffix != ".splice" || !cfg.Format || cfg.WorkDir != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splice.yaml")
	content := "toolchain: /usr/local/go/bin/go\nwork_dir: .\nformat: false\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Toolchain != "/usr/local/go/bin/go" {
		t.Errorf("Toolchain = %q", cfg.Toolchain)
	}
	if cfg.WorkDir != "." {
		t.Errorf("WorkDir = %q", cfg.WorkDir)
	}
	if cfg.Format {
		t.Error("Format should be false")
	}
	if cfg.Suffix != ".splice" {
		t.Errorf("unset Suffix should keep its default, got %q", cfg.Suffix)
	}
	if lvl, _ := cfg.Level(); lvl != zapcore.DebugLevel {
		t.Errorf("Level() = %v", lvl)
	}
}

func TestLoad_Env(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splice.yaml")
	if err := os.WriteFile(path, []byte("dialect: \"1.22\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Dialect != "1.22" {
		t.Errorf("Dialect = %q", cfg.Dialect)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "absent.yaml")},
		{"bad yaml", write("bad.yaml", "toolchain: [unclosed\n")},
		{"bad level", write("level.yaml", "log_level: loud\n")},
		{"empty suffix", write("suffix.yaml", "suffix: \"\"\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}
