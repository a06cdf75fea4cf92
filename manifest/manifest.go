// Package manifest reads the language version of the host module, which
// snippets are compiled under so they follow the same language rules as
// the code they are spliced into.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"

	"github.com/wippyai/splice/errors"
)

// DefaultPath is the manifest name searched for from the working
// directory upward.
const DefaultPath = "go.mod"

// Source supplies the host dialect, a Go version such as "1.24.1".
type Source interface {
	Dialect() (string, error)
}

// File reads the go directive of a go.mod file on every call. An empty or
// default Path resolves to the nearest go.mod at or above the working
// directory, since go generate runs in the package directory.
type File struct {
	Path string
}

// Dialect implements Source.
func (f File) Dialect() (string, error) {
	path := f.Path
	if path == "" || path == DefaultPath {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.IO(errors.PhaseManifest, "getwd", ".", err)
		}
		if path, err = Find(wd); err != nil {
			return "", err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.New(errors.PhaseManifest, errors.KindNotFound).
			Path(path).
			Detail("failed to load %s", path).
			Cause(err).
			Build()
	}
	mf, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return "", errors.New(errors.PhaseManifest, errors.KindInvalidData).
			Path(path).
			Detail("failed to parse %s", path).
			Cause(err).
			Build()
	}
	if mf.Go == nil || mf.Go.Version == "" {
		return "", errors.New(errors.PhaseManifest, errors.KindInvalidData).
			Path(path).
			Detail("missing go directive").
			Build()
	}
	return mf.Go.Version, nil
}

// Find returns the path of the nearest go.mod in dir or one of its parents.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.IO(errors.PhaseManifest, "abs", dir, err)
	}
	for {
		path := filepath.Join(dir, DefaultPath)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.NotFound(errors.PhaseManifest, "manifest", DefaultPath)
		}
		dir = parent
	}
}

// Static is a fixed dialect, used for overrides.
type Static string

// Dialect implements Source.
func (s Static) Dialect() (string, error) {
	if s == "" {
		return "", errors.InvalidInput(errors.PhaseManifest, "empty dialect")
	}
	return string(s), nil
}

// Lang converts a go directive version into the compiler's -lang value:
// "1.24.1" and "1.24rc1" both become "go1.24".
func Lang(version string) (string, error) {
	v := strings.TrimPrefix(version, "go")
	if i := strings.IndexAny(v, "abcdefghijklmnopqrstuvwxyz"); i > 0 {
		v = v[:i]
	}
	mm := semver.MajorMinor("v" + v)
	if mm == "" {
		return "", errors.New(errors.PhaseManifest, errors.KindInvalidData).
			Value(version).
			Detail("invalid go version %q", version).
			Build()
	}
	return "go" + strings.TrimPrefix(mm, "v"), nil
}
