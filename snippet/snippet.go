package snippet

import (
	"context"
	gotoken "go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/splice/errors"
	"github.com/wippyai/splice/manifest"
	"github.com/wippyai/splice/token"
)

// Runner executes snippets: write, compile, run, capture, re-tokenize.
type Runner struct {
	Toolchain Toolchain
	Manifest  manifest.Source
	// Dir holds the source file and binary. Empty means a fresh
	// temporary directory per Execute call.
	Dir string
}

// New returns a Runner.
func New(tc Toolchain, src manifest.Source, dir string) *Runner {
	return &Runner{Toolchain: tc, Manifest: src, Dir: dir}
}

// ExecuteTokens is the exec! macro surface: args is `name , body...`.
// name must be a single identifier and the body is passed on verbatim.
func (r *Runner) ExecuteTokens(ctx context.Context, args token.Stream) (token.Stream, error) {
	if len(args) == 0 || !token.IsIdent(args[0]) {
		return nil, errors.InvalidInput(errors.PhaseParse, "could not get path")
	}
	if len(args) < 2 || !token.IsSeparator(args[1]) {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Line(args[0].Pos.Line).
			Detail("expected comma after filename").
			Build()
	}
	return r.Execute(ctx, args[0].Text, token.Render(args[2:]))
}

// Execute writes body to {name}.go, builds and runs it, and returns the
// program's standard output as tokens. The source file and the binary
// are removed on every return path once they may exist.
func (r *Runner) Execute(ctx context.Context, name, body string) (token.Stream, error) {
	if !gotoken.IsIdentifier(name) {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Value(name).
			Detail("snippet name %q is not an identifier", name).
			Build()
	}

	dialect, err := r.Manifest.Dialect()
	if err != nil {
		return nil, err
	}

	dir, release, err := r.workDir(name)
	if err != nil {
		return nil, err
	}
	defer release()

	src := filepath.Join(dir, name+".go")
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		return nil, errors.IO(errors.PhaseCompile, "failed to make file", src, err)
	}
	defer remove(src)

	log := Logger().With(zap.String("snippet", name))
	log.Debug("compiling", zap.String("src", src), zap.String("dialect", dialect))

	bin := binaryPath(dir, name)
	if err := r.Toolchain.Compile(ctx, src, bin, dialect); err != nil {
		return nil, err
	}
	// Armed before running: a failed run must not leave the binary behind.
	defer remove(bin)

	out, err := r.Toolchain.Run(ctx, bin)
	if err != nil {
		return nil, err
	}
	log.Debug("captured output", zap.Int("bytes", len(out)))

	if !utf8.Valid(out) {
		return nil, errors.InvalidUTF8(errors.PhaseOutput, []string{name}, out)
	}
	s, err := token.Tokenize(string(out))
	if err != nil {
		return nil, errors.New(errors.PhaseOutput, errors.KindInvalidData).
			Path(name).
			Detail("snippet output is not valid source").
			Cause(err).
			Build()
	}
	return s, nil
}

func (r *Runner) workDir(name string) (string, func(), error) {
	if r.Dir != "" {
		return r.Dir, func() {}, nil
	}
	dir, err := os.MkdirTemp("", "splice-"+name+"-")
	if err != nil {
		return "", nil, errors.IO(errors.PhaseCompile, "create work dir", os.TempDir(), err)
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

// binaryPath joins dir and name, keeping a leading "./" so the binary is
// never looked up through PATH.
func binaryPath(dir, name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	p := filepath.Join(dir, name)
	if !filepath.IsAbs(p) && !strings.ContainsRune(p, filepath.Separator) {
		p = "." + string(filepath.Separator) + p
	}
	return p
}

func remove(path string) {
	_ = os.Remove(path)
}
