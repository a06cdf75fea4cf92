package snippet

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/splice/errors"
	"github.com/wippyai/splice/manifest"
)

// Toolchain builds and runs a snippet. Both calls block until the child
// process exits.
type Toolchain interface {
	// Compile builds the single-file program src into the binary out
	// under the given dialect (a go directive version).
	Compile(ctx context.Context, src, out, dialect string) error
	// Run executes bin without arguments and returns its standard output.
	Run(ctx context.Context, bin string) ([]byte, error)
}

// GoToolchain drives the go command.
type GoToolchain struct {
	// Stderr receives build diagnostics and the snippet's stderr.
	// Defaults to os.Stderr.
	Stderr io.Writer
	// GoBin is the go command. Defaults to "go".
	GoBin string
	// Env is appended to the inherited environment.
	Env []string
}

func (g *GoToolchain) goBin() string {
	if g.GoBin == "" {
		return "go"
	}
	return g.GoBin
}

func (g *GoToolchain) stderr() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

// Compile implements Toolchain with `go build -o out -gcflags=-lang=goX.Y src`.
// The build runs in the directory holding src, so a snippet written into
// a module root may import that module's dependencies.
func (g *GoToolchain) Compile(ctx context.Context, src, out, dialect string) error {
	lang, err := manifest.Lang(dialect)
	if err != nil {
		return err
	}
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return errors.IO(errors.PhaseCompile, "resolve source path", src, err)
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return errors.IO(errors.PhaseCompile, "resolve binary path", out, err)
	}

	cmd := exec.CommandContext(ctx, g.goBin(), "build", "-o", absOut, "-gcflags=-lang="+lang, absSrc)
	cmd.Dir = filepath.Dir(absSrc)
	cmd.Stdout = g.stderr()
	cmd.Stderr = g.stderr()
	if len(g.Env) > 0 {
		cmd.Env = append(os.Environ(), g.Env...)
	}

	Logger().Debug("go build", zap.Strings("args", cmd.Args), zap.String("dir", cmd.Dir))
	if err := cmd.Run(); err != nil {
		return errors.Toolchain(errors.PhaseCompile, status(err), err)
	}
	return nil
}

// Run implements Toolchain.
func (g *GoToolchain) Run(ctx context.Context, bin string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin)
	cmd.Stderr = g.stderr()
	if len(g.Env) > 0 {
		cmd.Env = append(os.Environ(), g.Env...)
	}

	Logger().Debug("run snippet", zap.String("bin", bin))
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Toolchain(errors.PhaseRun, status(err), err)
	}
	return out, nil
}

// status is the raw process status, or the start failure when the
// process never ran.
func status(err error) string {
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ProcessState.String()
	}
	return err.Error()
}
