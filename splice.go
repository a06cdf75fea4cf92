package splice

import (
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/splice/codegen"
	"github.com/wippyai/splice/config"
	"github.com/wippyai/splice/expand"
	"github.com/wippyai/splice/manifest"
	"github.com/wippyai/splice/snippet"
)

// New returns an Expander with every builtin macro registered according
// to cfg. A nil cfg means config.Default().
func New(cfg *config.Config) (*expand.Expander, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runner := snippet.New(
		&snippet.GoToolchain{GoBin: cfg.Toolchain, Stderr: os.Stderr},
		Manifest(cfg),
		cfg.WorkDir,
	)

	e := expand.New()
	e.Format = cfg.Format
	e.Suffix = cfg.Suffix
	e.RegisterBuiltins(runner, cfg.DumpDir, codegen.Options{WirePkg: cfg.WirePackage})
	return e, nil
}

// Manifest returns where snippets get their language version: the
// configured dialect if set, the manifest file otherwise.
func Manifest(cfg *config.Config) manifest.Source {
	if cfg.Dialect != "" {
		return manifest.Static(cfg.Dialect)
	}
	return manifest.File{Path: cfg.Manifest}
}

// SetLogger installs l in every package that logs.
func SetLogger(l *zap.Logger) {
	snippet.SetLogger(l)
	expand.SetLogger(l)
}
