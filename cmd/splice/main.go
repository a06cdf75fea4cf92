// splice expands macro templates into Go source.
//
//	//go:generate splice types.go.splice
//
// Each template path must end in the configured suffix (.splice by
// default); the output is written next to it with the suffix removed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/splice"
	"github.com/wippyai/splice/config"
	"github.com/wippyai/splice/errors"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

type options struct {
	configPath string
	output     string
	stdout     bool
	workDir    string
	toolchain  string
	dialect    string
	noFormat   bool
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, argv []string, stdout io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("splice", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVarP(&opts.output, "output", "o", "", "output file, only with a single template")
	flagSet.BoolVar(&opts.stdout, "stdout", false, "print expanded source instead of writing files")
	flagSet.StringVar(&opts.workDir, "work-dir", "", "directory for snippet sources and binaries (default: temporary)")
	flagSet.StringVar(&opts.toolchain, "toolchain", "", "go command used to build snippets")
	flagSet.StringVar(&opts.dialect, "dialect", "", "Go version for snippets, overriding go.mod")
	flagSet.BoolVar(&opts.noFormat, "no-format", false, "skip gofmt on expanded output")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(argv); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return errors.InvalidInput(errors.PhaseConfig, err.Error())
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	templates := flagSet.Args()
	if len(templates) == 0 {
		printHelp(flagSet)
		return errors.InvalidInput(errors.PhaseConfig, "no templates given")
	}
	if opts.output != "" && len(templates) > 1 {
		return errors.InvalidInput(errors.PhaseConfig, "--output needs exactly one template")
	}
	if opts.output != "" && opts.stdout {
		return errors.InvalidInput(errors.PhaseConfig, "--output and --stdout are mutually exclusive")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, flagSet, &opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := newLogger(level)
	defer func() { _ = logger.Sync() }()
	splice.SetLogger(logger)

	e, err := splice.New(cfg)
	if err != nil {
		return err
	}

	for _, in := range templates {
		if opts.stdout {
			src, err := os.ReadFile(in)
			if err != nil {
				return errors.IO(errors.PhaseExpand, "read template", in, err)
			}
			out, err := e.Expand(ctx, src)
			if err != nil {
				return err
			}
			if _, err := stdout.Write(out); err != nil {
				return errors.IO(errors.PhaseExpand, "write output", "stdout", err)
			}
			continue
		}
		out, err := e.ExpandFile(ctx, in, opts.output)
		if err != nil {
			return err
		}
		logger.Debug("wrote", zap.String("path", out))
	}
	return nil
}

// applyFlags copies explicitly set flags over file values.
func applyFlags(cfg *config.Config, flagSet *pflag.FlagSet, opts *options) {
	if flagSet.Changed("work-dir") {
		cfg.WorkDir = opts.workDir
	}
	if flagSet.Changed("toolchain") {
		cfg.Toolchain = opts.toolchain
	}
	if flagSet.Changed("dialect") {
		cfg.Dialect = opts.dialect
	}
	if flagSet.Changed("no-format") {
		cfg.Format = !opts.noFormat
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newLogger writes colored console logs to a terminal and JSON lines
// otherwise, which is what go generate output usually ends up in.
func newLogger(level zapcore.Level) *zap.Logger {
	var enc zapcore.Encoder
	if isTerminal(os.Stderr) {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level))
}

func printError(err error) {
	if !isTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "splice: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("splice:"), err)
}

func printHelp(flagSet *pflag.FlagSet) {
	usage := "splice [flags] <template>..."
	if isTerminal(os.Stderr) {
		usage = pathStyle.Render(usage)
	}
	fmt.Fprintf(os.Stderr, `Expand macro templates into Go source.

Usage:
  %s

Macros: exec!(name, program), decode!(decl), encode!(decl), codec!(decl), dump!(decl)

Flags:
%s`, usage, flagSet.FlagUsages())
}
