package expand

import (
	"context"
	stderrors "errors"
	"go/format"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/splice/errors"
	"github.com/wippyai/splice/token"
)

// DefaultSuffix marks template files.
const DefaultSuffix = ".splice"

// Macro turns the tokens inside a call site's parentheses into the Go
// source that replaces the whole call.
type Macro func(ctx context.Context, args token.Stream) (string, error)

// Expander rewrites templates by replacing `name!(...)` call sites with
// the output of the registered macros.
type Expander struct {
	macros map[string]Macro
	// Format runs gofmt over the expanded file.
	Format bool
	// Suffix is stripped from template names to form output names.
	Suffix string
}

// New returns an Expander with no macros that formats its output.
func New() *Expander {
	return &Expander{
		macros: make(map[string]Macro),
		Format: true,
		Suffix: DefaultSuffix,
	}
}

// Register binds name to m, replacing any earlier binding.
func (e *Expander) Register(name string, m Macro) {
	e.macros[name] = m
}

// Macros returns the registered names in sorted order.
func (e *Expander) Macros() []string {
	names := make([]string, 0, len(e.macros))
	for name := range e.macros {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// call is one call site: Start and End are byte offsets of the whole
// `name!(...)` text.
type call struct {
	Name  string
	Args  token.Stream
	Start int
	End   int
	Line  int
}

// calls finds call sites in source order. A call's arguments are not
// searched, so macros never see expanded input.
func calls(s token.Stream) []call {
	var out []call
	for i := 0; i < len(s); i++ {
		t := s[i]
		if t.Kind == token.Ident && i+2 < len(s) {
			bang, args := s[i+1], s[i+2]
			if token.IsPunct(bang, '!') && bang.Lead == token.LeadNone &&
				token.IsGroup(args, token.Paren) && args.Lead == token.LeadNone {
				out = append(out, call{
					Name:  t.Text,
					Args:  args.Children,
					Start: t.Pos.Offset,
					End:   args.End,
					Line:  t.Pos.Line,
				})
				i += 2
				continue
			}
		}
		if t.Kind == token.Group {
			out = append(out, calls(t.Children)...)
		}
	}
	return out
}

// Expand replaces every call site in src. Text outside call sites is
// kept byte for byte before formatting.
func (e *Expander) Expand(ctx context.Context, src []byte) ([]byte, error) {
	tokens, err := token.Tokenize(string(src))
	if err != nil {
		return nil, err
	}

	sites := calls(tokens)
	if len(sites) == 0 {
		return src, nil
	}

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, c := range sites {
		m, ok := e.macros[c.Name]
		if !ok {
			err := errors.NotFound(errors.PhaseExpand, "macro", c.Name+"!")
			err.Path = []string{c.Name}
			err.Line = c.Line
			return nil, err
		}

		Logger().Debug("expanding", zap.String("macro", c.Name), zap.Int("line", c.Line))
		out, err := m(ctx, c.Args)
		if err != nil {
			return nil, callError(c, err)
		}

		b.Write(src[last:c.Start])
		b.WriteString(out)
		last = c.End
	}
	b.Write(src[last:])

	result := []byte(b.String())
	if !e.Format {
		return result, nil
	}
	formatted, err := format.Source(result)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseExpand, errors.KindInvalidData, err, "expanded source does not format")
	}
	return formatted, nil
}

func callError(c call, err error) error {
	kind := errors.KindInvalidInput
	var inner *errors.Error
	if stderrors.As(err, &inner) {
		kind = inner.Kind
	}
	return errors.New(errors.PhaseExpand, kind).
		Path(c.Name).
		Line(c.Line).
		Cause(err).
		Build()
}

// OutputPath strips suffix from a template path.
func OutputPath(in, suffix string) (string, error) {
	out, ok := strings.CutSuffix(in, suffix)
	if !ok || out == "" || strings.HasSuffix(out, string(os.PathSeparator)) {
		return "", errors.New(errors.PhaseExpand, errors.KindInvalidInput).
			Value(in).
			Detail("template %q does not end in %q", in, suffix).
			Build()
	}
	return out, nil
}

// ExpandFile expands the template at in and writes the result to out,
// or to in without the suffix when out is empty. It returns the path
// written.
func (e *Expander) ExpandFile(ctx context.Context, in, out string) (string, error) {
	if out == "" {
		var err error
		if out, err = OutputPath(in, e.Suffix); err != nil {
			return "", err
		}
	}

	src, err := os.ReadFile(in)
	if err != nil {
		return "", errors.IO(errors.PhaseExpand, "read template", in, err)
	}
	result, err := e.Expand(ctx, src)
	if err != nil {
		if serr, ok := err.(*errors.Error); ok && len(serr.Path) == 0 {
			serr.Path = []string{in}
		}
		return "", err
	}
	if err := os.WriteFile(out, result, 0o644); err != nil {
		return "", errors.IO(errors.PhaseExpand, "write output", out, err)
	}
	Logger().Info("expanded", zap.String("template", in), zap.String("output", out))
	return out, nil
}
