package expand

import (
	"context"

	"github.com/wippyai/splice/codegen"
	"github.com/wippyai/splice/decl"
	"github.com/wippyai/splice/dump"
	"github.com/wippyai/splice/snippet"
	"github.com/wippyai/splice/token"
)

// Exec returns the exec! macro: `exec!(name, program...)` runs the
// program through r and splices in what it printed.
func Exec(r *snippet.Runner) Macro {
	return func(ctx context.Context, args token.Stream) (string, error) {
		out, err := r.ExecuteTokens(ctx, args)
		if err != nil {
			return "", err
		}
		return token.Render(out), nil
	}
}

// Codec returns a macro that parses its arguments as a declaration and
// emits the requested codec halves, preceded by the Go type itself when
// withType is set.
func Codec(opts codegen.Options, withType bool, dirs ...codegen.Direction) Macro {
	return func(_ context.Context, args token.Stream) (string, error) {
		d, err := decl.Parse(args)
		if err != nil {
			return "", err
		}
		src, err := codegen.Source(d, opts, dirs...)
		if err != nil {
			return "", err
		}
		if withType {
			src = codegen.TypeDecl(d) + "\n" + src
		}
		return src, nil
	}
}

// Dump returns the dump! macro, which writes diagnostics into dir and
// expands to nothing.
func Dump(dir string, opts codegen.Options) Macro {
	return func(_ context.Context, args token.Stream) (string, error) {
		return "", dump.WriteWith(dir, args, opts)
	}
}

// RegisterBuiltins binds exec, decode, encode, codec and dump.
func (e *Expander) RegisterBuiltins(r *snippet.Runner, dumpDir string, opts codegen.Options) {
	e.Register("exec", Exec(r))
	e.Register("decode", Codec(opts, false, codegen.Decode))
	e.Register("encode", Codec(opts, false, codegen.Encode))
	e.Register("codec", Codec(opts, true, codegen.Decode, codegen.Encode))
	e.Register("dump", Dump(dumpDir, opts))
}
