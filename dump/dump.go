package dump

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/wippyai/splice/codegen"
	"github.com/wippyai/splice/decl"
	"github.com/wippyai/splice/errors"
	"github.com/wippyai/splice/token"
)

// Output file names, relative to the dump directory.
const (
	TokensFile = "splice-tokens.txt"
	DeclFile   = "splice-decl.txt"
	ImplFile   = "splice-impl.txt"
)

var printer = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Write is WriteWith using default generator options.
func Write(dir string, args token.Stream) error {
	return WriteWith(dir, args, codegen.Options{})
}

// WriteWith writes the three dump files for args into dir, overwriting
// any previous dump. A declaration that fails to parse or generate is
// reported inside the files; only filesystem failures are returned.
func WriteWith(dir string, args token.Stream, opts codegen.Options) error {
	if err := put(dir, TokensFile, token.Dump(args)); err != nil {
		return err
	}

	d, err := decl.Parse(args)
	if err != nil {
		text := "error: " + err.Error() + "\n"
		if err := put(dir, DeclFile, text); err != nil {
			return err
		}
		return put(dir, ImplFile, text)
	}
	if err := put(dir, DeclFile, printer.Sdump(d)); err != nil {
		return err
	}

	src, err := codegen.Source(d, opts)
	if err != nil {
		src = "error: " + err.Error() + "\n"
	}
	return put(dir, ImplFile, src)
}

func put(dir, name, content string) error {
	path := filepath.Join(dir, name)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.IO(errors.PhaseExpand, "write dump", path, err)
	}
	return nil
}
