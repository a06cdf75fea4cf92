// Package snippet runs Go programs at expansion time and returns what
// they print as tokens.
//
// A snippet is a complete main package. Execute writes it to {name}.go,
// builds it with the host module's language version, runs the binary and
// re-tokenizes its standard output:
//
//	r := snippet.New(&snippet.GoToolchain{}, manifest.File{}, "")
//	s, err := r.Execute(ctx, "five", "package main\nfunc main() { print(5) }")
//
// Whatever the program prints becomes source at the call site, so
// printing 5 yields the integer literal 5 and printing "\"Hello\"" yields
// the string literal "Hello".
//
// Both files are removed on every exit path. With Runner.Dir set, names
// are not made unique: two snippets with the same name in the same
// directory overwrite each other. The executed program is not sandboxed
// and has no timeout.
package snippet
