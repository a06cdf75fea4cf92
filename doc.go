// Package splice expands build-time macros in Go templates.
//
// A template is an ordinary Go file named with a .splice suffix, for
// example types.go.splice, run through `splice` from a go:generate line.
// Two kinds of macro are available:
//
//	exec!(name, package main ...)      run a Go program, splice in its output
//	decode!(struct T { ... })          generate a wire decoder for T
//	encode!(struct T { ... })          generate a wire encoder for T
//	codec!(struct T { ... })           the type declaration plus both halves
//	dump!(struct T { ... })            write diagnostics, expand to nothing
//
// # Architecture Overview
//
//	splice/            Root package, builds an Expander from a Config
//	├── cmd/splice/    Command line tool
//	├── expand/        Call-site search, macro dispatch, splicing
//	├── snippet/       Write, compile, run and re-tokenize exec! programs
//	├── manifest/      go directive lookup in go.mod
//	├── token/         Token trees: lexer, renderer, classifier
//	├── decl/          struct/enum declaration parser
//	├── codegen/       Codec IR and Go rendering
//	├── wire/          Binary format runtime used by generated code
//	├── dump/          Diagnostic files for dump!
//	├── config/        YAML configuration
//	└── errors/        Structured error types
//
// # Quick Start
//
//	e, err := splice.New(config.Default())
//	if err != nil {
//		return err
//	}
//	out, err := e.ExpandFile(ctx, "types.go.splice", "")
package splice
