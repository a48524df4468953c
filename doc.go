// Package clifford is a CLI argument parsing library for Go that uses reflection
// and struct tags to define command-line interfaces declaratively.
//
// Every argument is an Arg field. Before parsing an Arg only knows how to
// describe itself; the parser collects those descriptions to build its
// grammar and the help text. Parsing then decodes each Arg exactly once, in
// declaration order. A required value missing from the command line is
// prompted for on the console, unless prompting is disabled or the parser
// runs in completion-script mode.
//
// It supports positional arguments, short and long flags, repeated options,
// subcommands, required arguments and automatic help and version output.
package clifford

//go:generate gomarkdoc ./ -o docs/clifford.md
