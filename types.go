package clifford

import "github.com/chriso345/clifford/core"

// Clifford is the primary metadata marker for CLI definitions.
//
// It can be embedded in the root struct to define metadata for the CLI tool itself,
// such as its name, version, or other global settings via struct tags.
//
// It can also be embedded into subcommand structs to name and describe them.
//
// Usage:
//
// Root-level CLI tool definition:
//
//	cli := struct {
//	    Clifford `name:"mytool" version:"1.0.0"`
//	    ...
//	}{}
//
// Subcommand metadata:
//
//	cli := struct {
//	    Serve struct {
//	        Subcommand
//	        Clifford `name:"serve" desc:"Start the server"`
//	    }
//	}{}
type Clifford = core.Clifford

// Version is a marker type that indicates the CLI tool supports a `--version` flag.
//
// When included in the root struct, `Version` enables version display logic.
// If the `version` struct tag is set, Clifford will use it directly. If left empty,
// the main module version from the build info is shown.
//
// Usage:
//
// // Automatic detection or programmatic assignment
//
//	cli := struct {
//	    Clifford `name:"mytool"`
//	    Version
//	}{}
//
// // Static version string via struct tag
//
//	cli := struct {
//	    Clifford `name:"mytool"`
//	    Version `version:"1.0.0"`
//	}{}
type Version = core.Version

// Help is a marker type that enables the automatic `--help` and `-h` flag handling.
//
// When embedded in the root struct, this allows the user to request usage help.
// If `-h` or `--help` is passed, Clifford prints the help text and exits
// gracefully. A `type:"subcmd"` tag switches to a `help [command]` positional
// instead, and `type:"both"` enables both forms.
//
// Usage:
//
//	cli := struct {
//	    Clifford `name:"mytool"`
//	    Help
//	    ...
//	}{}
type Help = core.Help

// Subcommand is a helper exported from core to mark fields as subcommands.
// Usage: embed clifford.Subcommand in a sub-struct to mark it as a subcommand.
// After parsing, the marker of the subcommand that ran is true.
type Subcommand = core.Subcommand

// Desc is a helper type that annotates a command or subcommand with a description.
//
// This description will be included in the generated help output. Arguments
// are described with a `desc` tag on the Arg field instead.
//
// Usage:
//
//	cli := struct {
//	    Clifford `name:"mytool"`
//	    Desc     `desc:"Does useful things"`
//	}{}
type Desc = core.Desc

// Arg is a command-line argument holding a value of type T.
//
// Before parsing, an Arg describes how it appears on the command line; after
// parsing it holds the decoded value, available through Value. Supported
// value types are strings, bools, integers, floats, time.Duration, types
// implementing encoding.TextUnmarshaler and types implementing Decodable.
//
// Usage:
//
//	cli := struct {
//	    Port Arg[int]           `short:"p" long:"port" default:"8080"`
//	    Tags Arg[List[string]] `long:"tag"`
//	}{}
type Arg[T any] = core.Arg[T]

// List collects every occurrence of a repeated option.
type List[T any] = core.List[T]

// Decodable is implemented by value types that decode themselves from the
// raw command-line input.
type Decodable = core.Decodable

// Decoder is the context passed to Decodable values.
type Decoder = core.Decoder

// Mode selects how absent values are handled during decoding.
type Mode = core.Mode

// Option configures a call to Parse.
type Option = core.Option
