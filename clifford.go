package clifford

import (
	"github.com/chriso345/clifford/core"
	"github.com/chriso345/clifford/schema"
)

// Parse parses command-line arguments into the provided target struct.
//
// The target must be a pointer to a struct whose exported fields are Arg
// values, subcommand structs or the marker types Clifford, Version, Help and
// Desc. Argument metadata is given with struct tags:
//
//	short    single-letter flag, e.g. `short:"n"` for -n
//	long     long flag, e.g. `long:"name"` for --name
//	desc     description shown in help output
//	required "true" if the value must be supplied
//	default  raw value used when the argument is omitted
//	name     label used in prompts and errors (default: lowercased field name)
//	secret   "true" to read prompted values without echo
//	value    placeholder shown in help (default: upper-cased label)
//
// Fields without short or long tags are positional. A required value that is
// missing is prompted for ("Enter <name>: ") unless WithInteractive(false) or
// WithMode(ModeCompletionScript) is given.
//
// If -h/--help or --version is passed and enabled, Parse prints the text and
// exits the program.
//
// Usage:
//
//	target := struct {
//		clifford.Clifford `name:"mytool"`
//		clifford.Help
//
//		Name  clifford.Arg[string] `short:"n" long:"name" desc:"User name"`
//		Count clifford.Arg[int]    `long:"count" required:"true"`
//		File  clifford.Arg[string] `desc:"Input file"`
//	}{}
//
//	if err := clifford.Parse(&target); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(target.Name.Value(), target.Count.Value())
var Parse = core.Parse

// BuildHelp generates and returns a formatted help message for a CLI tool
// defined by the given struct pointer.
// BuildHelp also takes in a boolean `long` parameter that, if set to true,
// also lists default values.
//
// The help text is built from the declarations every Arg field reports during
// discovery. It includes:
//   - The usage line with the command name and positional arguments
//   - A section for subcommands
//   - A section for positional arguments
//   - A section for options and flags
//
// BuildHelp must be called before Parse; a parsed Arg can no longer describe
// itself.
//
// Example:
//
//	target := struct {
//		clifford.Clifford `name:"mytool"`
//
//		Filename clifford.Arg[string] `required:"true" desc:"Input file path"`
//		Verbose  clifford.Arg[bool]   `short:"v" long:"verbose" desc:"Enable verbose output"`
//	}{}
//
//	helpText, err := clifford.BuildHelp(&target, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(helpText)
var BuildHelp = core.BuildHelp

// BuildVersion returns a formatted version string for the CLI tool defined
// by the provided struct pointer.
//
// The version comes from a `version` tag on either the Clifford or the Version
// marker. Without one, the main module version from the build info is used.
// Declaring it on both is an error.
//
// This function is automatically invoked by `Parse` if the CLI arguments
// include `--version`.
//
// Example:
//
//	target := struct {
//		clifford.Clifford `name:"mytool" version:"1.2.3"`
//	}{}
//
//	version, err := clifford.BuildVersion(&target)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(version) // Output: mytool v1.2.3
var BuildVersion = core.BuildVersion

// BuildHelpWithParent exposes the subcommand-aware help builder for callers/tests.
func BuildHelpWithParent(parent any, subName string, subTarget any, long bool) (string, error) {
	return core.BuildHelpWithParent(parent, subName, subTarget, long)
}

// Describe returns the schema discovered from target without parsing.
func Describe(target any) (schema.Command, error) {
	return core.Describe(target)
}

// NewArg returns an argument declared by build instead of struct tags.
func NewArg[T any](build schema.Builder) Arg[T] {
	return core.NewArg[T](build)
}

// Parse options.
var (
	WithArgs        = core.WithArgs
	WithInput       = core.WithInput
	WithOutput      = core.WithOutput
	WithLogger      = core.WithLogger
	WithMode        = core.WithMode
	WithInteractive = core.WithInteractive
)

// Decode modes.
const (
	ModeNormal           = core.ModeNormal
	ModeCompletionScript = core.ModeCompletionScript
)
