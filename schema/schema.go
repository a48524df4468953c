// Package schema holds the declaration model shared by the parser and the
// help renderer.
//
// Arguments describe themselves through Declarations during the discovery
// pass. The parser uses them as its grammar, and display renders them as
// usage text.
package schema

import "strings"

// PropertyID identifies one declared argument within a command tree.
type PropertyID struct {
	Name string // label used in prompts and errors
	Path string // space-separated command chain, e.g. "app serve"
}

// Label returns the human-readable name of the property.
func (id PropertyID) Label() string { return id.Name }

func (id PropertyID) String() string {
	if id.Path == "" {
		return id.Name
	}
	return strings.ReplaceAll(id.Path, " ", ".") + "." + id.Name
}

// Kind describes how a declaration appears on the command line.
type Kind int

const (
	Positional Kind = iota // bare token matched by position
	Option                 // -s/--long followed by a value
	Flag                   // -s/--long without a value
)

func (k Kind) String() string {
	switch k {
	case Positional:
		return "positional"
	case Option:
		return "option"
	case Flag:
		return "flag"
	}
	return "unknown"
}

// Declaration describes how a single property maps onto command-line syntax.
type Declaration struct {
	Key       PropertyID
	Kind      Kind
	Short     string
	Long      string
	Help      string
	ValueName string
	Default   string
	Required  bool
	Secret    bool

	// Parse converts one raw token into the property's value type. It is nil
	// for values that decode themselves.
	Parse func(raw string) (any, error)

	// Zero is the typed zero value used when an optional property is absent.
	Zero any
}

// Builder produces the declaration of a property from its identifier.
type Builder func(PropertyID) Declaration

// HelpMode controls how help is exposed for a command.
type HelpMode string

const (
	HelpNone   HelpMode = ""
	HelpFlag   HelpMode = "flag"
	HelpSubcmd HelpMode = "subcmd"
	HelpBoth   HelpMode = "both"
)

// AllowsFlag reports whether -h/--help should be recognised.
func (m HelpMode) AllowsFlag() bool { return m == HelpFlag || m == HelpBoth }

// AllowsSubcmd reports whether a positional `help` should be recognised.
func (m HelpMode) AllowsSubcmd() bool { return m == HelpSubcmd || m == HelpBoth }

// Subcommand is the summary of a nested command shown in its parent's help.
type Subcommand struct {
	Name string
	Desc string
	Help HelpMode
}

// Command is the result of the discovery pass over one command struct.
type Command struct {
	Name        string
	Path        string
	Version     string
	Desc        string
	Help        HelpMode
	ShowVersion bool
	Arguments   []Declaration
	Subcommands []Subcommand
}

// Positionals returns the positional declarations in declaration order.
func (c Command) Positionals() []Declaration {
	var out []Declaration
	for _, d := range c.Arguments {
		if d.Kind == Positional {
			out = append(out, d)
		}
	}
	return out
}

// Options returns the option and flag declarations in declaration order.
func (c Command) Options() []Declaration {
	var out []Declaration
	for _, d := range c.Arguments {
		if d.Kind != Positional {
			out = append(out, d)
		}
	}
	return out
}
