package display

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chriso345/clifford/schema"
)

// BuildHelp renders the help text for a root command. The long form also
// lists default values.
func BuildHelp(cmd schema.Command, long bool) string {
	name := cmd.Name
	if name == "" {
		name = filepath.Base(os.Args[0])
	}
	return render(name, cmd, long)
}

// BuildHelpWithParent builds help for a subcommand while showing the parent application name
// and the subcommand name together (e.g. "app server [OPTIONS]").
func BuildHelpWithParent(parent string, sub schema.Command, long bool) string {
	if parent == "" {
		parent = "<app>"
	}
	return render(parent+" "+sub.Name, sub, long)
}

func render(fullName string, cmd schema.Command, long bool) string {
	var builder strings.Builder
	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(fullName, ansiBold))

	for _, d := range cmd.Positionals() {
		builder.WriteString(" " + positionalName(d))
	}
	if hasOptions(cmd) {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if cmd.Desc != "" {
		builder.WriteString("\n" + cmd.Desc + "\n")
	}

	// List subcommands if any
	if subcommandsHelp := buildSubcommandsHelp(cmd); subcommandsHelp != "" {
		builder.WriteString("\n" + ansiHelp("Subcommands:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(subcommandsHelp)
	}

	if len(cmd.Positionals()) > 0 {
		builder.WriteString("\n" + ansiHelp("Arguments:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(argsHelp(cmd, long))
	}

	if hasOptions(cmd) {
		builder.WriteString("\n" + ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(optionsHelp(cmd, long))
	}

	return builder.String()
}

// buildSubcommandsHelp returns formatted subcommands lines for cmd.
func buildSubcommandsHelp(cmd schema.Command) string {
	var rows [][2]string
	for _, s := range cmd.Subcommands {
		rows = append(rows, [2]string{"  " + s.Name, s.Desc})
	}
	if len(rows) > 0 && cmd.Help.AllowsSubcmd() {
		rows = append(rows, [2]string{"  help", "Show help for a specific command"})
	}
	return alignRows(rows)
}

// === HELPERS ===

// argsHelp generates help text for the positional arguments of cmd.
func argsHelp(cmd schema.Command, long bool) string {
	var rows [][2]string
	for _, d := range cmd.Positionals() {
		rows = append(rows, [2]string{"  " + positionalName(d), describe(d, long)})
	}
	return alignRows(rows)
}

// optionsHelp generates help text for the options and flags of cmd.
func optionsHelp(cmd schema.Command, long bool) string {
	var rows [][2]string
	for _, d := range cmd.Options() {
		var flag string
		switch {
		case d.Short != "" && d.Long != "":
			flag = fmt.Sprintf("  -%s, --%s", d.Short, d.Long)
		case d.Short != "":
			flag = fmt.Sprintf("  -%s", d.Short)
		default:
			flag = fmt.Sprintf("  --%s", d.Long)
		}
		if d.Kind == schema.Option {
			flag += fmt.Sprintf(" [%s]", d.ValueName)
		}
		rows = append(rows, [2]string{flag, describe(d, long)})
	}

	if cmd.ShowVersion {
		rows = append(rows, [2]string{"  --version", "Show version information"})
	}
	if cmd.Help.AllowsFlag() {
		rows = append(rows, [2]string{"  -h, --help", "Show this help message"})
	}
	return alignRows(rows)
}

// positionalName renders d as <NAME> when required and [NAME] otherwise.
func positionalName(d schema.Declaration) string {
	if d.Required {
		return "<" + d.ValueName + ">"
	}
	return "[" + d.ValueName + "]"
}

// describe returns the description column for d.
func describe(d schema.Declaration, long bool) string {
	desc := d.Help
	if long && d.Default != "" {
		desc = strings.TrimSpace(fmt.Sprintf("%s (default: %s)", desc, d.Default))
	}
	return desc
}

// alignRows formats two-column rows with the descriptions aligned.
func alignRows(rows [][2]string) string {
	maxLen := 0
	for _, r := range rows {
		if len(r[0]) > maxLen {
			maxLen = len(r[0])
		}
	}

	var builder strings.Builder
	for _, r := range rows {
		padding := strings.Repeat(" ", maxLen-len(r[0]))
		builder.WriteString(strings.TrimRight(fmt.Sprintf("%s%s  %s", r[0], padding, r[1]), " ") + "\n")
	}
	return builder.String()
}

// hasOptions reports whether cmd has anything to list under Options.
func hasOptions(cmd schema.Command) bool {
	return len(cmd.Options()) > 0 || cmd.ShowVersion || cmd.Help.AllowsFlag()
}
