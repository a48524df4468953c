package core

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/chriso345/clifford/display"
	"github.com/chriso345/clifford/errors"
	"github.com/chriso345/clifford/internal/common"
	"github.com/chriso345/clifford/schema"
)

var osExit = os.Exit // Mockable for testing

// tokens is the result of splitting one command's arguments against its
// declarations.
type tokens struct {
	values map[schema.PropertyID][]string

	help     bool // -h or --help
	longHelp bool // --help
	version  bool

	helpTopic []string // set when a positional `help` was given
	isHelpCmd bool

	sub     *subcommand
	subArgs []string
}

// splitFlag splits "--name=value" into its name and inline value.
func splitFlag(arg string) (name, value string, inline bool) {
	if i := strings.Index(arg, "="); i > 0 {
		return arg[:i], arg[i+1:], true
	}
	return arg, "", false
}

// isNegativeNumber reports whether arg is a negative number such as -5 or
// -0.25 rather than an option.
func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || (arg[1] != '.' && (arg[1] < '0' || arg[1] > '9')) {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// tokenize assigns args to the declarations of cmd. It stops at the first
// bare token naming a subcommand or a positional `help`.
func tokenize(cmd *command, args []string) (*tokens, error) {
	t := &tokens{values: map[schema.PropertyID][]string{}}

	byLong := map[string]schema.Declaration{}
	byShort := map[string]schema.Declaration{}
	for _, d := range cmd.Options() {
		if d.Long != "" {
			byLong[d.Long] = d
		}
		if d.Short != "" {
			byShort[d.Short] = d
		}
	}
	positionals := cmd.Positionals()
	bare := 0

	for i := 0; i < len(args); i++ {
		arg := args[i]

		_, isShort := byShort[strings.TrimPrefix(arg, "-")]
		negative := isNegativeNumber(arg) && !isShort

		if arg == "-" || negative || !strings.HasPrefix(arg, "-") {
			if bare == 0 && !negative {
				if arg == "help" && cmd.Help.AllowsSubcmd() {
					t.isHelpCmd = true
					t.helpTopic = args[i+1:]
					return t, nil
				}
				if sub := cmd.findSub(arg); sub != nil {
					t.sub = sub
					t.subArgs = args[i+1:]
					return t, nil
				}
				if len(cmd.subs) > 0 && len(positionals) == 0 {
					return nil, errors.NewUnknownSubcommand(arg, closestMatch(arg, cmd.subNames()))
				}
			}
			if bare >= len(positionals) {
				return nil, errors.NewParseError(fmt.Sprintf("unexpected argument: %s", arg))
			}
			d := positionals[bare]
			bare++
			t.values[d.Key] = append(t.values[d.Key], arg)
			continue
		}

		name, value, inline := splitFlag(arg)

		var d schema.Declaration
		var ok bool
		if strings.HasPrefix(name, "--") {
			d, ok = byLong[name[2:]]
		} else {
			d, ok = byShort[name[1:]]
		}

		if !ok {
			switch {
			case (name == "-h" || name == "--help") && cmd.Help.AllowsFlag():
				t.help = true
				t.longHelp = t.longHelp || name == "--help"
				continue
			case name == "--version" && cmd.ShowVersion:
				t.version = true
				continue
			}
			return nil, errors.NewParseError(fmt.Sprintf("unknown option: %s", name))
		}

		switch {
		case d.Kind == schema.Flag && inline:
			t.values[d.Key] = append(t.values[d.Key], value)
		case d.Kind == schema.Flag:
			t.values[d.Key] = append(t.values[d.Key], "true")
		case inline:
			t.values[d.Key] = append(t.values[d.Key], value)
		case i+1 < len(args) && (!strings.HasPrefix(args[i+1], "-") || isNegativeNumber(args[i+1])):
			t.values[d.Key] = append(t.values[d.Key], args[i+1])
			i++ // skip the value
		default:
			return nil, errors.NewParseError(fmt.Sprintf("option %s requires a value", name))
		}
	}
	return t, nil
}

// parser carries the per-call configuration through the command tree.
type parser struct {
	*options
	console *Console
}

// parseCommand discovers, tokenizes and decodes one command, then descends
// into the dispatched subcommand if any.
func (p *parser) parseCommand(cmd *command, parent string, args []string) error {
	p.logger.Debug("discovered command", "path", cmd.Path, "arguments", len(cmd.args), "subcommands", len(cmd.subs))

	t, err := tokenize(cmd, args)
	if err != nil {
		return err
	}

	if t.help {
		return p.exitWith(p.helpText(cmd, parent, t.longHelp))
	}
	if t.version {
		return p.exitWith(display.BuildVersion(cmd.Command))
	}
	if t.isHelpCmd {
		return p.helpCommand(cmd, parent, t.helpTopic)
	}

	if err := p.decode(cmd, t); err != nil {
		return err
	}

	if t.sub == nil {
		return nil
	}

	// Mark the embedded Subcommand marker so callers can inspect which
	// subcommand ran.
	sv := t.sub.value
	for j := range sv.NumField() {
		f := sv.Type().Field(j)
		if f.Anonymous && f.Type.Name() == "Subcommand" && sv.Field(j).Kind() == reflect.Bool {
			sv.Field(j).SetBool(true)
			break
		}
	}

	p.logger.Debug("dispatching subcommand", "name", t.sub.Name)
	sub, err := discoverValue(sv, cmd.Path, t.sub.Name, t.sub.Help)
	if err != nil {
		return err
	}
	return p.parseCommand(sub, parentLabel(cmd), t.subArgs)
}

// decode resolves every argument of cmd in declaration order.
func (p *parser) decode(cmd *command, t *tokens) error {
	for _, b := range cmd.args {
		d := b.decl
		if ta, ok := b.arg.(textArgument); ok {
			d = ta.fillDeclaration(d)
		}
		raw := t.values[d.Key]
		ctx := &decodeContext{key: d.Key, input: raw, mode: p.mode, prompter: p.console}
		if d.Secret {
			ctx.prompter = secretPrompter{p.console}
		}

		source := "command line"
		switch {
		case len(raw) > 0:
			if d.Parse != nil {
				v, err := d.Parse(raw[len(raw)-1])
				if err != nil {
					return err
				}
				ctx.element = &ParsedElement{Key: d.Key, Value: v}
			}
		case d.Default != "":
			source = "default"
			if d.Parse != nil {
				v, err := d.Parse(d.Default)
				if err != nil {
					return err
				}
				ctx.element = &ParsedElement{Key: d.Key, Value: v}
			} else {
				ctx.input = []string{d.Default}
			}
		case !d.Required:
			source = "zero value"
			if d.Zero != nil {
				ctx.element = &ParsedElement{Key: d.Key, Value: d.Zero}
			}
		case !p.interactive || !b.arg.Interactable():
			return errors.NewMissingArg(b.field)
		default:
			source = "prompt"
		}

		if err := b.arg.Decode(ctx); err != nil {
			return err
		}
		p.logger.Debug("resolved argument", "key", d.Key.String(), "source", source)
	}
	return nil
}

func (p *parser) helpText(cmd *command, parent string, long bool) string {
	if parent == "" {
		return display.BuildHelp(cmd.Command, long)
	}
	return display.BuildHelpWithParent(parent, cmd.Command, long)
}

// helpCommand handles `help [subcommand]`.
func (p *parser) helpCommand(cmd *command, parent string, topic []string) error {
	if len(topic) == 0 {
		return p.exitWith(p.helpText(cmd, parent, false))
	}
	sub := cmd.findSub(topic[0])
	if sub == nil {
		if len(cmd.subs) == 0 {
			return errors.NewParseError(fmt.Sprintf("unexpected argument: %s", topic[0]))
		}
		return errors.NewUnknownSubcommand(topic[0], closestMatch(topic[0], cmd.subNames()))
	}
	sc, err := discoverValue(sub.value, cmd.Path, sub.Name, sub.Help)
	if err != nil {
		return err
	}
	return p.exitWith(display.BuildHelpWithParent(parentLabel(cmd), sc.Command, false))
}

// parentLabel is the name a subcommand's help shows for its parent chain.
func parentLabel(cmd *command) string {
	if cmd.Path == "" {
		return "<app>"
	}
	return cmd.Path
}

func (p *parser) exitWith(text string) error {
	fmt.Fprintln(p.out, text)
	osExit(0)
	return nil
}

// parseWithArgs is the entry point shared by Parse and its tests.
func parseWithArgs(target any, opts []Option) error {
	if !common.IsStructPtr(target) {
		return errors.NewParseError("invalid type: must pass pointer to struct")
	}
	o := newOptions(opts)
	args := o.args

	// Normalize args: drop everything before "--"
	if i := common.ArgsIndexOf(args, "--"); i >= 0 {
		args = args[i+1:]
	}

	cmd, err := discover(target)
	if err != nil {
		return err
	}
	p := &parser{options: o, console: NewConsole(o.in, o.out)}
	return p.parseCommand(cmd, "", args)
}

// Parse parses command-line arguments into the provided target struct.
//
// Parsing happens in two passes. Discovery asks every Arg field for its
// declaration, which forms the grammar for the command line and the help
// text. Decoding then resolves every Arg in declaration order, prompting for
// absent required values unless prompting is disabled.
//
// A target can only be parsed once; its arguments hold decoded values
// afterwards.
func Parse(target any, opts ...Option) error {
	return parseWithArgs(target, opts)
}
