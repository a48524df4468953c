package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/chriso345/clifford/errors"
	"github.com/chriso345/clifford/internal/common"
	"github.com/chriso345/clifford/schema"
)

// boundArg pairs an argument field with the declaration it produced during
// discovery.
type boundArg struct {
	field string
	arg   Argument
	decl  schema.Declaration
}

// subcommand is a nested command found during discovery.
type subcommand struct {
	schema.Subcommand
	value reflect.Value // the sub-struct, addressable
}

// command is the discovery result for one command struct.
type command struct {
	schema.Command
	args []boundArg
	subs []subcommand
}

func (c *command) findSub(name string) *subcommand {
	for i := range c.subs {
		if c.subs[i].Name == name {
			return &c.subs[i]
		}
	}
	return nil
}

func (c *command) subNames() []string {
	names := make([]string, 0, len(c.subs))
	for _, s := range c.subs {
		names = append(names, s.Name)
	}
	return names
}

// discover walks the exported fields of the root command struct behind
// target and asks every argument for its declaration.
func discover(target any) (*command, error) {
	if !common.IsStructPtr(target) {
		return nil, errors.NewParseError("invalid type: must pass pointer to struct")
	}
	return discoverValue(reflect.ValueOf(target).Elem(), "", "", schema.HelpNone)
}

// discoverValue discovers the command struct v. path is the command chain of
// the parent, name is used when v does not name itself, and inherited is the
// help mode used when v embeds no Help marker.
func discoverValue(v reflect.Value, path, name string, inherited schema.HelpMode) (*command, error) {
	t := v.Type()
	cmd := &command{}
	cmd.Help = inherited

	var versionFromClifford, versionFromVersionField string
	meta := common.GetTagsFromEmbedded(t)
	cmd.Name = meta["name"]
	if cmd.Name == "" {
		cmd.Name = name
	}
	cmd.Desc = meta["desc"]
	if h, ok := meta["help"]; ok {
		cmd.Help = schema.HelpMode(h)
	}

	for i := range t.NumField() {
		field := t.Field(i)
		if !common.IsMetaField(field) {
			continue
		}
		switch field.Type.Name() {
		case "Clifford":
			versionFromClifford = field.Tag.Get("version")
			if field.Tag.Get("help") != "" && cmd.Help == schema.HelpNone {
				cmd.Help = schema.HelpFlag
			}
		case "Version":
			cmd.ShowVersion = true
			versionFromVersionField = field.Tag.Get("version")
		}
	}

	if versionFromClifford != "" && versionFromVersionField != "" {
		return nil, errors.NewParseError("conflicting version tags: both Clifford and Version field specify a version")
	}
	cmd.Version = versionFromVersionField
	if cmd.Version == "" {
		cmd.Version = versionFromClifford
	}
	if versionFromClifford != "" {
		cmd.ShowVersion = true
	}

	cmd.Path = strings.TrimSpace(path + " " + cmd.Name)

	longs := map[string]string{}
	shorts := map[string]string{}

	for i := range t.NumField() {
		field := t.Field(i)
		if common.IsMetaField(field) || !field.IsExported() {
			continue
		}
		fv := v.Field(i)

		if arg, ok := fv.Addr().Interface().(Argument); ok {
			tags := common.ArgTags(field)
			if d, ok := arg.(declarer); ok {
				if err := d.declare(field.Name, tags); err != nil {
					return nil, err
				}
			}
			id := schema.PropertyID{Name: common.PropertyName(field, tags), Path: cmd.Path}
			decl := arg.Declaration(id)

			if decl.Long != "" {
				if prev, dup := longs[decl.Long]; dup {
					return nil, errors.NewParseError(fmt.Sprintf("duplicate option --%s on %s and %s", decl.Long, prev, field.Name))
				}
				longs[decl.Long] = field.Name
			}
			if decl.Short != "" {
				if prev, dup := shorts[decl.Short]; dup {
					return nil, errors.NewParseError(fmt.Sprintf("duplicate option -%s on %s and %s", decl.Short, prev, field.Name))
				}
				shorts[decl.Short] = field.Name
			}

			cmd.args = append(cmd.args, boundArg{field: field.Name, arg: arg, decl: decl})
			cmd.Arguments = append(cmd.Arguments, decl)
			continue
		}

		if common.IsSubcommand(field.Type) {
			tags := common.GetTagsFromEmbedded(field.Type)
			subName := field.Tag.Get("subcmd")
			if subName == "" {
				subName = tags["name"]
			}
			if subName == "" {
				subName = strings.ToLower(field.Name)
			}
			help := schema.HelpMode(tags["help"])
			if _, ok := tags["help"]; !ok {
				help = cmd.Help
			}
			sub := schema.Subcommand{Name: subName, Desc: tags["desc"], Help: help}
			cmd.subs = append(cmd.subs, subcommand{Subcommand: sub, value: fv})
			cmd.Subcommands = append(cmd.Subcommands, sub)
			continue
		}

		return nil, errors.NewUnsupportedField(field.Name, field.Type.String())
	}

	return cmd, nil
}
