package core

import (
	"reflect"

	"github.com/chriso345/clifford/display"
	"github.com/chriso345/clifford/errors"
	"github.com/chriso345/clifford/internal/common"
	"github.com/chriso345/clifford/schema"
)

// BuildHelp runs the discovery pass over target and renders its help text.
func BuildHelp(target any, long bool) (string, error) {
	cmd, err := discover(target)
	if err != nil {
		return "", err
	}
	return display.BuildHelp(cmd.Command, long), nil
}

// BuildVersion runs the discovery pass over target and renders its version
// line.
func BuildVersion(target any) (string, error) {
	cmd, err := discover(target)
	if err != nil {
		return "", err
	}
	return display.BuildVersion(cmd.Command), nil
}

// BuildHelpWithParent renders help for subTarget as the subcommand subName of
// parent, e.g. "app serve [OPTIONS]".
func BuildHelpWithParent(parent any, subName string, subTarget any, long bool) (string, error) {
	if !common.IsStructPtr(subTarget) {
		return "", errors.NewParseError("invalid type: must pass pointer to struct")
	}
	pcmd, err := discover(parent)
	if err != nil {
		return "", err
	}
	help := pcmd.Help
	if s := pcmd.findSub(subName); s != nil {
		help = s.Help
	}
	sub, err := discoverValue(reflect.ValueOf(subTarget).Elem(), pcmd.Path, subName, help)
	if err != nil {
		return "", err
	}
	if sub.Name == "" {
		sub.Name = subName
	}
	return display.BuildHelpWithParent(parentLabel(pcmd), sub.Command, long), nil
}

// Describe runs the discovery pass over target and returns its schema without
// parsing anything.
func Describe(target any) (schema.Command, error) {
	cmd, err := discover(target)
	if err != nil {
		return schema.Command{}, err
	}
	return cmd.Command, nil
}
