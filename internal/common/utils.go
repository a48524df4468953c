package common

import (
	"reflect"
	"strings"
)

// argTagKeys are the struct tag keys recognised on an argument field.
var argTagKeys = []string{"short", "long", "desc", "required", "default", "name", "secret", "value"}

// ArgTags returns the argument tags declared directly on field.
func ArgTags(field reflect.StructField) map[string]string {
	tags := make(map[string]string)
	for _, key := range argTagKeys {
		if val := field.Tag.Get(key); val != "" {
			tags[key] = val
		}
	}
	return tags
}

// GetTagsFromEmbedded retrieves command metadata from the marker types
// embedded in t (Subcommand, Desc, Help, Clifford).
func GetTagsFromEmbedded(t reflect.Type) map[string]string {
	tags := make(map[string]string)

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		switch field.Type.Name() {
		case "Subcommand":
			tags["subcmd"] = "true"
			if val := field.Tag.Get("name"); val != "" {
				tags["name"] = val
			}
			if val := field.Tag.Get("desc"); val != "" {
				tags["desc"] = val
			}
		case "Desc":
			if val := field.Tag.Get("desc"); val != "" {
				tags["desc"] = val
			}
		case "Help":
			tags["help"] = HelpModeTag(field)
		case "Clifford":
			for _, key := range []string{"name", "desc", "version"} {
				if val := field.Tag.Get(key); val != "" {
					tags[key] = val
				}
			}
		}
	}

	return tags
}

// HelpModeTag returns the help exposure mode declared on a Help marker field.
// The default is "flag".
func HelpModeTag(field reflect.StructField) string {
	if val := field.Tag.Get("help"); val != "" {
		return val
	}
	if val := field.Tag.Get("type"); val != "" {
		return val
	}
	return "flag"
}

// IsSubcommand reports whether t is a struct embedding the Subcommand marker.
func IsSubcommand(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous && f.Type.Name() == "Subcommand" {
			return true
		}
	}
	return false
}

// IsMetaField reports whether field is an embedded marker type.
func IsMetaField(field reflect.StructField) bool {
	if !field.Anonymous {
		return false
	}
	switch field.Type.Name() {
	case "Clifford", "Version", "Help", "Desc", "Subcommand":
		return true
	}
	return false
}

// PropertyName returns the label of an argument field: its `name` tag or the
// lowercased field name.
func PropertyName(field reflect.StructField, tags map[string]string) string {
	if n := tags["name"]; n != "" {
		return n
	}
	return strings.ToLower(field.Name)
}

// ArgsIndexOf returns the index of the first occurrence of s in args, or -1 if not found.
func ArgsIndexOf(args []string, s string) int {
	for i, arg := range args {
		if arg == s {
			return i
		}
	}
	return -1
}

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

