package errors

import "fmt"

// ParseError represents a generic parsing error produced by the CLI parser.
// It is intended for user-facing messages.
type ParseError struct{ Msg string }

func (e ParseError) Error() string { return e.Msg }

// MissingArgError indicates a required positional or flag was not provided.
type MissingArgError struct{ Field string }

func (e MissingArgError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Field)
}

// UnknownSubcommandError indicates the user invoked a subcommand that does not exist.
// Suggestion, if present, is a close match the user may have intended.
type UnknownSubcommandError struct{ Name, Suggestion string }

func (e UnknownSubcommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown subcommand: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown subcommand: %s", e.Name)
}

// UnsupportedFieldTypeError indicates the CLI contains an unsupported field type.
type UnsupportedFieldTypeError struct{ Field, Type string }

func (e UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("unsupported type for field %s: %s", e.Field, e.Type)
}

// InvalidStateError indicates the decode context cannot serve a single value
// lookup. It points at an integration fault rather than bad input.
type InvalidStateError struct{}

func (e InvalidStateError) Error() string {
	return "invalid state: decoder does not support single value lookup"
}

// NoValueError indicates a value is absent and could not be requested
// interactively.
type NoValueError struct{ Key string }

func (e NoValueError) Error() string {
	return fmt.Sprintf("no value provided for %s", e.Key)
}

// InvalidValueError indicates raw text could not be converted to the
// argument's type.
type InvalidValueError struct {
	Field, Value, Type string
	Err                error
}

func (e InvalidValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value %q for %s (%s): %v", e.Value, e.Field, e.Type, e.Err)
	}
	return fmt.Sprintf("invalid value %q for %s (%s)", e.Value, e.Field, e.Type)
}

func (e InvalidValueError) Unwrap() error { return e.Err }

// EndOfInputError indicates the input stream closed while a value was being
// prompted for.
type EndOfInputError struct{ Key string }

func (e EndOfInputError) Error() string {
	return fmt.Sprintf("input closed while reading %s", e.Key)
}

// Helper constructors
func NewParseError(msg string) error   { return ParseError{Msg: msg} }
func NewMissingArg(field string) error { return MissingArgError{Field: field} }
func NewUnknownSubcommand(name, suggestion string) error {
	return UnknownSubcommandError{Name: name, Suggestion: suggestion}
}
func NewUnsupportedField(field, typ string) error {
	return UnsupportedFieldTypeError{Field: field, Type: typ}
}
func NewInvalidState() error         { return InvalidStateError{} }
func NewNoValue(key string) error    { return NoValueError{Key: key} }
func NewEndOfInput(key string) error { return EndOfInputError{Key: key} }
func NewInvalidValue(field, value, typ string, err error) error {
	return InvalidValueError{Field: field, Value: value, Type: typ, Err: err}
}
