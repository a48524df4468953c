package core

import "github.com/chriso345/clifford/errors"

// Decodable is implemented by value types that decode themselves from a
// Decoder, typically by reading its raw Input.
type Decodable interface {
	DecodeArg(d Decoder) error
}

// isDecodable reports whether *T implements Decodable.
func isDecodable[T any]() bool {
	var v T
	_, ok := any(&v).(Decodable)
	return ok
}

// Decode produces the resolved value of one argument from d.
//
// Values that implement Decodable decode themselves first and only fall back
// to the context's parsed element when that fails. All other values use the
// parsed element when it holds a T and otherwise prompt on the console, or
// fail with a NoValueError in completion-script mode.
func Decode[T any](d Decoder) (Resolved[T], error) {
	if isDecodable[T]() {
		return decodeSelf[T](d)
	}
	return decodeValue[T](d)
}

func decodeSelf[T any](d Decoder) (Resolved[T], error) {
	var v T
	err := any(&v).(Decodable).DecodeArg(d)
	if err == nil {
		return NewResolved(v), nil
	}
	if sv, ok := d.(SingleValueDecoder); ok {
		if el, ok := sv.ParsedElement(); ok {
			if ev, ok := el.Value.(T); ok {
				return NewResolved(ev), nil
			}
		}
	}
	return Resolved[T]{}, err
}

func decodeValue[T any](d Decoder) (Resolved[T], error) {
	sv, ok := d.(SingleValueDecoder)
	if !ok {
		return Resolved[T]{}, errors.NewInvalidState()
	}

	key := sv.Key()
	el, found := sv.ParsedElement()
	if found {
		if v, ok := el.Value.(T); ok {
			return NewResolved(v), nil
		}
		key = el.Key
	}

	if sv.Mode() == ModeCompletionScript {
		return Resolved[T]{}, errors.NewNoValue(key.Label())
	}

	line, err := sv.Prompter().Prompt(key.Label())
	if err != nil {
		return Resolved[T]{}, err
	}
	v, err := ParseText[T](key.Label(), line)
	if err != nil {
		return Resolved[T]{}, err
	}
	return NewResolved(v), nil
}
