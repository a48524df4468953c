package core

import (
	"encoding"
	"reflect"
	"strconv"
	"time"

	"github.com/chriso345/clifford/errors"
)

// ParseText converts raw command-line text into a T. Types implementing
// encoding.TextUnmarshaler handle themselves; otherwise strings, bools,
// integers, floats and time.Duration are supported.
func ParseText[T any](field, raw string) (T, error) {
	var v T
	typ := reflect.TypeOf(&v).Elem()

	switch p := any(&v).(type) {
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText([]byte(raw)); err != nil {
			return v, errors.NewInvalidValue(field, raw, typ.String(), err)
		}
		return v, nil
	case *time.Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return v, errors.NewInvalidValue(field, raw, typ.String(), err)
		}
		*p = d
		return v, nil
	}

	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return v, errors.NewInvalidValue(field, raw, typ.String(), err)
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return v, errors.NewInvalidValue(field, raw, typ.String(), err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return v, errors.NewInvalidValue(field, raw, typ.String(), err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, typ.Bits())
		if err != nil {
			return v, errors.NewInvalidValue(field, raw, typ.String(), err)
		}
		rv.SetFloat(f)
	default:
		return v, errors.NewUnsupportedField(field, typ.String())
	}
	return v, nil
}

// supportsText reports whether ParseText can produce a T.
func supportsText[T any]() bool {
	var v T
	if _, ok := any(&v).(encoding.TextUnmarshaler); ok {
		return true
	}
	switch reflect.TypeOf(&v).Elem().Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
