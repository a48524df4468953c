package core

import (
	"reflect"
	"strings"

	"github.com/chriso345/clifford/errors"
	"github.com/chriso345/clifford/schema"
)

// Argument is implemented by every argument property of a command struct.
type Argument interface {
	// Declaration describes the argument for id. It is only valid before the
	// argument is decoded.
	Declaration(id schema.PropertyID) schema.Declaration
	// Interactable reports whether an absent value may be prompted for.
	Interactable() bool
	// Decode resolves the argument from d.
	Decode(d Decoder) error
}

// declarer is implemented by arguments that derive their declaration from
// struct tags when they were not declared explicitly.
type declarer interface {
	declare(field string, tags map[string]string) error
}

// textArgument is implemented by arguments that can fill in what an explicit
// builder left unset: a text parser and a zero value.
type textArgument interface {
	fillDeclaration(d schema.Declaration) schema.Declaration
}

// Arg is a command argument holding a value of type T.
//
// The zero value is undeclared; Parse declares it from the field's struct
// tags. NewArg declares it from an explicit builder instead.
type Arg[T any] struct {
	slot Slot[T]
}

// NewArg returns an argument whose declaration is produced by build.
func NewArg[T any](build schema.Builder) Arg[T] {
	return Arg[T]{slot: NewDeferred[T](build)}
}

func (a *Arg[T]) Declaration(id schema.PropertyID) schema.Declaration {
	if a.slot == nil {
		panic("clifford: declaration requested for undeclared argument " + id.String())
	}
	return a.slot.Declaration(id)
}

// Bool values and self-decoding values never prompt.
func (a *Arg[T]) Interactable() bool {
	var v T
	if reflect.TypeOf(&v).Elem().Kind() == reflect.Bool {
		return false
	}
	return !isDecodable[T]()
}

// Decode resolves a from d. Decoding an argument twice panics.
func (a *Arg[T]) Decode(d Decoder) error {
	if _, done := a.slot.(Resolved[T]); done {
		panic("clifford: argument " + d.Key().String() + " decoded twice")
	}
	r, err := Decode[T](d)
	if err != nil {
		return err
	}
	a.slot = r
	return nil
}

// Value returns the decoded value, or the zero value before decoding.
func (a *Arg[T]) Value() T {
	if r, ok := a.slot.(Resolved[T]); ok {
		return r.Value
	}
	var zero T
	return zero
}

// Resolved reports whether the argument has been decoded.
func (a *Arg[T]) Resolved() bool {
	_, ok := a.slot.(Resolved[T])
	return ok
}

func (a *Arg[T]) declare(field string, tags map[string]string) error {
	if a.slot != nil {
		return nil
	}
	if !isDecodable[T]() && !supportsText[T]() {
		var v T
		return errors.NewUnsupportedField(field, reflect.TypeOf(&v).Elem().String())
	}
	a.slot = NewDeferred[T](tagBuilder[T](tags))
	return nil
}

// fillDeclaration sets Parse and Zero when d leaves them nil, the same way
// declarations built from struct tags do.
func (a *Arg[T]) fillDeclaration(d schema.Declaration) schema.Declaration {
	if d.Zero == nil {
		var zero T
		d.Zero = zero
	}
	if d.Parse == nil && !isDecodable[T]() {
		label := d.Key.Label()
		d.Parse = func(raw string) (any, error) {
			return ParseText[T](label, raw)
		}
	}
	return d
}

// tagBuilder builds declarations from the struct tags of an Arg field.
func tagBuilder[T any](tags map[string]string) schema.Builder {
	return func(id schema.PropertyID) schema.Declaration {
		var zero T
		d := schema.Declaration{
			Key:       id,
			Short:     tags["short"],
			Long:      tags["long"],
			Help:      tags["desc"],
			ValueName: tags["value"],
			Default:   tags["default"],
			Required:  tags["required"] == "true",
			Secret:    tags["secret"] == "true",
			Zero:      zero,
		}
		if d.ValueName == "" {
			d.ValueName = strings.ToUpper(id.Name)
		}

		switch {
		case d.Short == "" && d.Long == "":
			d.Kind = schema.Positional
		case reflect.TypeOf(&zero).Elem().Kind() == reflect.Bool:
			d.Kind = schema.Flag
		default:
			d.Kind = schema.Option
		}

		if !isDecodable[T]() {
			d.Parse = func(raw string) (any, error) {
				return ParseText[T](id.Label(), raw)
			}
		}
		return d
	}
}
