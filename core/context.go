package core

import "github.com/chriso345/clifford/schema"

// Mode selects how absent values are handled during decoding.
type Mode int

const (
	// ModeNormal prompts for absent values on the console.
	ModeNormal Mode = iota
	// ModeCompletionScript never performs I/O; absent values are errors.
	ModeCompletionScript
)

// ParsedElement is a value the decode context already holds for a key.
type ParsedElement struct {
	Key   schema.PropertyID
	Value any
}

// Decoder is the context handed to each argument during the decode pass.
type Decoder interface {
	// Key identifies the argument being decoded.
	Key() schema.PropertyID
	// Input returns the raw tokens captured for Key, in command-line order.
	Input() []string
}

// SingleValueDecoder is a Decoder that can look up one value for the current
// key and fall back to the console when there is none.
type SingleValueDecoder interface {
	Decoder
	ParsedElement() (ParsedElement, bool)
	Mode() Mode
	Prompter() Prompter
}

// decodeContext is the Decoder the parse driver builds for every argument.
type decodeContext struct {
	key      schema.PropertyID
	input    []string
	element  *ParsedElement
	mode     Mode
	prompter Prompter
}

func (c *decodeContext) Key() schema.PropertyID { return c.key }
func (c *decodeContext) Input() []string        { return c.input }
func (c *decodeContext) Mode() Mode             { return c.mode }
func (c *decodeContext) Prompter() Prompter     { return c.prompter }

func (c *decodeContext) ParsedElement() (ParsedElement, bool) {
	if c.element == nil {
		return ParsedElement{}, false
	}
	return *c.element, true
}
