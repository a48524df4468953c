package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/chriso345/clifford/errors"
)

// Prompter asks the user for a single line of text.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Console prompts on an output stream and reads replies from an input stream.
// It keeps one buffered reader for its lifetime so successive prompts never
// lose buffered input.
type Console struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, reader: bufio.NewReader(in), out: out}
}

// Prompt writes "Enter <label>: " and blocks until one line is read.
// A final line without a newline is accepted; an empty stream yields an
// EndOfInputError.
func (c *Console) Prompt(label string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "Enter %s: ", label); err != nil {
		return "", err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", err
		}
		if line == "" {
			return "", errors.NewEndOfInput(label)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Terminal hooks, mockable for testing.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// PromptSecret behaves like Prompt but disables echo when the input is a
// terminal. As with Prompt, a closed input with nothing typed yields an
// EndOfInputError.
func (c *Console) PromptSecret(label string) (string, error) {
	f, ok := c.in.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return c.Prompt(label)
	}
	if _, err := fmt.Fprintf(c.out, "Enter %s: ", label); err != nil {
		return "", err
	}
	b, err := readPassword(int(f.Fd()))
	if err != nil {
		if err == io.EOF {
			return "", errors.NewEndOfInput(label)
		}
		return "", err
	}
	// The newline typed by the user was not echoed.
	if _, err := fmt.Fprintln(c.out); err != nil {
		return "", err
	}
	return string(b), nil
}

// secretPrompter adapts Console.PromptSecret to the Prompter interface.
type secretPrompter struct{ c *Console }

func (s secretPrompter) Prompt(label string) (string, error) { return s.c.PromptSecret(label) }
