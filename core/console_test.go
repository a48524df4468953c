package core

import (
	"bytes"
	stderrs "errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/chriso345/gore/assert"

	clierr "github.com/chriso345/clifford/errors"
)

func TestConsole_PromptSequence(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("first\nsecond\r\nthird"), out)

	for _, want := range []string{"first", "second", "third"} {
		got, err := c.Prompt("x")
		assert.Nil(t, err)
		assert.Equal(t, got, want)
	}
	assert.Equal(t, out.String(), "Enter x: Enter x: Enter x: ")

	_, err := c.Prompt("x")
	var eoi clierr.EndOfInputError
	assert.True(t, stderrs.As(err, &eoi))
	assert.Equal(t, eoi.Key, "x")
}

func TestConsole_EmptyLine(t *testing.T) {
	c := NewConsole(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := c.Prompt("name")
	assert.Nil(t, err)
	assert.Equal(t, got, "")
}

func TestConsole_SecretFallsBackWithoutTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("hunter2\n"), out)

	got, err := secretPrompter{c}.Prompt("token")
	assert.Nil(t, err)
	assert.Equal(t, got, "hunter2")
	assert.Equal(t, out.String(), "Enter token: ")
}

// failAfter accepts n writes and fails every later one.
type failAfter struct {
	n   int
	buf bytes.Buffer
}

var errWrite = stderrs.New("write failed")

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return w.buf.Write(p)
}

// fakeTerminal makes the console treat a pipe as a terminal whose password
// reads return secret and err.
func fakeTerminal(t *testing.T, secret string, err error) *os.File {
	t.Helper()
	r, w, perr := os.Pipe()
	if perr != nil {
		t.Fatalf("pipe: %v", perr)
	}
	oldTerm, oldRead := isTerminal, readPassword
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte(secret), err }
	t.Cleanup(func() {
		isTerminal, readPassword = oldTerm, oldRead
		r.Close()
		w.Close()
	})
	return r
}

func TestConsole_SecretOnTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(fakeTerminal(t, "hunter2", nil), out)

	got, err := c.PromptSecret("token")
	assert.Nil(t, err)
	assert.Equal(t, got, "hunter2")
	assert.Equal(t, out.String(), "Enter token: \n")
}

func TestConsole_SecretClosedTerminal(t *testing.T) {
	c := NewConsole(fakeTerminal(t, "", io.EOF), &bytes.Buffer{})

	_, err := c.PromptSecret("token")
	var eoi clierr.EndOfInputError
	assert.True(t, stderrs.As(err, &eoi))
	assert.Equal(t, eoi.Key, "token")
}

func TestConsole_SecretWriteError(t *testing.T) {
	c := NewConsole(fakeTerminal(t, "hunter2", nil), &failAfter{n: 1})

	_, err := c.PromptSecret("token")
	assert.True(t, err == errWrite)

	c = NewConsole(fakeTerminal(t, "hunter2", nil), &failAfter{n: 0})
	_, err = c.PromptSecret("token")
	assert.True(t, err == errWrite)
}
