package core

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Option configures a call to Parse.
type Option func(*options)

type options struct {
	args        []string
	in          io.Reader
	out         io.Writer
	logger      *log.Logger
	mode        Mode
	interactive bool
}

// WithArgs parses args instead of os.Args[1:].
func WithArgs(args ...string) Option {
	return func(o *options) { o.args = args }
}

// WithInput reads prompt replies from r instead of os.Stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.in = r }
}

// WithOutput writes prompts, help and version text to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogger traces discovery and decoding on l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMode sets the decode mode. ModeCompletionScript disables prompting.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithInteractive controls whether absent required values are prompted for.
// When disabled they fail with a MissingArgError.
func WithInteractive(enabled bool) Option {
	return func(o *options) { o.interactive = enabled }
}

func newOptions(opts []Option) *options {
	o := &options{
		in:          os.Stdin,
		out:         os.Stdout,
		mode:        ModeNormal,
		interactive: true,
	}
	if len(os.Args) > 1 {
		o.args = os.Args[1:]
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "clifford"})
	}
	return o
}
