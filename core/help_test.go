package core

import (
	"bytes"
	stderrs "errors"
	"os"
	"testing"

	"github.com/chriso345/gore/assert"

	clierr "github.com/chriso345/clifford/errors"
)

// captureExit replaces osExit for the duration of the test and returns a
// pointer to the recorded exit code, or -1 if osExit was never called. Help
// output is left unstyled.
func captureExit(t *testing.T) *int {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	code := -1
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = os.Exit })
	return &code
}

// Test that flag-style help (--help) exits when Help is present as default (flag)
func TestFlagHelpExits(t *testing.T) {
	code := captureExit(t)
	out := &bytes.Buffer{}

	target := struct {
		Clifford `name:"app"`
		Help
	}{}

	err := Parse(&target, WithArgs("--help"), WithOutput(out))
	assert.Nil(t, err)
	assert.Equal(t, *code, 0)
	assert.StringContains(t, out.String(), "Usage:")
	assert.StringContains(t, out.String(), "-h, --help")
}

func TestShortHelpSkipsDecoding(t *testing.T) {
	code := captureExit(t)
	out := &bytes.Buffer{}

	target := struct {
		Clifford `name:"app"`
		Help
		Name Arg[string] `required:"true"`
	}{}

	err := Parse(&target, WithArgs("-h"), WithInteractive(false), WithOutput(out))
	assert.Nil(t, err)
	assert.Equal(t, *code, 0)
	assert.StringContains(t, out.String(), "Usage: app <NAME>")
	assert.True(t, !target.Name.Resolved())
}

func TestLongHelpShowsDefaults(t *testing.T) {
	captureExit(t)

	target := struct {
		Clifford `name:"app"`
		Help
		Port Arg[int] `long:"port" desc:"Port to listen on" default:"8080"`
	}{}

	short := &bytes.Buffer{}
	assert.Nil(t, Parse(&target, WithArgs("-h"), WithOutput(short)))
	assert.NotStringContains(t, short.String(), "(default: 8080)")

	other := struct {
		Clifford `name:"app"`
		Help
		Port Arg[int] `long:"port" desc:"Port to listen on" default:"8080"`
	}{}
	long := &bytes.Buffer{}
	assert.Nil(t, Parse(&other, WithArgs("--help"), WithOutput(long)))
	assert.StringContains(t, long.String(), "Port to listen on (default: 8080)")
}

// Test that when Help is type:"subcmd" the flag --help does not exit (i.e. is unknown)
func TestFlagHelpNotAllowedForSubcmd(t *testing.T) {
	code := captureExit(t)

	target := struct {
		Clifford `name:"app"`
		Help     `type:"subcmd"`

		Serve struct {
			Subcommand `name:"serve"`
		}
	}{}

	err := Parse(&target, WithArgs("serve", "--help"), WithOutput(&bytes.Buffer{}))
	assert.NotNil(t, err)
	var pe clierr.ParseError
	assert.True(t, stderrs.As(err, &pe))
	assert.Equal(t, *code, -1)
}

// Test that type:"both" allows both positional "help" and flag "--help" to exit
func TestBothHelpModesExit(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"help"}} {
		code := captureExit(t)
		out := &bytes.Buffer{}

		target := struct {
			Clifford `name:"app"`
			Help     `type:"both"`

			Serve struct {
				Subcommand `name:"serve" desc:"Start the server"`
			}
		}{}

		err := Parse(&target, WithArgs(args...), WithOutput(out))
		assert.Nil(t, err)
		assert.Equal(t, *code, 0)
		assert.StringContains(t, out.String(), "Usage: app")
		assert.StringContains(t, out.String(), "Start the server")
	}
}

func TestPositionalSubcommandHelpExits(t *testing.T) {
	code := captureExit(t)
	out := &bytes.Buffer{}

	target := struct {
		Clifford `name:"app"`
		Help     `type:"subcmd"`

		Run struct {
			Subcommand
			Desc `desc:"Run a specific file"`

			File Arg[string] `required:"true" desc:"File to run"`
		}
	}{}

	err := Parse(&target, WithArgs("run", "help"), WithOutput(out))
	assert.Nil(t, err)
	assert.Equal(t, *code, 0)
	assert.StringContains(t, out.String(), "Usage: app run <FILE>")
	assert.StringContains(t, out.String(), "File to run")
	assert.True(t, !target.Run.File.Resolved())
}

func TestHelpCommandForSubcommand(t *testing.T) {
	code := captureExit(t)
	out := &bytes.Buffer{}

	target := struct {
		Clifford `name:"app"`
		Help     `type:"subcmd"`

		Serve struct {
			Subcommand `name:"serve" desc:"Start the server"`
			Port       Arg[int] `long:"port" desc:"Port number"`
		}
	}{}

	err := Parse(&target, WithArgs("help", "serve"), WithOutput(out))
	assert.Nil(t, err)
	assert.Equal(t, *code, 0)
	assert.StringContains(t, out.String(), "Usage: app serve [OPTIONS]")
	assert.StringContains(t, out.String(), "--port [PORT]")
	assert.True(t, !bool(target.Serve.Subcommand))
}

func TestHelpCommandUnknownTopic(t *testing.T) {
	code := captureExit(t)

	target := struct {
		Clifford `name:"app"`
		Help     `type:"subcmd"`

		Serve struct {
			Subcommand `name:"serve"`
		}
	}{}

	err := Parse(&target, WithArgs("help", "srve"), WithOutput(&bytes.Buffer{}))
	var ue clierr.UnknownSubcommandError
	assert.True(t, stderrs.As(err, &ue))
	assert.StringContains(t, err.Error(), `did you mean "serve"?`)
	assert.Equal(t, *code, -1)
}

func TestBuildHelpWithParent_InheritsHelpMode(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	parent := struct {
		Clifford `name:"app"`
		Help     `type:"both"`

		Serve struct {
			Subcommand `name:"serve"`
			Port       Arg[int] `long:"port" desc:"Port number"`
		}
	}{}

	sub := parent.Serve
	help, err := BuildHelpWithParent(&parent, "serve", &sub, false)
	assert.Nil(t, err)
	assert.StringContains(t, help, "app serve [OPTIONS]")
	assert.StringContains(t, help, "-h, --help")
}

func TestDescribe(t *testing.T) {
	target := struct {
		Clifford `name:"app" version:"1.0.0"`
		Desc     `desc:"Demo application"`

		Verbose Arg[bool]   `short:"v" long:"verbose"`
		File    Arg[string] `required:"true"`

		Serve struct {
			Subcommand `name:"serve" desc:"Start the server"`
		}
	}{}

	cmd, err := Describe(&target)
	assert.Nil(t, err)
	assert.Equal(t, cmd.Name, "app")
	assert.Equal(t, cmd.Desc, "Demo application")
	assert.True(t, cmd.ShowVersion)
	assert.Equal(t, len(cmd.Arguments), 2)
	assert.Equal(t, len(cmd.Positionals()), 1)
	assert.Equal(t, cmd.Positionals()[0].Key.String(), "app.file")
	assert.Equal(t, len(cmd.Subcommands), 1)
	assert.Equal(t, cmd.Subcommands[0].Desc, "Start the server")

	// Describing never resolves anything.
	assert.True(t, !target.File.Resolved())
}

func TestDescribe_ConflictingVersions(t *testing.T) {
	target := struct {
		Clifford `name:"app" version:"1.0.0"`
		Version  `version:"2.0.0"`
	}{}

	_, err := Describe(&target)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "conflicting version tags")
}
