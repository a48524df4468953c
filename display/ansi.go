package display

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
)

// colorEnabled reports whether help output should be styled. Mockable for
// testing.
var colorEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ansiHelp wraps s in the given ANSI codes when styling is enabled.
func ansiHelp(s string, codes ...string) string {
	if len(codes) == 0 || !colorEnabled() {
		return s
	}
	return strings.Join(codes, "") + s + ansiReset
}
