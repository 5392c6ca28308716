package diagnostics

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Render formats an error for terminal output, coloring it red when
// stderr is an interactive terminal.
func Render(err error) string {
	msg := err.Error()
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return msg
	}
	return ansiBold + ansiRed + msg + ansiReset
}
