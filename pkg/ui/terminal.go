package ui

import (
	"os"

	"golang.org/x/term"
)

// StderrTerminal reports whether stderr is attached to a terminal.
// Progress rendering uses carriage-return redraws, which turn into noise
// when output is piped or redirected.
func StderrTerminal() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
