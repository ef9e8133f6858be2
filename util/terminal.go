package util

import (
	"os"

	"golang.org/x/term"
)

// isTerminalFn is replaced in tests
var isTerminalFn = term.IsTerminal

// IsInteractive reports whether f is attached to a terminal. A nil file is not.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}

	return isTerminalFn(int(f.Fd()))
}
