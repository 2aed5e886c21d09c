package pretty

import (
	"os"

	"golang.org/x/term"
)

// InteractiveTerminal reports whether f is attached to a terminal, as opposed
// to a pipe or file. Used to decide whether to prompt a human.
func InteractiveTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
