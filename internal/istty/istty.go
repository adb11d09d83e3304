// Package istty answers one question: does a file descriptor refer to
// an interactive terminal. Sink constructors use it to pick between
// write-through and buffered output, the way stdio picks its buffering
// mode from isatty.
package istty

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	if fd < 0 {
		return false
	}
	return isTerminal(fd)
}
