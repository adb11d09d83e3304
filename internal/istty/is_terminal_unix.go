//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package istty

import "golang.org/x/term"

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
