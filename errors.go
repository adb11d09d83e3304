package kstdio

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrBusy reports that a non-blocking entry point lost the lock race.
//
// ErrBusy is a control-flow signal, not a failure: the shared buffer was
// held by another context, and callers that must not wait (interrupt-style
// code preempting a holder) give up immediately instead of retrying
// inside the library. Retry later, or drop the message.
//
// ErrBusy is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrBusy = iox.ErrWouldBlock

// ErrInvalidFormat reports a malformed directive: an unrecognized
// conversion character, a flag or modifier in the wrong position, a width
// beyond Options.MaxWidth, or a template ending inside a directive. The
// directive consumed nothing and the whole call was aborted.
var ErrInvalidFormat = errors.New("kstdio: invalid format directive")

// ErrMissingArg reports a directive with no argument left to consume.
var ErrMissingArg = errors.New("kstdio: missing argument for directive")

// ErrWrongType reports an argument whose dynamic type does not fit its
// directive's conversion.
var ErrWrongType = errors.New("kstdio: argument type does not match directive")

// ErrInvalidArg reports an unusable destination: nil or empty, or, for
// Sprintf, too small for the formatted result plus its terminator.
var ErrInvalidArg = errors.New("kstdio: invalid argument")

// IsBusy reports whether err indicates lock contention on a non-blocking
// path. Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsBusy(err error) bool {
	return iox.IsWouldBlock(err)
}
