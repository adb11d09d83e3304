package queue

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrBusy indicates another caller held the queue's lock. The operation
// did not run; retry later, with backoff or yield.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrBusy = iox.ErrWouldBlock

// ErrFull indicates the queue is at capacity. Dequeue before enqueueing
// more.
var ErrFull = errors.New("queue: full")

// ErrEmpty indicates the queue holds no elements.
var ErrEmpty = errors.New("queue: empty")

// IsBusy reports whether err indicates lock contention. Delegates to
// [iox.IsWouldBlock] for wrapped error support.
func IsBusy(err error) bool {
	return iox.IsWouldBlock(err)
}
