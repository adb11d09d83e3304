package kstdio

import (
	"code.hybscloud.com/atomix"

	"pkt.systems/kstdio/klog"
	"pkt.systems/kstdio/spinlock"
)

// Console is a heap-free printf front end. Formatted bytes accumulate in
// a fixed ring until a drain hands them to the sink; once the ring is
// full, further bytes are counted and discarded rather than blocking the
// caller. A single spinlock serializes every operation, so a Console is
// safe to share between goroutines with no setup beyond construction.
type Console struct {
	mu spinlock.Mutex

	rb       ring
	sink     Sink
	maxWidth int

	written atomix.Int64
	dropped atomix.Int64
	drained atomix.Int64
	busy    atomix.Int64
}

// New returns a Console draining into sink with the default buffer
// capacity and width limit.
func New(sink Sink) *Console {
	return NewWithOptions(sink, Options{})
}

// NewWithOptions returns a Console draining into sink with explicit
// settings. A nil sink is replaced with klog.Discard, so formatting still
// runs and the counters still advance while the output goes nowhere.
// Out-of-range option values panic: capacity and width are wired at
// build time and a bad value is a programming error, not a runtime
// condition.
func NewWithOptions(sink Sink, opts Options) *Console {
	size := opts.BufferSize
	if size == 0 {
		size = DefaultBufferSize
	}
	if size < 2 {
		panic("kstdio: buffer capacity must be >= 2")
	}
	width := opts.MaxWidth
	if width == 0 {
		width = DefaultMaxWidth
	}
	if width < 0 {
		panic("kstdio: max width must not be negative")
	}
	if sink == nil {
		sink = klog.Discard()
	}
	return &Console{
		rb:       newRing(size),
		sink:     sink,
		maxWidth: width,
	}
}

// printLocked runs the template driver and folds the ring's write and
// drop deltas into the console counters. The caller holds the lock.
func (c *Console) printLocked(format string, args []any) (int, error) {
	wrote, dropped := c.rb.wrote, c.rb.dropped
	n, err := c.print(format, args)
	if d := c.rb.wrote - wrote; d > 0 {
		c.written.Add(int64(d))
	}
	if d := c.rb.dropped - dropped; d > 0 {
		c.dropped.Add(int64(d))
	}
	return n, err
}

// drainLocked empties the ring into the sink and accounts the handed-off
// bytes. The caller holds the lock.
func (c *Console) drainLocked() int {
	n := c.rb.drain(c.sink)
	if n > 0 {
		c.drained.Add(int64(n))
	}
	return n
}

// restore removes the stored trailing bytes of a capture-style call so
// the ring ends up exactly as it was beforehand. When the call filled the
// whole ring from empty the walk-back refuses a full-capacity rewind, and
// clearing the ring outright restores the same empty state. The caller
// holds the lock.
func (c *Console) restore(stored int) {
	if stored == 0 {
		return
	}
	if c.rb.rewind(stored) != stored {
		c.rb.reset()
	}
}
