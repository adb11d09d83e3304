package klog

import (
	"io"
	"sync"

	"pkt.systems/kstdio/internal/istty"
)

// bufferedFlushTrigger is the batch size at which a Buffered sink writes
// through when the caller gave no explicit threshold.
const bufferedFlushTrigger = 4 << 10

// Writer is a write-through Sink: every span goes straight to the
// destination with no intermediate copy.
type Writer struct {
	dst io.Writer
}

// NewWriter returns a write-through sink for dst. A nil dst discards.
func NewWriter(dst io.Writer) *Writer {
	if dst == nil {
		dst = io.Discard
	}
	return &Writer{dst: dst}
}

// Log writes p to the destination. Write errors are dropped; wrap the
// destination in an Observed sink to count them.
func (w *Writer) Log(p []byte) {
	if len(p) == 0 {
		return
	}
	_, _ = w.dst.Write(p)
}

// Buffered is a Sink that accumulates spans and writes them out in
// batches, once the buffer crosses its threshold and on explicit Flush.
// It suits destinations where per-span writes are expensive, files and
// pipes rather than terminals. Safe for concurrent use.
type Buffered struct {
	mu      sync.Mutex
	dst     io.Writer
	buf     []byte
	trigger int
}

// NewBuffered returns a buffered sink for dst. size is the flush
// threshold in bytes; zero or negative selects the default. A nil dst
// discards.
func NewBuffered(dst io.Writer, size int) *Buffered {
	if dst == nil {
		dst = io.Discard
	}
	if size <= 0 {
		size = bufferedFlushTrigger
	}
	return &Buffered{dst: dst, buf: make([]byte, 0, size), trigger: size}
}

// Log appends p to the batch, writing the batch through once it reaches
// the threshold.
func (b *Buffered) Log(p []byte) {
	if len(p) == 0 {
		return
	}
	b.mu.Lock()
	b.buf = append(b.buf, p...)
	if len(b.buf) >= b.trigger {
		_ = b.flushLocked()
	}
	b.mu.Unlock()
}

// Flush writes any batched bytes to the destination.
func (b *Buffered) Flush() error {
	b.mu.Lock()
	err := b.flushLocked()
	b.mu.Unlock()
	return err
}

func (b *Buffered) flushLocked() error {
	if len(b.buf) == 0 {
		return nil
	}
	_, err := b.dst.Write(b.buf)
	b.buf = b.buf[:0]
	return err
}

type fdWriter interface {
	Fd() uintptr
}

// Auto returns a write-through sink when dst is an interactive terminal
// and a buffered one otherwise, the way stdio picks its buffering mode
// from isatty. Destinations without a file descriptor count as
// non-interactive.
func Auto(dst io.Writer) Sink {
	if f, ok := dst.(fdWriter); ok && istty.IsTerminal(int(f.Fd())) {
		return NewWriter(dst)
	}
	return NewBuffered(dst, 0)
}
