package klog

import (
	"io"
	"sync/atomic"
)

// Failure describes one failed write observed by an Observed sink.
type Failure struct {
	Err       error
	Written   int
	Attempted int
}

// ObservedStats captures aggregated failure counters for an Observed
// sink.
type ObservedStats struct {
	Failures    uint64
	ShortWrites uint64
}

// Observed wraps a destination writer and records write failures, so
// loss on the far side of the log channel can be observed without
// changing any call signatures.
type Observed struct {
	dst        io.Writer
	onFailure  func(Failure)
	failures   atomic.Uint64
	shortWrite atomic.Uint64
}

// NewObserved wraps dst with failure observation hooks. onFailure, when
// non-nil, runs synchronously on every failed write. A nil dst
// discards.
func NewObserved(dst io.Writer, onFailure func(Failure)) *Observed {
	if dst == nil {
		dst = io.Discard
	}
	return &Observed{dst: dst, onFailure: onFailure}
}

// Log writes p to the destination and records the outcome.
func (o *Observed) Log(p []byte) {
	if len(p) == 0 {
		return
	}
	n, err := o.dst.Write(p)
	if n != len(p) {
		o.shortWrite.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	if err == nil {
		return
	}
	o.failures.Add(1)
	if o.onFailure != nil {
		o.onFailure(Failure{Err: err, Written: n, Attempted: len(p)})
	}
}

// Stats returns cumulative write-failure counters.
func (o *Observed) Stats() ObservedStats {
	return ObservedStats{
		Failures:    o.failures.Load(),
		ShortWrites: o.shortWrite.Load(),
	}
}
