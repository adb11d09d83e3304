package kstdio

// Sink is the downstream log channel that receives drained buffer
// content: the stand-in for a kernel log write. A single drain hands over
// at most two spans, the second covering the ring's wrapped tail.
//
// Delivery is fire-and-forget; the formatting layer neither sees nor
// reports the sink's outcome. The span aliases the Console's internal
// storage and must not be retained after Log returns.
type Sink interface {
	Log(p []byte)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(p []byte)

// Log calls fn(p).
func (fn SinkFunc) Log(p []byte) { fn(p) }
