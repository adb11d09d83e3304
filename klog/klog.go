// Package klog provides the kernel-log side of a console: small sink
// adapters that receive drained output spans and move them to a real
// destination. A sink is handed complete byte spans, at most two per
// drain, and has no way to report failure back into the draining path;
// adapters that can fail keep their own counters instead.
package klog

// Sink receives drained output. Log must not retain p; the span aliases
// ring storage that is reused as soon as the call returns.
type Sink interface {
	Log(p []byte)
}

// Func adapts a plain function to the Sink interface.
type Func func(p []byte)

// Log calls f with p.
func (f Func) Log(p []byte) { f(p) }

// Discard returns a Sink that drops everything it is given.
func Discard() Sink { return discardSink{} }

type discardSink struct{}

func (discardSink) Log([]byte) {}
