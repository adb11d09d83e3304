package kstdio

const (
	// DefaultBufferSize is the ring capacity used when Options leaves
	// BufferSize unset.
	DefaultBufferSize = 512
	// DefaultMaxWidth is the largest zero-pad width a directive may
	// request when Options leaves MaxWidth unset.
	DefaultMaxWidth = 255
)

// Options tunes a Console at construction time. The zero value selects
// the defaults, so callers only set the fields they care about.
type Options struct {
	// BufferSize is the ring capacity in bytes. Formatted output
	// accumulates here until a drain hands it to the sink; once the ring
	// saturates, further bytes are counted and discarded. Must be at
	// least 2.
	BufferSize int

	// MaxWidth caps the zero-pad width a single directive may request.
	// A template asking for more is rejected as malformed rather than
	// allowed to flood the ring. Must not be negative.
	MaxWidth int
}
