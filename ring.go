package kstdio

// ring is the fixed-capacity circular byte store behind every Console.
// Formatted output is staged here before a drain hands it to the sink.
// The capacity is fixed at construction; the buffer never grows, and
// content that overflows it between drains is dropped.
//
// Cursor model: start and end index into buf modulo its length. While
// full is false the live span is [start, end) and holds (end-start) mod
// cap bytes. When a write advances end onto start the buffer is
// saturated: full is set, start == end, and every slot is live.
//
// The ring is not safe for concurrent use; the owning Console serializes
// access through its lock.
type ring struct {
	buf   []byte
	start int
	end   int
	full  bool

	// wrote counts every byte handed to writeByte, kept or not, so a
	// caller can measure the logical length of what it produced. dropped
	// counts the subset discarded because the buffer was saturated. Both
	// are monotone.
	wrote   uint64
	dropped uint64
}

func newRing(capacity int) ring {
	return ring{buf: make([]byte, capacity)}
}

// writeByte stores one byte at end and advances the cursor. A saturated
// buffer discards the byte; producers are never blocked and the buffer
// never grows. This is the only place end and full are advanced: every
// byte that reaches the buffer goes through here.
func (r *ring) writeByte(c byte) {
	r.wrote++
	if r.full {
		r.dropped++
		return
	}
	r.buf[r.end] = c
	r.end++
	if r.end == len(r.buf) {
		r.end = 0
	}
	if r.end == r.start {
		r.full = true
	}
}

// writeString copies s into the buffer, stopping at the first NUL byte.
func (r *ring) writeString(s string) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		r.writeByte(s[i])
	}
}

// writeBytes copies p into the buffer, stopping at the first NUL byte.
func (r *ring) writeBytes(p []byte) {
	for i := 0; i < len(p) && p[i] != 0; i++ {
		r.writeByte(p[i])
	}
}

// writeNumber renders v in base (8, 10 or 16) with lowercase hex digits.
// Digits are pushed onto a fixed stack least-significant first and
// unwound most-significant first, so nothing is allocated.
func (r *ring) writeNumber(v uint64, base uint) {
	var stack [64]byte
	i := 0
	for {
		d := byte(v % uint64(base))
		if d < 10 {
			stack[i] = '0' + d
		} else {
			stack[i] = 'a' + d - 10
		}
		i++
		v /= uint64(base)
		if v == 0 {
			break
		}
	}
	for i--; i >= 0; i-- {
		r.writeByte(stack[i])
	}
}

// live returns the number of buffered bytes awaiting a drain.
func (r *ring) live() int {
	if r.full {
		return len(r.buf)
	}
	if r.end >= r.start {
		return r.end - r.start
	}
	return len(r.buf) - r.start + r.end
}

// drain hands the live span to sink in at most two contiguous writes,
// the second covering the wrapped tail, then resets the buffer to its
// empty state. The slices passed to the sink alias the buffer and are
// valid only for the duration of the call. Returns the number of bytes
// delivered.
func (r *ring) drain(sink Sink) int {
	n := r.live()
	if n > 0 && sink != nil {
		if r.end > r.start {
			sink.Log(r.buf[r.start:r.end])
		} else {
			sink.Log(r.buf[r.start:])
			if r.end > 0 {
				sink.Log(r.buf[:r.end])
			}
		}
	}
	r.reset()
	return n
}

// rewind removes the last n written bytes, zeroing each slot and stepping
// end backwards through the wrap boundary when needed. It returns the
// count actually removed: a request of the full capacity or more removes
// nothing, and a request beyond the live count removes only what is
// buffered.
func (r *ring) rewind(n int) int {
	if n <= 0 || n >= len(r.buf) {
		return 0
	}
	if l := r.live(); n > l {
		n = l
	}
	if n == 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		if r.end == 0 {
			r.end = len(r.buf)
		}
		r.end--
		r.buf[r.end] = 0
	}
	r.full = false
	return n
}

// capture copies the leading len(dst) bytes of the most recently written
// n bytes into dst, following the span across the wrap boundary, and
// returns the count copied. The buffer itself is left untouched; callers
// pair capture with rewind to take content out of the ring.
func (r *ring) capture(dst []byte, n int) int {
	if l := r.live(); n > l {
		n = l
	}
	want := len(dst)
	if want > n {
		want = n
	}
	idx := r.end - n
	if idx < 0 {
		idx += len(r.buf)
	}
	for i := 0; i < want; i++ {
		dst[i] = r.buf[idx]
		idx++
		if idx == len(r.buf) {
			idx = 0
		}
	}
	return want
}

// reset returns the buffer to its zero-initialized empty state.
func (r *ring) reset() {
	r.start = 0
	r.end = 0
	r.full = false
	clear(r.buf)
}
