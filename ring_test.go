package kstdio

import (
	"bytes"
	"testing"
)

// spanRecorder keeps a copy of every span a drain hands over; the
// originals alias ring storage and die with the call.
type spanRecorder struct {
	spans [][]byte
}

func (s *spanRecorder) Log(p []byte) {
	s.spans = append(s.spans, append([]byte(nil), p...))
}

func (s *spanRecorder) joined() []byte {
	return bytes.Join(s.spans, nil)
}

func TestRingWriteAdvancesEnd(t *testing.T) {
	r := newRing(8)
	r.writeString("ab")
	if got, want := r.live(), 2; got != want {
		t.Fatalf("live = %d, want %d", got, want)
	}
	if r.start != 0 || r.end != 2 || r.full {
		t.Fatalf("cursors = (%d, %d, %v), want (0, 2, false)", r.start, r.end, r.full)
	}
	if got, want := r.wrote, uint64(2); got != want {
		t.Fatalf("wrote = %d, want %d", got, want)
	}
}

func TestRingSaturatesAtCapacity(t *testing.T) {
	r := newRing(4)
	r.writeString("wxyz")
	if !r.full {
		t.Fatalf("ring not full after writing its capacity")
	}
	if r.start != r.end {
		t.Fatalf("saturated ring has start %d != end %d", r.start, r.end)
	}
	if got, want := r.live(), 4; got != want {
		t.Fatalf("live = %d, want %d", got, want)
	}
	if r.dropped != 0 {
		t.Fatalf("dropped = %d before overflow, want 0", r.dropped)
	}

	r.writeString("!!")
	if got, want := r.wrote, uint64(6); got != want {
		t.Fatalf("wrote = %d, want %d", got, want)
	}
	if got, want := r.dropped, uint64(2); got != want {
		t.Fatalf("dropped = %d, want %d", got, want)
	}
	if got, want := r.live(), 4; got != want {
		t.Fatalf("live = %d after overflow, want %d", got, want)
	}

	var rec spanRecorder
	r.drain(&rec)
	if got, want := string(rec.joined()), "wxyz"; got != want {
		t.Fatalf("drained %q, want %q (overflow bytes must not appear)", got, want)
	}
}

func TestRingDrainSingleSpan(t *testing.T) {
	r := newRing(8)
	r.writeString("hello")

	var rec spanRecorder
	if got, want := r.drain(&rec), 5; got != want {
		t.Fatalf("drain returned %d, want %d", got, want)
	}
	if len(rec.spans) != 1 {
		t.Fatalf("drain used %d sink calls, want 1", len(rec.spans))
	}
	if got, want := string(rec.spans[0]), "hello"; got != want {
		t.Fatalf("drained %q, want %q", got, want)
	}
	if r.start != 0 || r.end != 0 || r.full || r.live() != 0 {
		t.Fatalf("ring not empty after drain: start=%d end=%d full=%v live=%d",
			r.start, r.end, r.full, r.live())
	}
	for i, b := range r.buf {
		if b != 0 {
			t.Fatalf("storage byte %d = %q after drain, want zero", i, b)
		}
	}
}

func TestRingDrainSaturated(t *testing.T) {
	r := newRing(4)
	r.writeString("wxyz")

	var rec spanRecorder
	if got, want := r.drain(&rec), 4; got != want {
		t.Fatalf("drain returned %d, want %d", got, want)
	}
	// saturation from empty wraps end back onto start 0, so the whole
	// capacity is one contiguous span
	if len(rec.spans) != 1 {
		t.Fatalf("drain used %d sink calls, want 1", len(rec.spans))
	}
	if got, want := string(rec.spans[0]), "wxyz"; got != want {
		t.Fatalf("drained %q, want %q", got, want)
	}
}

func TestRingDrainWrapped(t *testing.T) {
	r := newRing(8)
	copy(r.buf[5:], "abc")
	copy(r.buf[:3], "def")
	r.start, r.end = 5, 3

	var rec spanRecorder
	if got, want := r.drain(&rec), 6; got != want {
		t.Fatalf("drain returned %d, want %d", got, want)
	}
	if len(rec.spans) != 2 {
		t.Fatalf("drain used %d sink calls, want 2", len(rec.spans))
	}
	if got, want := string(rec.spans[0]), "abc"; got != want {
		t.Fatalf("first span %q, want %q", got, want)
	}
	if got, want := string(rec.spans[1]), "def"; got != want {
		t.Fatalf("second span %q, want %q", got, want)
	}
	if r.live() != 0 {
		t.Fatalf("live = %d after drain, want 0", r.live())
	}
}

func TestRingDrainSaturatedWrapped(t *testing.T) {
	r := newRing(8)
	copy(r.buf, "fghabcde")
	r.start, r.end = 3, 3
	r.full = true

	var rec spanRecorder
	if got, want := r.drain(&rec), 8; got != want {
		t.Fatalf("drain returned %d, want %d", got, want)
	}
	if got, want := string(rec.joined()), "abcdefgh"; got != want {
		t.Fatalf("drained %q, want %q", got, want)
	}
}

func TestRingDrainEmpty(t *testing.T) {
	r := newRing(8)
	var rec spanRecorder
	if got := r.drain(&rec); got != 0 {
		t.Fatalf("drain of empty ring returned %d, want 0", got)
	}
	if len(rec.spans) != 0 {
		t.Fatalf("drain of empty ring made %d sink calls, want 0", len(rec.spans))
	}
}

func TestRingRewindGuards(t *testing.T) {
	r := newRing(8)
	r.writeString("abcde")

	for _, n := range []int{0, -1, 8, 9} {
		if got := r.rewind(n); got != 0 {
			t.Fatalf("rewind(%d) = %d, want 0", n, got)
		}
		if r.end != 5 || r.live() != 5 {
			t.Fatalf("rewind(%d) moved cursors: end=%d live=%d", n, r.end, r.live())
		}
	}
}

func TestRingRewindFullCapacityRefused(t *testing.T) {
	r := newRing(4)
	r.writeString("wxyz")

	// even with the whole capacity live, a full-capacity rewind is a
	// guarded no-op
	if got := r.rewind(4); got != 0 {
		t.Fatalf("rewind(capacity) = %d, want 0", got)
	}
	if !r.full || r.live() != 4 {
		t.Fatalf("rewind(capacity) disturbed the ring: full=%v live=%d", r.full, r.live())
	}
}

func TestRingRewindClampsToLive(t *testing.T) {
	r := newRing(8)
	r.writeString("abc")

	if got, want := r.rewind(5), 3; got != want {
		t.Fatalf("rewind(5) = %d, want %d", got, want)
	}
	if r.live() != 0 || r.end != 0 {
		t.Fatalf("ring not empty after clamped rewind: end=%d live=%d", r.end, r.live())
	}
}

func TestRingRewindRestoresState(t *testing.T) {
	r := newRing(8)
	r.writeString("ab")
	end, full := r.end, r.full

	r.writeString("cde")
	if got, want := r.rewind(3), 3; got != want {
		t.Fatalf("rewind(3) = %d, want %d", got, want)
	}
	if r.end != end || r.full != full || r.start != 0 {
		t.Fatalf("cursors = (%d, %d, %v), want (0, %d, %v)", r.start, r.end, r.full, end, full)
	}
	if got, want := string(r.buf[:2]), "ab"; got != want {
		t.Fatalf("surviving content %q, want %q", got, want)
	}
	for i := 2; i < len(r.buf); i++ {
		if r.buf[i] != 0 {
			t.Fatalf("rewound slot %d = %q, want zero", i, r.buf[i])
		}
	}
}

func TestRingRewindClearsFull(t *testing.T) {
	r := newRing(4)
	r.writeString("wxyz")

	if got, want := r.rewind(2), 2; got != want {
		t.Fatalf("rewind(2) = %d, want %d", got, want)
	}
	if r.full {
		t.Fatalf("full still set after rewind")
	}
	if got, want := r.live(), 2; got != want {
		t.Fatalf("live = %d, want %d", got, want)
	}
	var rec spanRecorder
	r.drain(&rec)
	if got, want := string(rec.joined()), "wx"; got != want {
		t.Fatalf("drained %q after rewind, want %q", got, want)
	}
}

func TestRingCapture(t *testing.T) {
	r := newRing(8)
	r.writeString("hello")

	var dst [8]byte
	if got, want := r.capture(dst[:], 3), 3; got != want {
		t.Fatalf("capture = %d, want %d", got, want)
	}
	if got, want := string(dst[:3]), "llo"; got != want {
		t.Fatalf("captured %q, want %q", got, want)
	}
	if got, want := r.live(), 5; got != want {
		t.Fatalf("capture changed live count to %d, want %d", got, want)
	}
}

func TestRingCaptureTruncates(t *testing.T) {
	r := newRing(8)
	r.writeString("hello")

	var dst [4]byte
	if got, want := r.capture(dst[:], 5), 4; got != want {
		t.Fatalf("capture = %d, want %d", got, want)
	}
	// truncation keeps the leading bytes of the span
	if got, want := string(dst[:]), "hell"; got != want {
		t.Fatalf("captured %q, want %q", got, want)
	}
}

func TestRingCaptureClampsToLive(t *testing.T) {
	r := newRing(8)
	r.writeString("xy")

	var dst [8]byte
	if got, want := r.capture(dst[:], 10), 2; got != want {
		t.Fatalf("capture = %d, want %d", got, want)
	}
	if got, want := string(dst[:2]), "xy"; got != want {
		t.Fatalf("captured %q, want %q", got, want)
	}
}

func TestRingCaptureWrapped(t *testing.T) {
	r := newRing(8)
	copy(r.buf[6:], "ab")
	copy(r.buf[:2], "cd")
	r.start, r.end = 6, 2

	var dst [8]byte
	if got, want := r.capture(dst[:], 4), 4; got != want {
		t.Fatalf("capture = %d, want %d", got, want)
	}
	if got, want := string(dst[:4]), "abcd"; got != want {
		t.Fatalf("captured %q, want %q", got, want)
	}

	if got, want := r.capture(dst[:], 3), 3; got != want {
		t.Fatalf("capture = %d, want %d", got, want)
	}
	if got, want := string(dst[:3]), "bcd"; got != want {
		t.Fatalf("captured %q, want %q", got, want)
	}
}

func TestRingWriteStringStopsAtNUL(t *testing.T) {
	r := newRing(8)
	r.writeString("ab\x00cd")
	if got, want := r.live(), 2; got != want {
		t.Fatalf("live = %d, want %d", got, want)
	}
	r.writeBytes([]byte("ef\x00gh"))
	if got, want := r.live(), 4; got != want {
		t.Fatalf("live = %d, want %d", got, want)
	}
	var rec spanRecorder
	r.drain(&rec)
	if got, want := string(rec.joined()), "abef"; got != want {
		t.Fatalf("drained %q, want %q", got, want)
	}
}

func TestRingWriteNumber(t *testing.T) {
	cases := []struct {
		v    uint64
		base uint
		want string
	}{
		{0, 10, "0"},
		{7, 10, "7"},
		{42, 10, "42"},
		{255, 16, "ff"},
		{0xab, 16, "ab"},
		{8, 8, "10"},
		{0, 16, "0"},
		{18446744073709551615, 10, "18446744073709551615"},
		{18446744073709551615, 16, "ffffffffffffffff"},
		{18446744073709551615, 8, "1777777777777777777777"},
	}
	for _, tc := range cases {
		r := newRing(32)
		r.writeNumber(tc.v, tc.base)
		var rec spanRecorder
		r.drain(&rec)
		if got := string(rec.joined()); got != tc.want {
			t.Fatalf("writeNumber(%d, %d) = %q, want %q", tc.v, tc.base, got, tc.want)
		}
	}
}
