package kstdio

// Stats is a point-in-time snapshot of a Console's counters. All four
// values are cumulative since construction.
type Stats struct {
	// Written counts every byte the formatter produced, including bytes
	// a saturated ring had to discard.
	Written int64
	// Dropped counts produced bytes that were discarded because the
	// ring was full.
	Dropped int64
	// Drained counts bytes handed off to the sink.
	Drained int64
	// Busy counts non-blocking calls that gave up because another
	// caller held the console.
	Busy int64
}

// Stats reads the console counters without taking the lock, so it is
// safe to call from a monitoring goroutine while the console is under
// load. The snapshot may interleave with concurrent calls; each
// individual counter is still exact.
func (c *Console) Stats() Stats {
	return Stats{
		Written: c.written.Load(),
		Dropped: c.dropped.Load(),
		Drained: c.drained.Load(),
		Busy:    c.busy.Load(),
	}
}
