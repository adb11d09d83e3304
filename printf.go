package kstdio

// Printf formats into the ring and immediately drains the result to the
// sink. It takes the blocking acquire and so belongs in ordinary task
// context only; callers that may have preempted a lock holder use
// Aprintf or Snprintf instead. Content accumulated by earlier
// asynchronous writes is drained first, so the log keeps call order.
//
// The returned count is the logical length of the formatted output,
// counting bytes a saturated ring had to discard. A malformed directive
// or argument mismatch aborts the call with the error; bytes produced
// before the failure still reach the sink.
func (c *Console) Printf(format string, args ...any) (int, error) {
	c.mu.Lock()
	c.drainLocked()
	n, err := c.printLocked(format, args)
	c.drainLocked()
	c.mu.Unlock()
	return n, err
}

// Snprintf formats into dst instead of the log, using the ring as
// scratch space: the call formats into it, copies the produced span out,
// and rewinds so the ring ends up exactly as it was beforehand. At most
// len(dst)-1 data bytes are copied and a terminating 0x00 byte is always
// written. An empty dst is rejected with ErrInvalidArg.
//
// The acquire is non-blocking: a contended console returns ErrBusy
// instead of waiting, so the call is safe from contexts that must not
// block. A malformed directive aborts with the error, leaving the
// partial output in the ring for the next drain; dst is not touched.
//
// Returns the copied length, which is the produced length truncated to
// fit dst and capped by what the ring could retain.
func (c *Console) Snprintf(dst []byte, format string, args ...any) (int, error) {
	if len(dst) == 0 {
		return 0, ErrInvalidArg
	}
	if !c.mu.TryLock() {
		c.busy.Add(1)
		return 0, ErrBusy
	}
	before := c.rb.live()
	_, err := c.printLocked(format, args)
	if err != nil {
		c.mu.Unlock()
		return 0, err
	}
	stored := c.rb.live() - before
	n := c.rb.capture(dst[:len(dst)-1], stored)
	dst[n] = 0
	c.restore(stored)
	c.mu.Unlock()
	return n, nil
}

// Sprintf is Snprintf without the truncation bound: the caller promises
// dst holds the whole result plus the terminator, and the call fails
// with ErrInvalidArg when it does not, instead of overrunning. The ring
// is restored before the size failure returns, so no state is lost.
func (c *Console) Sprintf(dst []byte, format string, args ...any) (int, error) {
	if len(dst) == 0 {
		return 0, ErrInvalidArg
	}
	if !c.mu.TryLock() {
		c.busy.Add(1)
		return 0, ErrBusy
	}
	before := c.rb.live()
	produced, err := c.printLocked(format, args)
	if err != nil {
		c.mu.Unlock()
		return 0, err
	}
	stored := c.rb.live() - before
	if len(dst) < produced+1 {
		c.restore(stored)
		c.mu.Unlock()
		return 0, ErrInvalidArg
	}
	n := c.rb.capture(dst[:len(dst)-1], stored)
	dst[n] = 0
	c.restore(stored)
	c.mu.Unlock()
	return n, nil
}

// Aprintf formats into the ring without draining, leaving the content
// accumulated for a later Printf or Flush. The acquire is non-blocking
// and the call never touches the sink, which makes it the one logging
// path safe from a context that may have preempted a lock holder.
func (c *Console) Aprintf(format string, args ...any) (int, error) {
	if !c.mu.TryLock() {
		c.busy.Add(1)
		return 0, ErrBusy
	}
	n, err := c.printLocked(format, args)
	c.mu.Unlock()
	return n, err
}

// Flush drains accumulated content to the sink. The acquire is
// non-blocking; a contended console returns ErrBusy and keeps its
// content for a later attempt.
func (c *Console) Flush() error {
	if !c.mu.TryLock() {
		c.busy.Add(1)
		return ErrBusy
	}
	c.drainLocked()
	c.mu.Unlock()
	return nil
}
