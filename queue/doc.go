// Package queue provides a bounded concurrent FIFO guarded by a
// spinlock with try-acquire semantics only.
//
// Every mutating operation attempts the lock exactly once and returns
// [ErrBusy] when another caller holds it, so the queue is usable from
// contexts that must not wait: an interrupt-style caller preempting a
// lock holder observes busy, never a deadlock. Capacity edges are
// distinct signals, [ErrFull] and [ErrEmpty]. Size is maintained
// atomically, so Len, Cap, and Free never take the lock.
//
// All three are control-flow signals rather than failures; the caller
// retries, drops, or backs off:
//
//	backoff := iox.Backoff{}
//	for queue.IsBusy(q.Enqueue(v)) {
//	    backoff.Wait()
//	}
package queue
