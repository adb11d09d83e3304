// Package spinlock provides the binary mutual-exclusion primitive guarding
// shared output state: a test-and-set spinlock with explicit acquire/release
// ordering and a non-blocking acquisition path.
//
// Two acquisition tiers exist by design. Lock spins until the lock is free
// and is only safe in contexts that may busy-wait (ordinary task code).
// TryLock never waits: it either takes the lock or reports contention
// immediately, which makes it the only legal acquisition from code that must
// not stall, such as interrupt-style callbacks preempting a holder.
//
// The lock is not reentrant and records no owner. Unlock must only be called
// by the goroutine that holds the lock.
package spinlock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Mutex is a spinning mutual-exclusion lock. The zero value is unlocked and
// ready for use. A Mutex must not be copied after first use.
type Mutex struct {
	state atomix.Uint64
}

// TryLock attempts to acquire the lock without waiting. It returns true when
// the lock was acquired and false when another holder has it. TryLock never
// spins, so it is safe from contexts that must not stall.
func (m *Mutex) TryLock() bool {
	return m.state.CompareAndSwapAcqRel(0, 1)
}

// Lock acquires the lock, spinning until it becomes available. The spin wait
// escalates progressively under contention. Lock must not be called from a
// context that is forbidden to wait; such callers use TryLock.
func (m *Mutex) Lock() {
	if m.state.CompareAndSwapAcqRel(0, 1) {
		return
	}
	sw := spin.Wait{}
	for {
		// Test before test-and-set: spin on a plain load so contended
		// acquisition does not hammer the cache line with CAS traffic.
		for m.state.LoadRelaxed() != 0 {
			sw.Once()
		}
		if m.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
	}
}

// Unlock releases the lock. The release store publishes every write made
// under the lock to the next acquirer.
func (m *Mutex) Unlock() {
	m.state.StoreRelease(0)
}

// Locked reports whether the lock is currently held by someone. It is a
// diagnostic snapshot only; the answer may be stale by the time it returns.
func (m *Mutex) Locked() bool {
	return m.state.LoadAcquire() != 0
}
