// Package kstdio provides a heap-free printf facility built around one
// fixed ring buffer: a small directive language, a blocking log path,
// and non-blocking buffer-formatting paths that share the ring as
// scratch space. It is the userland side of a kernel-logging setup, the
// kind of console a memory-constrained task links against, rendered as
// an ordinary Go library.
//
// # Design overview
//
//   - One ring, one lock: every operation formats into the same
//     fixed-capacity ring under a spinlock. Nothing allocates after
//     construction; a saturated ring counts and discards rather than
//     growing or blocking.
//   - Two lock disciplines: Printf takes the blocking acquire and is
//     meant for ordinary task context. Snprintf, Sprintf, Aprintf, and
//     Flush try the lock once and return ErrBusy, so a caller that
//     preempted a lock holder fails fast instead of deadlocking.
//   - Directive language: %d %i %u %x %o %p %s %c with l/ll/h/hh length
//     modifiers and zero-padded widths ("%08x"). No floats, no
//     precision, no flags beyond '0'. Malformed directives abort the
//     call; bytes already produced stay put.
//   - Capture and rewind: the buffer-formatting calls write into the
//     ring, copy the produced span out, then walk the cursors back so
//     the ring ends up exactly as it was.
//
// # Usage
//
//	console := kstdio.New(klog.Auto(os.Stdout))
//	console.Printf("mounted %s at %p\n", "flash0", uintptr(0x40021000))
//
// Interrupt-style contexts accumulate and flush later:
//
//	if _, err := console.Aprintf("irq %d\n", 7); kstdio.IsBusy(err) {
//		// lock holder active; drop or retry from task context
//	}
//	_ = console.Flush()
//
// Formatting into a caller buffer never reaches the sink:
//
//	var tmp [32]byte
//	n, _ := console.Snprintf(tmp[:], "%05d", 42)
//	_ = tmp[:n] // "00042", NUL-terminated at tmp[n]
//
// # Integration notes
//
//   - The klog subpackage holds sink adapters: write-through, buffered,
//     terminal-aware Auto, serial port, failure-observing wrappers.
//   - Stats() reads the written/dropped/drained/busy counters without
//     the lock, safe from any context.
//   - The spinlock and queue subpackages expose the same try-acquire
//     discipline for callers building their own interrupt-safe pieces.
//
// A runnable demo lives under the examples/ directory of the
// repository.
package kstdio
