package mtlist

import "runtime"

// minRelax and maxRelax bound the exponential backoff: a small constant
// iteration count of CPU-relax that doubles on each successive rollback
// of the same operation, up to a bounded cap.
const (
	minRelax = 4
	maxRelax = 1 << 20
)

// relax is the CPU-relax hook invoked inside backoff loops. The default
// yields the processor via runtime.Gosched. Tests may swap it out to
// make contention deterministic.
var relax = runtime.Gosched

// backoff is a per-call-site exponential backoff counter. Its zero
// value starts at minRelax on first use. A backoff must not be shared
// across goroutines or across unrelated operation attempts.
type backoff struct {
	n int
}

// wait spins for the current number of relax iterations, then grows the
// count for the next call, capping at maxRelax.
func (b *backoff) wait() {
	n := b.n
	if n == 0 {
		n = minRelax
	}
	for i := 0; i < n; i++ {
		relax()
	}
	n *= 2
	if n > maxRelax {
		n = maxRelax
	}
	b.n = n
}

// reset clears the backoff counter, e.g. once an operation has made
// progress and is about to start a fresh sub-step.
func (b *backoff) reset() {
	b.n = 0
}
