//go:build !race

// These tests intentionally race the unsynchronized counter and are
// excluded under the Go race detector, where they would (correctly) be
// reported. The deterministic form of the race property lives in the
// racecheck instrument tests.

package workload

import "testing"

// TestJoinBarrier: the reported values are read strictly after every
// worker has terminated. The runner snapshots its active-worker count at
// read time; it must be zero. The repeat count is even, so the atomic
// counter must additionally have cancelled back to zero no matter what
// operands were drawn.
func TestJoinBarrier(t *testing.T) {
	cfg := Config{Workers: 8, Rounds: 4, Repeats: 64}
	res := Run(cfg)

	if res.activeAtRead != 0 {
		t.Fatalf("activeAtRead = %d, want 0: counters read before the barrier", res.activeAtRead)
	}
	if res.Atomic != 0 {
		t.Errorf("Atomic = %#x, want 0 after even application counts", res.Atomic)
	}
}

// TestDivergenceLikely: with a contended workload the unsynchronized
// counter loses updates with very high probability. A single run can
// coincidentally come out right, so the property is asserted over
// repeated attempts: the repeat count is even, meaning a loss-free run
// ends at exactly zero, and we require at least one attempt to end
// elsewhere. Flaky in principle, astronomically stable in practice.
func TestDivergenceLikely(t *testing.T) {
	if testing.Short() {
		t.Skip("contended workload, skipped in -short mode")
	}

	const attempts = 20
	cfg := Config{Workers: 16, Rounds: 16, Repeats: 512}

	for i := 0; i < attempts; i++ {
		res := Run(cfg)
		if res.Atomic != 0 {
			t.Fatalf("attempt %d: Atomic = %#x, want 0 (atomic variant must never lose updates)", i, res.Atomic)
		}
		if res.Unsync != 0 {
			t.Logf("attempt %d: unsync diverged as expected (%#x)", i, res.Unsync)
			return
		}
	}
	t.Errorf("unsynchronized counter came out correct %d times in a row; lost updates were expected", attempts)
}
