package racecheck

import "fmt"

// Epoch is a compact logical timestamp for one access: thread ID in the
// top 8 bits, that thread's clock in the low 24. The zero Epoch is
// reserved to mean "no access recorded" (thread clocks start at 1).
type Epoch uint32

const (
	clockBits = 24
	clockMask = 1<<clockBits - 1
)

func newEpoch(tid uint8, clock uint32) Epoch {
	return Epoch(uint32(tid)<<clockBits | clock&clockMask)
}

func (e Epoch) split() (tid uint8, clock uint32) {
	return uint8(e >> clockBits), uint32(e) & clockMask
}

// happensBefore reports whether the access stamped e is ordered before
// everything a thread with clock c has already observed. This is the
// O(1) check FastTrack builds on: e's clock must be covered by c's entry
// for e's thread.
func (e Epoch) happensBefore(c *Clock) bool {
	tid, clk := e.split()
	return clk <= c.get(tid)
}

// String renders the epoch as "clock@tid", e.g. "42@5".
func (e Epoch) String() string {
	tid, clk := e.split()
	return fmt.Sprintf("%d@%d", clk, tid)
}
