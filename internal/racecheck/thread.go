package racecheck

// Thread carries the logical time of one instrumented goroutine. A
// Thread must only be used from the goroutine it was forked for; the
// Checker's shared state is what gets locked, not the per-thread clock.
//
// Invariant: epoch == newEpoch(tid, clock[tid]) at all times. tick is
// the only mutation and maintains it.
type Thread struct {
	tid   uint8
	clock Clock
	epoch Epoch
}

// tick advances this thread's logical time, refreshing the cached epoch.
func (t *Thread) tick() {
	t.clock.tick(t.tid)
	t.epoch = newEpoch(t.tid, t.clock.get(t.tid))
}

// TID returns the instrument-assigned thread identifier.
func (t *Thread) TID() uint8 {
	return t.tid
}
