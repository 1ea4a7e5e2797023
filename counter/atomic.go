package counter

import "sync/atomic"

// Atomic accumulates XOR operands with an indivisible read-modify-write.
//
// sync/atomic has no fetch-XOR primitive, so Xor is a compare-and-swap
// loop: load the current value, publish value^operand only if nobody got
// in between, retry otherwise. Each successful CAS is a single hardware
// RMW step, so no concurrent update is ever lost or torn. That
// indivisibility is the only property the accumulator relies on; it
// needs no visibility ordering for any other memory.
type Atomic struct {
	v atomic.Uint64
}

// NewAtomic returns a zeroed atomic accumulator.
func NewAtomic() *Atomic {
	return &Atomic{}
}

// Xor atomically updates the value to value XOR operand.
func (c *Atomic) Xor(operand uint64) {
	for {
		old := c.v.Load()
		if c.v.CompareAndSwap(old, old^operand) {
			return
		}
	}
}

// Value returns the accumulated value.
func (c *Atomic) Value() uint64 {
	return c.v.Load()
}
