package racecheck

import (
	"fmt"
	"strings"
)

// MaxThreads bounds how many threads a Checker can register. The
// demonstrator runs at most a few dozen workers, so a small fixed-size
// clock keeps every operation allocation-free.
const MaxThreads = 64

// Clock is a fixed-size vector clock: element i is the latest logical
// time observed for thread i.
type Clock [MaxThreads]uint32

// join folds other into c point-wise: c = max(c, other). This is the
// synchronization edge; after joining, c has observed everything other
// had observed.
func (c *Clock) join(other *Clock) {
	for i := range c {
		if other[i] > c[i] {
			c[i] = other[i]
		}
	}
}

// lessOrEqual reports the happens-before partial order: true when every
// entry of c is covered by other.
func (c *Clock) lessOrEqual(other *Clock) bool {
	for i := range c {
		if c[i] > other[i] {
			return false
		}
	}
	return true
}

func (c *Clock) get(tid uint8) uint32 {
	return c[tid]
}

func (c *Clock) tick(tid uint8) {
	c[tid]++
}

// String lists the non-zero entries as "{tid:clock, ...}"; debugging
// only.
func (c *Clock) String() string {
	var parts []string
	for i, clk := range c {
		if clk != 0 {
			parts = append(parts, fmt.Sprintf("%d:%d", i, clk))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
