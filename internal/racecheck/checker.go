package racecheck

import (
	"fmt"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"
)

// maxStack is how many frames to capture for each reported access.
const maxStack = 16

// cell is the shadow state for one instrumented address: the epoch of
// the last write and of the last read. One reader epoch is enough for
// the demonstrator's write-heavy workload; a write clears read state, so
// alternating access patterns never accumulate readers.
type cell struct {
	write      Epoch
	read       Epoch
	writeStack []uintptr
}

// Checker detects missing happens-before edges between instrumented
// accesses. All methods are safe for concurrent use; per-Thread clocks
// are owned by their goroutines and only touched under the checker lock
// during Fork and Join.
type Checker struct {
	mu      sync.Mutex
	next    uint8
	main    *Thread
	cells   map[uintptr]*cell
	reports []Report
	seen    map[string]bool
}

// New returns a checker with its main thread already registered.
func New() *Checker {
	c := &Checker{
		cells: make(map[uintptr]*cell),
		seen:  make(map[string]bool),
	}
	c.main = c.alloc()
	return c
}

// Main returns the thread representing the goroutine that created the
// checker.
func (c *Checker) Main() *Thread {
	return c.main
}

// alloc registers the next thread ID. Caller must hold no lock state it
// cares about; alloc takes the checker lock itself.
func (c *Checker) alloc() *Thread {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(c.next) >= MaxThreads {
		panic("racecheck: thread limit exceeded")
	}
	t := &Thread{tid: c.next}
	c.next++
	// Clocks start at 1 so the zero Epoch stays "never accessed".
	t.clock.tick(t.tid)
	t.epoch = newEpoch(t.tid, 1)
	return t
}

// Fork registers a new thread whose logical time starts after everything
// parent has done so far: the spawn edge. Call it on the parent's
// goroutine before handing the child Thread to the new goroutine.
func (c *Checker) Fork(parent *Thread) *Thread {
	child := c.alloc()
	child.clock.join(&parent.clock)
	// The parent moves on; its later accesses are concurrent with the
	// child's.
	parent.tick()
	return child
}

// Join merges child's logical time into parent: the join edge. Call it
// on the parent's goroutine after the child goroutine has terminated.
func (c *Checker) Join(parent, child *Thread) {
	parent.clock.join(&child.clock)
}

// OnWrite records a write by t to addr, reporting a race if the previous
// write or read to addr is not ordered before it.
func (c *Checker) OnWrite(t *Thread, addr uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.cell(addr)
	if s.write == t.epoch {
		return // same-epoch repeat, nothing new to learn
	}
	if s.write != 0 && !s.write.happensBefore(&t.clock) {
		c.report(KindWriteWrite, addr, s.write, s.writeStack, t)
		return
	}
	if s.read != 0 && !s.read.happensBefore(&t.clock) {
		c.report(KindReadWrite, addr, s.read, nil, t)
		return
	}
	s.write = t.epoch
	s.writeStack = callers(3)
	s.read = 0
	t.tick()
}

// OnRead records a read by t of addr, reporting a race if the previous
// write to addr is not ordered before it.
func (c *Checker) OnRead(t *Thread, addr uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.cell(addr)
	if s.write != 0 && !s.write.happensBefore(&t.clock) {
		c.report(KindWriteRead, addr, s.write, s.writeStack, t)
		return
	}
	s.read = t.epoch
	t.tick()
}

// Reports returns a copy of all deduplicated race reports so far.
func (c *Checker) Reports() []Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Report, len(c.reports))
	copy(out, c.reports)
	return out
}

// Count returns the number of distinct races flagged so far.
func (c *Checker) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reports)
}

// cell returns the shadow cell for addr, creating it on first access.
// Caller holds c.mu.
func (c *Checker) cell(addr uintptr) *cell {
	s, ok := c.cells[addr]
	if !ok {
		s = &cell{}
		c.cells[addr] = s
	}
	return s
}

// report records one race, dropping duplicates for the same kind,
// address, and thread pair. Caller holds c.mu.
func (c *Checker) report(kind string, addr uintptr, prev Epoch, prevStack []uintptr, t *Thread) {
	prevTID, _ := prev.split()
	lo, hi := prevTID, t.tid
	if lo > hi {
		lo, hi = hi, lo
	}
	key := fmt.Sprintf("%s:%#x:%d:%d", kind, addr, lo, hi)
	if c.seen[key] {
		return
	}
	c.seen[key] = true

	r := Report{
		Kind: kind,
		Addr: addr,
		Prev: Access{TID: prevTID, Epoch: prev, Stack: prevStack},
		Curr: Access{TID: t.tid, Epoch: t.epoch, Stack: callers(4)},
	}
	c.reports = append(c.reports, r)
	log.Warnf("racecheck: %s race at %#x between thread %d (%s) and thread %d (%s)",
		kind, addr, r.Prev.TID, r.Prev.Epoch, r.Curr.TID, r.Curr.Epoch)
}

// callers captures the calling stack. skip counts the instrument's own
// frames so the first entry is the instrumented call site.
func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxStack)
	n := runtime.Callers(skip, pcs)
	return pcs[:n]
}
