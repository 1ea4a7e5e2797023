package counter

import (
	"testing"
	"unsafe"

	log "github.com/sirupsen/logrus"

	"github.com/kolkov/xorrace/internal/racecheck"
)

func init() {
	// The instrument logs every flagged race; keep test output clean.
	log.SetLevel(log.FatalLevel)
}

// TestUnsyncXorFlaggedAsRace asserts the negative property the variant
// exists for: two threads calling Xor with no synchronization edge
// between them must be flagged by the happens-before instrument.
//
// The accesses are announced from a single test goroutine — the
// instrument judges the logical clocks, not the physical interleaving —
// so the outcome is deterministic and the test itself is clean under the
// Go race detector.
func TestUnsyncXorFlaggedAsRace(t *testing.T) {
	chk := racecheck.New()
	c := NewUnsync()
	addr := uintptr(unsafe.Pointer(&c.v))

	t1 := chk.Fork(chk.Main())
	t2 := chk.Fork(chk.Main())

	// Thread 1 performs one unprotected read-modify-write.
	chk.OnRead(t1, addr)
	chk.OnWrite(t1, addr)
	c.Xor(0xaa)

	// Thread 2 does the same with no edge ordering it after thread 1.
	chk.OnRead(t2, addr)
	chk.OnWrite(t2, addr)
	c.Xor(0x55)

	if chk.Count() == 0 {
		t.Fatal("concurrent unsynchronized Xor was not flagged as a race")
	}
	for _, r := range chk.Reports() {
		if r.Addr != addr {
			t.Errorf("race reported at %#x, want %#x", r.Addr, addr)
		}
	}
}

// TestUnsyncXorOrderedByJoinNotFlagged is the control: the same access
// pattern with a join edge between the two threads is not a race.
func TestUnsyncXorOrderedByJoinNotFlagged(t *testing.T) {
	chk := racecheck.New()
	c := NewUnsync()
	addr := uintptr(unsafe.Pointer(&c.v))

	main := chk.Main()
	t1 := chk.Fork(main)

	chk.OnRead(t1, addr)
	chk.OnWrite(t1, addr)
	c.Xor(0xaa)

	// Join orders everything t1 did before main's next access.
	chk.Join(main, t1)

	chk.OnRead(main, addr)
	chk.OnWrite(main, addr)
	c.Xor(0x55)

	if n := chk.Count(); n != 0 {
		t.Fatalf("join-ordered accesses flagged %d race(s), want 0", n)
	}
	if got := c.Value(); got != 0xaa^0x55 {
		t.Errorf("Value() = %#x, want %#x", got, 0xaa^0x55)
	}
}
