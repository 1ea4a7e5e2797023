package main

import (
	"fmt"
	"io"
	"sync"
	"unsafe"

	"github.com/kolkov/xorrace/counter"
	"github.com/kolkov/xorrace/internal/racecheck"
)

// checkOps is how many operands each instrumented goroutine applies.
// Small on purpose; the instrument flags the missing happens-before
// edge on the very first conflicting pair.
const checkOps = 64

// runCheck drives the unsynchronized counter from two goroutines under
// the happens-before instrument and prints every flagged race. Returns
// the process exit code: 0 when the race was flagged (the expected
// outcome), 1 when it was not.
func runCheck(w io.Writer) int {
	chk := racecheck.New()
	ctr := counter.NewUnsync()

	// The accumulated value is the counter's sole field, so the
	// counter's own address is the instrumented address.
	addr := uintptr(unsafe.Pointer(ctr))

	main := chk.Main()
	threads := []*racecheck.Thread{chk.Fork(main), chk.Fork(main)}

	var wg sync.WaitGroup
	for i, t := range threads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			operand := uint64(i + 1)
			for n := 0; n < checkOps; n++ {
				// Xor is a load then a store; announce both.
				chk.OnRead(t, addr)
				chk.OnWrite(t, addr)
				ctr.Xor(operand)
			}
		}()
	}
	wg.Wait()
	for _, t := range threads {
		chk.Join(main, t)
	}
	chk.OnRead(main, addr)

	reports := chk.Reports()
	for _, r := range reports {
		r.Write(w)
	}
	if len(reports) == 0 {
		fmt.Fprintln(w, "no race flagged; the unsynchronized counter should have raced")
		return 1
	}
	fmt.Fprintf(w, "%d race(s) flagged, final value %064b\n", len(reports), ctr.Value())
	return 0
}
