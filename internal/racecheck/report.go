package racecheck

import (
	"fmt"
	"io"
	"runtime"

	"github.com/logrusorgru/aurora"
)

// Race kinds, named after the access pair in observation order.
const (
	KindWriteWrite = "write-write"
	KindReadWrite  = "read-write"
	KindWriteRead  = "write-read"
)

// Access describes one side of a reported race.
type Access struct {
	TID   uint8
	Epoch Epoch
	Stack []uintptr
}

// Report is one deduplicated race between two accesses to the same
// address.
type Report struct {
	Kind string
	Addr uintptr
	Prev Access
	Curr Access
}

// Write renders the report for terminal output, one colored header line
// followed by the captured stacks.
func (r Report) Write(w io.Writer) {
	fmt.Fprintln(w, aurora.Red("RACE"), fmt.Sprintf("%s on %#x: thread %d (%s) vs thread %d (%s)",
		r.Kind, r.Addr, r.Prev.TID, r.Prev.Epoch, r.Curr.TID, r.Curr.Epoch))
	writeStack(w, "current access", r.Curr.Stack)
	writeStack(w, "previous access", r.Prev.Stack)
}

func writeStack(w io.Writer, label string, pcs []uintptr) {
	if len(pcs) == 0 {
		return
	}
	fmt.Fprintln(w, " ", aurora.Magenta(label+":"))
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		if f.Function != "" {
			fmt.Fprintf(w, "    %s\n        %s:%d\n", aurora.BrightGreen(f.Function), f.File, f.Line)
		}
		if !more {
			break
		}
	}
}
