package workload

import (
	"fmt"
	"io"
	"time"
)

// Report writes the demonstrator's three result lines: both final values
// as zero-padded 64-digit binary strings, then the elapsed wall time.
// The unsynchronized value comes first; comparing the two lines by eye
// is the demonstration.
func Report(w io.Writer, res Result) {
	fmt.Fprintf(w, "unsync: %064b\n", res.Unsync)
	fmt.Fprintf(w, "atomic: %064b\n", res.Atomic)
	fmt.Fprintf(w, "took %s\n", formatElapsed(res.Elapsed))
}

// formatElapsed rounds d to its leading unit so the rendered duration
// carries no fractional digits ("5ms", "12s", "830µs").
func formatElapsed(d time.Duration) string {
	unit := time.Nanosecond
	switch {
	case d >= time.Second:
		unit = time.Second
	case d >= time.Millisecond:
		unit = time.Millisecond
	case d >= time.Microsecond:
		unit = time.Microsecond
	}
	return d.Round(unit).String()
}
