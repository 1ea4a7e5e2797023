// Package racecheck is a small happens-before race instrument for the
// demonstrator. It implements the epoch/vector-clock core of the
// FastTrack algorithm (Flanagan & Freund, PLDI 2009), scaled down to a
// bounded number of explicitly registered threads.
//
// Instrumented code obtains a Thread per goroutine via Checker.Fork,
// reports each shared access with OnRead/OnWrite, and records
// termination order with Checker.Join. Two accesses to the same address
// race when neither is ordered before the other by the Fork/Join edges;
// the checker flags that from the logical clocks alone, so a race is
// reported deterministically even when the physical interleaving
// happened to be harmless.
//
// The instrument tracks only the handful of addresses it is told about.
// It is not a general-purpose detector; it exists so the unsynchronized
// counter's defect can be asserted as a property rather than observed as
// a coincidence.
package racecheck
