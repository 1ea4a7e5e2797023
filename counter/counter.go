package counter

// Counter is the minimal contract a shared accumulator must satisfy to
// take part in the demonstration: construct at zero, accept XOR updates
// from any number of goroutines, and expose the final value.
//
// Value is only meaningful after every concurrent writer has stopped
// (the workload driver enforces this with its join barrier). The
// contract deliberately says nothing about reads that overlap writes.
type Counter interface {
	// Xor updates the accumulator to value XOR operand. It is the sole
	// mutating operation and never fails.
	Xor(operand uint64)

	// Value returns the current accumulated value. Call it only after
	// all writers have terminated.
	Value() uint64
}

// Both variants satisfy the contract. Unsync satisfies its letter, not
// its spirit: it is callable from any goroutine but loses updates.
var (
	_ Counter = (*Atomic)(nil)
	_ Counter = (*Unsync)(nil)
)
