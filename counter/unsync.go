package counter

// Unsync accumulates XOR operands with NO synchronization. It is unsound
// under concurrent use, and that unsoundness is the point: do not "fix"
// it, and do not use it for anything except the lost-update
// demonstration.
//
// Xor is three separable steps (load, XOR, store). When two goroutines
// overlap, one can store a result computed from a stale load and wipe
// out the other's update. The final value is therefore nondeterministic
// and usually under-counts relative to the XOR of all operands. Under
// the Go race detector every concurrent call pair is a reportable data
// race.
type Unsync struct {
	v uint64
}

// NewUnsync returns a zeroed unsynchronized accumulator. The handle may
// be shared across goroutines, but nothing protects the value behind it.
func NewUnsync() *Unsync {
	return &Unsync{}
}

// Xor performs a plain, non-atomic read-modify-write. Kept as explicit
// load / modify / store so the racy window is the code you see.
func (c *Unsync) Xor(operand uint64) {
	v := c.v
	v ^= operand
	c.v = v
}

// Value returns the accumulated value. Only meaningful once all writers
// have stopped.
func (c *Unsync) Value() uint64 {
	return c.v
}
