package workload

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	log.SetLevel(log.FatalLevel)
	os.Exit(m.Run())
}

// TestDefaultShape pins the demonstrator's fixed constants.
func TestDefaultShape(t *testing.T) {
	cfg := Default()
	if cfg.Workers != 32 || cfg.Rounds != 256 || cfg.Repeats != 2048 {
		t.Errorf("Default() = %d/%d/%d, want 32/256/2048",
			cfg.Workers, cfg.Rounds, cfg.Repeats)
	}
	if cfg.Source != nil {
		t.Error("Default() must use entropy-seeded operands")
	}
}

// TestRunSingleWorker checks the accumulated values with concurrency
// removed: one worker, a fixed operand sequence, an odd repeat count so
// nothing cancels. Both counters must agree with the precomputed
// reduction.
func TestRunSingleWorker(t *testing.T) {
	operands := []uint64{0xdead, 0xbeef, 0xcafe, 0xf00d}
	const repeats = 3 // odd: each operand contributes itself

	var want uint64
	for _, op := range operands {
		want ^= op // odd applications reduce to one
	}

	cfg := Config{
		Workers: 1,
		Rounds:  len(operands),
		Repeats: repeats,
		Source: func(int) func() uint64 {
			i := 0
			return func() uint64 {
				op := operands[i]
				i++
				return op
			}
		},
	}
	res := Run(cfg)

	if res.Atomic != want {
		t.Errorf("Atomic = %#x, want %#x", res.Atomic, want)
	}
	if res.Unsync != want {
		t.Errorf("Unsync = %#x, want %#x (single writer cannot race)", res.Unsync, want)
	}
	if res.activeAtRead != 0 {
		t.Errorf("activeAtRead = %d, want 0", res.activeAtRead)
	}
	if res.Elapsed < 0 {
		t.Errorf("Elapsed = %v, want >= 0", res.Elapsed)
	}
}

// TestGeneratorDefaultsToEntropy: with no Source configured each worker
// gets its own generator; two draws from two workers' generators are
// overwhelmingly unlikely to collide on the first value.
func TestGeneratorDefaultsToEntropy(t *testing.T) {
	cfg := Config{}
	a := cfg.generator(0)
	b := cfg.generator(1)
	if a() == b() && a() == b() {
		t.Error("independent generators produced identical leading draws")
	}
}
