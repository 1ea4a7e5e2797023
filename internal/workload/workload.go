package workload

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/xorrace/counter"
)

// Config fixes the shape of one run. The demonstrator itself always uses
// Default(); smaller shapes exist for tests and the check subcommand.
type Config struct {
	// Workers is the number of concurrently running goroutines.
	Workers int

	// Rounds is how many operands each worker draws.
	Rounds int

	// Repeats is how many times each drawn operand is applied to both
	// counters before the next draw.
	Repeats int

	// Source, if non-nil, supplies the operand generator for each
	// worker. When nil every worker seeds its own PCG from the
	// process entropy source, so runs are not bit-reproducible by
	// design.
	Source func(worker int) func() uint64
}

// Default returns the demonstrator's fixed shape: 32 workers, 256
// operands each, 2048 applications per operand.
func Default() Config {
	return Config{Workers: 32, Rounds: 256, Repeats: 2048}
}

// Result holds the final counter values and the elapsed wall time of the
// concurrent phase.
type Result struct {
	Unsync  uint64
	Atomic  uint64
	Elapsed time.Duration

	// activeAtRead is how many workers were still running when the
	// final values were read. The join barrier guarantees zero; tests
	// assert it.
	activeAtRead int64
}

// Run executes the workload and returns the final state of both
// counters. It blocks until every worker has terminated; a panicking
// worker takes the whole process down, which is the intended failure
// mode.
func Run(cfg Config) Result {
	unsync := counter.NewUnsync()
	atom := counter.NewAtomic()

	log.Debugf("workload: %d workers x %d rounds x %d repeats",
		cfg.Workers, cfg.Rounds, cfg.Repeats)

	start := time.Now()

	var active atomic.Int64
	var g errgroup.Group
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			active.Add(1)
			defer active.Add(-1)

			next := cfg.generator(w)
			for r := 0; r < cfg.Rounds; r++ {
				n := next()
				for i := 0; i < cfg.Repeats; i++ {
					// Atomic first, then unsync, for every
					// operand: both counters see the same
					// sequence, back to back.
					atom.Xor(n)
					unsync.Xor(n)
				}
			}
			return nil
		})
	}
	// Join barrier. Workers never return errors; only after Wait
	// returns may either counter be read.
	_ = g.Wait()

	res := Result{
		activeAtRead: active.Load(),
		Unsync:       unsync.Value(),
		Atomic:       atom.Value(),
		Elapsed:      time.Since(start),
	}
	log.Debugf("workload: done in %s, unsync=%#016x atomic=%#016x",
		res.Elapsed, res.Unsync, res.Atomic)
	return res
}

// generator returns the operand source for one worker. The default is a
// PCG seeded from the shared entropy-backed source; seeding happens on
// the worker's own goroutine and involves no cross-worker coordination
// beyond the draw of the two seed words.
func (cfg Config) generator(worker int) func() uint64 {
	if cfg.Source != nil {
		return cfg.Source(worker)
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return rng.Uint64
}
