package gen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abhowmick22/Simulator/gen/trace"
)

// DefaultMaxAttempts bounds a run when DriverConfig.MaxAttempts is zero.
const DefaultMaxAttempts = 1_000_000

// ErrExhaustedRetries is matched by *ExhaustedRetriesError.
var ErrExhaustedRetries = errors.New("exhausted retries")

// ExhaustedRetriesError reports a run that hit its attempt ceiling before
// emitting the requested number of unique workloads.
type ExhaustedRetriesError struct {
	Attempts  int
	Emitted   int
	Requested int
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("%s: emitted %d of %d unique workloads after %d attempts; budgets may be unsatisfiable or the feasible space too small",
		ErrExhaustedRetries, e.Emitted, e.Requested, e.Attempts)
}

func (e *ExhaustedRetriesError) Unwrap() error { return ErrExhaustedRetries }

// EmitFunc receives each accepted canonical key, in generation order.
type EmitFunc func(key string) error

// DriverConfig sets the quota and the attempt ceiling of a run.
type DriverConfig struct {
	Count       int // unique workloads to emit
	MaxAttempts int // 0 = DefaultMaxAttempts
}

// Stats counts attempts by outcome.
type Stats struct {
	Attempts   int
	Emitted    int
	Infeasible int
	Duplicates int
}

// DriverOption customizes a Driver.
type DriverOption func(*Driver)

// WithTrace records every attempt into gt.
func WithTrace(gt *trace.GenerationTrace) DriverOption {
	return func(d *Driver) { d.trace = gt }
}

// WithWorkloadSet deduplicates against an existing set, e.g. one shared by
// several runs that must stay globally unique.
func WithWorkloadSet(set *WorkloadSet) DriverOption {
	return func(d *Driver) { d.set = set }
}

// Driver repeatedly samples until Count unique workloads were emitted.
type Driver struct {
	gen   Generator
	cfg   DriverConfig
	set   *WorkloadSet
	trace *trace.GenerationTrace
}

// NewDriver validates cfg and applies opts.
func NewDriver(g Generator, cfg DriverConfig, opts ...DriverOption) (*Driver, error) {
	if g == nil {
		return nil, fmt.Errorf("generator is nil")
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", cfg.Count)
	}
	if cfg.MaxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must be non-negative, got %d", cfg.MaxAttempts)
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	d := &Driver{gen: g, cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	if d.set == nil {
		d.set = NewWorkloadSet()
	}
	return d, nil
}

// Set returns the keys accepted so far.
func (d *Driver) Set() *WorkloadSet { return d.set }

// Run generates sequentially. Given the same rng seed, catalog and config it
// emits the same key sequence.
func (d *Driver) Run(ctx context.Context, rng Chooser, emit EmitFunc) (Stats, error) {
	var stats Stats
	for stats.Emitted < d.cfg.Count {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if stats.Attempts >= d.cfg.MaxAttempts {
			return stats, d.exhausted(stats)
		}
		stats.Attempts++

		key, err := d.sample(rng)
		if err != nil {
			if !errors.Is(err, ErrInfeasible) {
				return stats, err
			}
			stats.Infeasible++
			d.discard(stats.Attempts, 0, trace.OutcomeInfeasible, "", err)
			continue
		}

		if !d.set.TryAdd(key) {
			stats.Duplicates++
			d.discard(stats.Attempts, 0, trace.OutcomeDuplicate, key, nil)
			continue
		}
		if err := emit(key); err != nil {
			return stats, fmt.Errorf("emitting workload %s: %w", key, err)
		}
		stats.Emitted++
		d.trace.RecordAttempt(trace.AttemptRecord{Attempt: stats.Attempts, Outcome: trace.OutcomeEmitted, Key: key, IDs: SplitKey(key)})
	}
	return stats, nil
}

// RunParallel spreads attempts over workers goroutines, each drawing from its
// own subsystem of rng. The quota, attempt ceiling and WorkloadSet are shared,
// so exactly Count unique keys are emitted, but their order depends on
// scheduling. A single worker falls back to Run.
func (d *Driver) RunParallel(ctx context.Context, rng *PartitionedRNG, workers int, emit EmitFunc) (Stats, error) {
	if workers <= 1 {
		return d.Run(ctx, rng.ForSubsystem(SubsystemSampler), emit)
	}

	// PartitionedRNG is not thread-safe; resolve every worker stream up front.
	choosers := make([]*rand.Rand, workers)
	for i := range choosers {
		choosers[i] = rng.ForSubsystem(SubsystemWorker(i))
	}

	var (
		mu       sync.Mutex
		stats    Stats
		attempts atomic.Int64
	)
	g, gctx := errgroup.WithContext(ctx)
	for i, chooser := range choosers {
		i, chooser := i, chooser
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				mu.Lock()
				done := stats.Emitted >= d.cfg.Count
				mu.Unlock()
				if done {
					return nil
				}
				if attempts.Add(1) > int64(d.cfg.MaxAttempts) {
					return ErrExhaustedRetries
				}

				key, err := d.sample(chooser)
				if err != nil && !errors.Is(err, ErrInfeasible) {
					return err
				}

				mu.Lock()
				if stats.Emitted >= d.cfg.Count {
					mu.Unlock()
					return nil
				}
				stats.Attempts++
				n := stats.Attempts
				switch {
				case err != nil:
					stats.Infeasible++
					d.discard(n, i, trace.OutcomeInfeasible, "", err)
				case !d.set.TryAdd(key):
					stats.Duplicates++
					d.discard(n, i, trace.OutcomeDuplicate, key, nil)
				default:
					if err := emit(key); err != nil {
						mu.Unlock()
						return fmt.Errorf("emitting workload %s: %w", key, err)
					}
					stats.Emitted++
					d.trace.RecordAttempt(trace.AttemptRecord{Attempt: n, Worker: i, Outcome: trace.OutcomeEmitted, Key: key, IDs: SplitKey(key)})
				}
				mu.Unlock()
			}
		})
	}

	err := g.Wait()
	if stats.Emitted >= d.cfg.Count {
		return stats, nil
	}
	if errors.Is(err, ErrExhaustedRetries) {
		return stats, d.exhausted(stats)
	}
	return stats, err
}

// sample runs the Sampling and Canonicalizing steps of one attempt.
func (d *Driver) sample(rng Chooser) (string, error) {
	w, err := d.gen.Sample(rng)
	if err != nil {
		return "", err
	}
	return w.Key(), nil
}

func (d *Driver) discard(attempt, worker int, outcome trace.Outcome, key string, reason error) {
	record := trace.AttemptRecord{Attempt: attempt, Worker: worker, Outcome: outcome, Key: key}
	if reason != nil {
		record.Reason = reason.Error()
		logrus.Debugf("attempt %d discarded: %v", attempt, reason)
	} else {
		logrus.Debugf("attempt %d discarded: duplicate workload %s", attempt, key)
	}
	d.trace.RecordAttempt(record)
}

func (d *Driver) exhausted(stats Stats) error {
	return &ExhaustedRetriesError{Attempts: stats.Attempts, Emitted: stats.Emitted, Requested: d.cfg.Count}
}
