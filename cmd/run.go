package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhowmick22/Simulator/gen"
	"github.com/abhowmick22/Simulator/gen/trace"
)

// runOptions holds the flags shared by every generating command.
type runOptions struct {
	cores       int    // Workload size (one benchmark per core)
	count       int    // Unique workloads to emit
	seed        int64  // Seed for benchmark selection
	replacement string // Replacement policy name
	maxAttempts int    // Attempt ceiling (0 = default)
	workers     int    // Parallel generation workers
	traceLevel  string // Attempt trace level
	outputPath  string // Output file ("" or "-" = stdout)
	profilePath string // YAML profile
}

func registerRunFlags(flags *pflag.FlagSet, o *runOptions, defaultPolicy gen.ReplacementPolicy) {
	flags.IntVar(&o.cores, "cores", 0, "Number of benchmarks per workload (one per core)")
	flags.IntVar(&o.count, "count", 0, "Number of unique workloads to emit (required)")
	flags.Int64Var(&o.seed, "seed", 42, "Seed for random benchmark selection")
	flags.StringVar(&o.replacement, "replacement", string(defaultPolicy), "Whether a benchmark may repeat within a workload (with, without)")
	flags.IntVar(&o.maxAttempts, "max-attempts", 0, fmt.Sprintf("Construction attempts before giving up (0 = %d)", gen.DefaultMaxAttempts))
	flags.IntVar(&o.workers, "workers", 1, "Parallel generation workers (>1 makes output order non-reproducible)")
	flags.StringVar(&o.traceLevel, "trace", "none", "Attempt trace level (none, attempts)")
	flags.StringVarP(&o.outputPath, "output", "o", "", "Write workloads to this file instead of stdout")
	flags.StringVar(&o.profilePath, "config", "", "YAML profile supplying defaults for unset flags")
}

// resolveProfile applies --config, if given, to the command's flags.
func resolveProfile(cmd *cobra.Command, o *runOptions) error {
	if o.profilePath == "" {
		return nil
	}
	p, err := loadProfile(o.profilePath)
	if err != nil {
		return err
	}
	return applyProfile(cmd.Flags(), p)
}

func (o *runOptions) validate() error {
	if o.cores < 1 {
		return fmt.Errorf("--cores must be at least 1, got %d", o.cores)
	}
	if o.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", o.count)
	}
	if o.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", o.workers)
	}
	if !trace.IsValidTraceLevel(o.traceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: none, attempts", o.traceLevel)
	}
	return nil
}

// executeRun drives g until o.count unique workloads were written to out.
// Workloads emitted before a failure are still flushed.
func executeRun(ctx context.Context, g gen.Generator, o *runOptions, out io.Writer) (gen.Stats, error) {
	gt := trace.NewGenerationTrace(trace.TraceConfig{Level: trace.TraceLevel(o.traceLevel)})
	driver, err := gen.NewDriver(g, gen.DriverConfig{Count: o.count, MaxAttempts: o.maxAttempts}, gen.WithTrace(gt))
	if err != nil {
		return gen.Stats{}, err
	}

	w := bufio.NewWriter(out)
	emit := func(key string) error {
		_, err := fmt.Fprintln(w, key)
		return err
	}

	startTime := time.Now()
	stats, runErr := driver.RunParallel(ctx, gen.NewPartitionedRNG(gen.NewRunKey(o.seed)), o.workers, emit)
	if err := w.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("writing workloads: %w", err)
	}

	logrus.Infof("Emitted %d/%d workloads in %d attempts (%d infeasible, %d duplicate) in %v",
		stats.Emitted, o.count, stats.Attempts, stats.Infeasible, stats.Duplicates, time.Since(startTime))
	if gt.Enabled() {
		s := trace.Summarize(gt)
		logrus.Infof("Trace: acceptance rate %.4f, %d distinct benchmarks used", s.AcceptanceRate, s.UniqueIDs)
		for _, id := range sortedKeys(s.IDFrequency) {
			logrus.Infof("  %-24s %d", id, s.IDFrequency[id])
		}
	}
	return stats, runErr
}

// openOutput returns stdout for "" or "-", otherwise a truncated file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
