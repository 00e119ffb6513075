// Package gen builds randomized, budget-constrained benchmark workloads.
//
// # Reading Guide
//
// Start with these files to understand the generation kernel:
//   - catalog.go: benchmark entries and their two cost dimensions
//   - sampler.go: one construction attempt (feasibility filter, last-slot rule)
//   - driver.go: the retry loop that emits unique canonical keys
//
// # Architecture
//
// A Generator (Sampler or SplitSampler) produces one candidate Workload per
// attempt or fails with ErrInfeasible. The Driver canonicalizes each candidate,
// deduplicates it against a WorkloadSet and hands accepted keys to an EmitFunc.
// The attempt ceiling turns unsatisfiable configurations into
// ErrExhaustedRetries instead of an endless loop.
//
// Sub-packages:
//   - gen/trace/: per-attempt decision trace and summary
//   - gen/bucket/: merges fine-grained workload list files into coarse buckets
//
// Randomness enters only through the Chooser interface, so a seeded
// PartitionedRNG gives reproducible runs and tests can script every pick.
package gen
