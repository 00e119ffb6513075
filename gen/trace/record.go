// Package trace records per-attempt decisions of a generation run.
// This package does not import gen; it holds plain data types only.
package trace

// Outcome is the fate of one construction attempt.
type Outcome string

const (
	OutcomeEmitted    Outcome = "emitted"
	OutcomeInfeasible Outcome = "infeasible"
	OutcomeDuplicate  Outcome = "duplicate"
)

// AttemptRecord captures a single construction attempt.
type AttemptRecord struct {
	Attempt int
	Worker  int
	Outcome Outcome
	Key     string   // canonical key; empty for infeasible attempts
	IDs     []string // ids of Key, set for emitted attempts
	Reason  string
}
