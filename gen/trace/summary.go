package trace

// TraceSummary aggregates statistics from a GenerationTrace.
type TraceSummary struct {
	TotalAttempts   int
	EmittedCount    int
	InfeasibleCount int
	DuplicateCount  int
	AcceptanceRate  float64 // emitted / total attempts
	UniqueIDs       int
	IDFrequency     map[string]int // benchmark ID → occurrences across emitted workloads
}

// Summarize computes aggregate statistics from a GenerationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(gt *GenerationTrace) *TraceSummary {
	summary := &TraceSummary{
		IDFrequency: make(map[string]int),
	}
	records := gt.Attempts()
	summary.TotalAttempts = len(records)

	for _, r := range records {
		switch r.Outcome {
		case OutcomeEmitted:
			summary.EmittedCount++
			for _, id := range r.IDs {
				summary.IDFrequency[id]++
			}
		case OutcomeInfeasible:
			summary.InfeasibleCount++
		case OutcomeDuplicate:
			summary.DuplicateCount++
		}
	}
	if summary.TotalAttempts > 0 {
		summary.AcceptanceRate = float64(summary.EmittedCount) / float64(summary.TotalAttempts)
	}
	summary.UniqueIDs = len(summary.IDFrequency)

	return summary
}
