package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	gt := NewGenerationTrace(TraceConfig{Level: TraceLevelAttempts})

	// WHEN summarized
	summary := Summarize(gt)

	// THEN all counts are zero
	if summary.TotalAttempts != 0 || summary.EmittedCount != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if summary.AcceptanceRate != 0 {
		t.Errorf("expected 0 acceptance rate, got %f", summary.AcceptanceRate)
	}
	if len(summary.IDFrequency) != 0 {
		t.Error("expected empty id frequency")
	}
}

func TestSummarize_NilTrace(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalAttempts != 0 || summary.IDFrequency == nil {
		t.Errorf("nil trace must summarize to zero values with a usable map, got %+v", summary)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with every outcome
	gt := NewGenerationTrace(TraceConfig{Level: TraceLevelAttempts})
	gt.RecordAttempt(AttemptRecord{Attempt: 1, Outcome: OutcomeInfeasible})
	gt.RecordAttempt(AttemptRecord{Attempt: 2, Outcome: OutcomeEmitted, Key: "gcc-mcf", IDs: []string{"gcc", "mcf"}})
	gt.RecordAttempt(AttemptRecord{Attempt: 3, Outcome: OutcomeDuplicate, Key: "gcc-mcf", IDs: []string{"gcc", "mcf"}})
	gt.RecordAttempt(AttemptRecord{Attempt: 4, Outcome: OutcomeEmitted, Key: "lbm-mcf-mcf", IDs: []string{"lbm", "mcf", "mcf"}})

	// WHEN summarized
	summary := Summarize(gt)

	// THEN counts match and only emitted keys feed the id frequency
	if summary.TotalAttempts != 4 {
		t.Errorf("expected 4 attempts, got %d", summary.TotalAttempts)
	}
	if summary.EmittedCount != 2 || summary.InfeasibleCount != 1 || summary.DuplicateCount != 1 {
		t.Errorf("unexpected outcome counts %+v", summary)
	}
	if summary.AcceptanceRate != 0.5 {
		t.Errorf("expected acceptance rate 0.5, got %f", summary.AcceptanceRate)
	}
	want := map[string]int{"gcc": 1, "mcf": 3, "lbm": 1}
	for id, n := range want {
		if summary.IDFrequency[id] != n {
			t.Errorf("IDFrequency[%s] = %d, want %d", id, summary.IDFrequency[id], n)
		}
	}
	if summary.UniqueIDs != 3 {
		t.Errorf("expected 3 unique ids, got %d", summary.UniqueIDs)
	}
}
