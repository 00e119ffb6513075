package gen

import (
	"testing"
)

// scriptedChooser replays fixed indices and records the candidate-set size
// offered at every draw.
type scriptedChooser struct {
	t     *testing.T
	picks []int
	sizes []int
}

func (s *scriptedChooser) Intn(n int) int {
	s.t.Helper()
	s.sizes = append(s.sizes, n)
	if len(s.picks) == 0 {
		s.t.Fatalf("scripted chooser exhausted (candidate set size %d)", n)
	}
	p := s.picks[0]
	s.picks = s.picks[1:]
	if p < 0 || p >= n {
		s.t.Fatalf("scripted pick %d out of range [0, %d)", p, n)
	}
	return p
}

func mustCatalog(t *testing.T, entries ...Entry) *Catalog {
	t.Helper()
	c, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

// abcCatalog is the three-entry catalog {A:(1,10), B:(2,5), C:(3,1)}.
func abcCatalog(t *testing.T) *Catalog {
	return mustCatalog(t,
		Entry{ID: "A", CostA: 1, CostB: 10},
		Entry{ID: "B", CostA: 2, CostB: 5},
		Entry{ID: "C", CostA: 3, CostB: 1},
	)
}

// pairCatalog admits exactly seven distinct 2-core workloads under budget
// (4,4) with replacement: e1/e2 with e5/e6 (4 keys) and e3/e4 pairs (3 keys).
func pairCatalog(t *testing.T) *Catalog {
	return mustCatalog(t,
		Entry{ID: "e1", CostA: 1, CostB: 1},
		Entry{ID: "e2", CostA: 1, CostB: 1},
		Entry{ID: "e3", CostA: 2, CostB: 2},
		Entry{ID: "e4", CostA: 2, CostB: 2},
		Entry{ID: "e5", CostA: 3, CostB: 3},
		Entry{ID: "e6", CostA: 3, CostB: 3},
	)
}

func pairSampler(t *testing.T) *Sampler {
	t.Helper()
	s, err := NewSampler(pairCatalog(t), SamplerConfig{TargetSize: 2, Budget: &Budget{CostA: 4, CostB: 4}, Policy: WithReplacement})
	if err != nil {
		t.Fatalf("NewSampler: %v", err)
	}
	return s
}

var pairKeys = []string{"e1-e5", "e1-e6", "e2-e5", "e2-e6", "e3-e3", "e3-e4", "e4-e4"}
