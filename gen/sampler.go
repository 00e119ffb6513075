package gen

import (
	"errors"
	"fmt"
)

// ErrInfeasible reports an abandoned construction attempt: some slot had no
// candidate left. The attempt carries no partial result.
var ErrInfeasible = errors.New("infeasible attempt")

// Budget is the aggregate cost a workload may spend in each dimension.
type Budget struct {
	CostA int
	CostB int
}

// Generator produces one candidate workload per call.
type Generator interface {
	Sample(rng Chooser) (Workload, error)
}

// SamplerConfig parameterizes a Sampler. A nil Budget disables cost filtering.
type SamplerConfig struct {
	TargetSize int
	Budget     *Budget
	Policy     ReplacementPolicy
}

// Sampler builds workloads of a fixed size by greedy random picks under the
// remaining budget.
type Sampler struct {
	catalog *Catalog
	cfg     SamplerConfig
}

// NewSampler validates cfg against catalog.
func NewSampler(catalog *Catalog, cfg SamplerConfig) (*Sampler, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	if cfg.TargetSize < 1 {
		return nil, fmt.Errorf("target size must be at least 1, got %d", cfg.TargetSize)
	}
	if !validReplacementPolicies[cfg.Policy] {
		return nil, fmt.Errorf("unknown replacement policy %q", cfg.Policy)
	}
	if cfg.Policy == WithoutReplacement && cfg.TargetSize > catalog.Len() {
		return nil, fmt.Errorf("cannot draw %d distinct benchmarks from a catalog of %d", cfg.TargetSize, catalog.Len())
	}
	if b := cfg.Budget; b != nil && (b.CostA < 0 || b.CostB < 0) {
		return nil, fmt.Errorf("budgets must be non-negative, got costA=%d costB=%d", b.CostA, b.CostB)
	}
	if cfg.Budget != nil {
		b := *cfg.Budget
		cfg.Budget = &b
	}
	return &Sampler{catalog: catalog, cfg: cfg}, nil
}

// Config returns the sampler's configuration.
func (s *Sampler) Config() SamplerConfig { return s.cfg }

// Sample runs one construction attempt. It returns an error wrapping
// ErrInfeasible when a slot has no eligible entry; earlier picks are never
// revisited.
func (s *Sampler) Sample(rng Chooser) (Workload, error) {
	pool := s.catalog.Entries()
	slots := s.cfg.TargetSize
	constrained := s.cfg.Budget != nil
	var remA, remB int
	if constrained {
		remA, remB = s.cfg.Budget.CostA, s.cfg.Budget.CostB
	}

	picks := make([]Entry, 0, slots)
	for slots > 0 {
		candidates := pool
		if constrained {
			// Budgets only shrink, so anything unaffordable now stays that way.
			pool = affordable(pool, remA, remB)
			candidates = pool
			if slots == 1 {
				candidates = saturating(pool, remA, remB)
			}
		}
		if len(candidates) == 0 {
			return Workload{}, fmt.Errorf("%w: no candidate for slot %d of %d (remaining costA=%d costB=%d)",
				ErrInfeasible, len(picks)+1, s.cfg.TargetSize, remA, remB)
		}

		chosen := candidates[rng.Intn(len(candidates))]
		picks = append(picks, chosen)
		slots--
		if constrained {
			remA -= chosen.CostA
			remB -= chosen.CostB
		}
		if s.cfg.Policy == WithoutReplacement {
			pool = without(pool, chosen.ID)
		}
	}
	return Workload{Entries: picks}, nil
}

// affordable filters pool in place to entries that keep both remaining costs
// non-negative.
func affordable(pool []Entry, remA, remB int) []Entry {
	kept := pool[:0]
	for _, e := range pool {
		if e.CostA <= remA && e.CostB <= remB {
			kept = append(kept, e)
		}
	}
	return kept
}

// saturating returns entries that consume at least the remaining budget.
// Applied after affordable, this leaves only exact fits for the last slot.
func saturating(pool []Entry, remA, remB int) []Entry {
	var kept []Entry
	for _, e := range pool {
		if e.CostA >= remA && e.CostB >= remB {
			kept = append(kept, e)
		}
	}
	return kept
}

func without(pool []Entry, id string) []Entry {
	for i, e := range pool {
		if e.ID == id {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}
