package gen

import "fmt"

// SplitSampler fills a fixed number of slots from a compute-bound catalog and
// the rest from a disjoint non-compute catalog. No cost filtering applies.
type SplitSampler struct {
	compute    *Sampler
	nonCompute *Sampler
}

// NewSplitSampler builds a SplitSampler taking computeSlots of targetSize
// slots from compute.
func NewSplitSampler(compute, nonCompute *Catalog, targetSize, computeSlots int, policy ReplacementPolicy) (*SplitSampler, error) {
	if targetSize < 1 {
		return nil, fmt.Errorf("target size must be at least 1, got %d", targetSize)
	}
	if computeSlots < 0 || computeSlots > targetSize {
		return nil, fmt.Errorf("compute slots must be in [0, %d], got %d", targetSize, computeSlots)
	}
	if err := checkDisjoint(compute, nonCompute); err != nil {
		return nil, err
	}

	s := &SplitSampler{}
	var err error
	if computeSlots > 0 {
		s.compute, err = NewSampler(compute, SamplerConfig{TargetSize: computeSlots, Policy: policy})
		if err != nil {
			return nil, fmt.Errorf("compute partition: %w", err)
		}
	}
	if rest := targetSize - computeSlots; rest > 0 {
		s.nonCompute, err = NewSampler(nonCompute, SamplerConfig{TargetSize: rest, Policy: policy})
		if err != nil {
			return nil, fmt.Errorf("non-compute partition: %w", err)
		}
	}
	return s, nil
}

func checkDisjoint(a, b *Catalog) error {
	if a == nil || b == nil {
		return nil
	}
	for _, e := range a.entries {
		if _, ok := b.index[e.ID]; ok {
			return fmt.Errorf("benchmark %q appears in both partitions", e.ID)
		}
	}
	return nil
}

// Sample draws the compute partition first, then the non-compute partition.
func (s *SplitSampler) Sample(rng Chooser) (Workload, error) {
	var picks []Entry
	for _, part := range []*Sampler{s.compute, s.nonCompute} {
		if part == nil {
			continue
		}
		w, err := part.Sample(rng)
		if err != nil {
			return Workload{}, err
		}
		picks = append(picks, w.Entries...)
	}
	return Workload{Entries: picks}, nil
}
