package gen

import (
	"sort"
	"strings"
)

// Delimiter joins IDs in a canonical key.
const Delimiter = "-"

// Workload is a finalized sequence of picks, in pick order.
type Workload struct {
	Entries []Entry
}

// IDs returns the picked IDs in pick order.
func (w Workload) IDs() []string {
	ids := make([]string, len(w.Entries))
	for i, e := range w.Entries {
		ids[i] = e.ID
	}
	return ids
}

// Key returns the canonical key of w.
func (w Workload) Key() string {
	return Canonicalize(w.IDs())
}

// TotalCost returns the summed cost of all picks in each dimension.
func (w Workload) TotalCost() (costA, costB int) {
	for _, e := range w.Entries {
		costA += e.CostA
		costB += e.CostB
	}
	return costA, costB
}

// Canonicalize sorts a copy of ids and joins them with Delimiter, so any
// permutation of the same multiset yields the same key.
func Canonicalize(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, Delimiter)
}

// SplitKey returns the IDs of a canonical key.
func SplitKey(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, Delimiter)
}
