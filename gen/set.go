package gen

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// WorkloadSet holds the canonical keys accepted in a run. It only grows and
// is safe for concurrent use.
type WorkloadSet struct {
	keys mapset.Set
}

// NewWorkloadSet creates an empty set.
func NewWorkloadSet() *WorkloadSet {
	return &WorkloadSet{keys: mapset.NewSet()}
}

// TryAdd inserts key and reports whether it was new. A duplicate leaves the
// set unchanged.
func (s *WorkloadSet) TryAdd(key string) bool {
	return s.keys.Add(key)
}

func (s *WorkloadSet) Contains(key string) bool {
	return s.keys.Contains(key)
}

func (s *WorkloadSet) Len() int {
	return s.keys.Cardinality()
}

// Keys returns the accepted keys in lexicographic order.
func (s *WorkloadSet) Keys() []string {
	keys := make([]string, 0, s.keys.Cardinality())
	s.keys.Each(func(k interface{}) bool {
		keys = append(keys, k.(string))
		return false
	})
	sort.Strings(keys)
	return keys
}
