package gen

import (
	"fmt"
	"sort"
	"strings"
)

// ReplacementPolicy decides whether a chosen entry stays eligible for the
// remaining slots of the same workload.
type ReplacementPolicy string

const (
	WithReplacement    ReplacementPolicy = "with"
	WithoutReplacement ReplacementPolicy = "without"
)

var validReplacementPolicies = map[ReplacementPolicy]bool{
	WithReplacement:    true,
	WithoutReplacement: true,
}

// IsValidReplacementPolicy returns true if name is a recognized policy.
func IsValidReplacementPolicy(name string) bool {
	return validReplacementPolicies[ReplacementPolicy(name)]
}

// ValidReplacementPolicyNames returns the recognized policy names, sorted.
func ValidReplacementPolicyNames() []string {
	names := make([]string, 0, len(validReplacementPolicies))
	for p := range validReplacementPolicies {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// ParseReplacementPolicy converts a CLI or profile value into a policy.
func ParseReplacementPolicy(name string) (ReplacementPolicy, error) {
	if !IsValidReplacementPolicy(name) {
		return "", fmt.Errorf("unknown replacement policy %q; valid: %s", name, strings.Join(ValidReplacementPolicyNames(), ", "))
	}
	return ReplacementPolicy(name), nil
}
