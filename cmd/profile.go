package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Profile is a reusable generation setup stored as YAML. Every key mirrors
// the CLI flag of the same name; flags given explicitly win.
type Profile struct {
	Catalog      *string `yaml:"catalog"`
	IDList       *bool   `yaml:"id_list"`
	Compute      *string `yaml:"compute"`
	NonCompute   *string `yaml:"non_compute"`
	ComputeCount *int    `yaml:"compute_count"`
	Cores        *int    `yaml:"cores"`
	BudgetA      *int    `yaml:"budget_a"`
	BudgetB      *int    `yaml:"budget_b"`
	Count        *int    `yaml:"count"`
	Replacement  *string `yaml:"replacement"`
	Seed         *int64  `yaml:"seed"`
	MaxAttempts  *int    `yaml:"max_attempts"`
	Workers      *int    `yaml:"workers"`
	Trace        *string `yaml:"trace"`
}

// loadProfile parses a profile with strict field checking: typos must cause errors.
func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &p, nil
}

// flagValues returns the profile's settings keyed by flag name.
func (p *Profile) flagValues() map[string]string {
	vals := make(map[string]string)
	str := func(flag string, v *string) {
		if v != nil {
			vals[flag] = *v
		}
	}
	num := func(flag string, v *int) {
		if v != nil {
			vals[flag] = strconv.Itoa(*v)
		}
	}
	str("catalog", p.Catalog)
	if p.IDList != nil {
		vals["id-list"] = strconv.FormatBool(*p.IDList)
	}
	str("compute", p.Compute)
	str("non-compute", p.NonCompute)
	num("compute-count", p.ComputeCount)
	num("cores", p.Cores)
	num("budget-a", p.BudgetA)
	num("budget-b", p.BudgetB)
	num("count", p.Count)
	str("replacement", p.Replacement)
	if p.Seed != nil {
		vals["seed"] = strconv.FormatInt(*p.Seed, 10)
	}
	num("max-attempts", p.MaxAttempts)
	num("workers", p.Workers)
	str("trace", p.Trace)
	return vals
}

// applyProfile copies profile settings into flags the user did not set.
// Applied flags count as Changed afterwards, so optional budgets taken from
// a profile are detected the same way as budgets given on the command line.
func applyProfile(flags *pflag.FlagSet, p *Profile) error {
	vals := p.flagValues()
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if flags.Lookup(name) == nil {
			return fmt.Errorf("profile setting %q does not apply to this command", name)
		}
		if flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, vals[name]); err != nil {
			return fmt.Errorf("profile setting %q: %w", name, err)
		}
	}
	return nil
}
