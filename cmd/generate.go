package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhowmick22/Simulator/gen"
)

var (
	generateOpts runOptions

	catalogPath string // Catalog file
	idList      bool   // Catalog holds bare IDs, no costs
	budgetA     int    // Total budget in the first cost dimension
	budgetB     int    // Total budget in the second cost dimension
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate unique workloads whose summed costs fit the given budgets",
	Long: "Pick --cores benchmarks per workload from --catalog. With --budget-a/--budget-b the picks must " +
		"spend the budgets without exceeding them; without budgets every combination is eligible. " +
		"One sorted, '-'-joined workload is written per line.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := resolveProfile(cmd, &generateOpts); err != nil {
			logrus.Fatalf("Failed to load profile: %v", err)
		}
		sampler, err := buildGenerateSampler(catalogPath, idList, budgetFromFlags(cmd.Flags(), budgetA, budgetB), &generateOpts)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		out, err := openOutput(generateOpts.outputPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		_, runErr := executeRun(cmd.Context(), sampler, &generateOpts, out)
		if err := out.Close(); err != nil && runErr == nil {
			runErr = err
		}
		if runErr != nil {
			logrus.Fatalf("Generation failed: %v", runErr)
		}
	},
}

// budgetFromFlags returns nil unless a budget flag was set. A dimension left
// unset gets budget 0, which only zero-cost entries satisfy.
func budgetFromFlags(flags *pflag.FlagSet, costA, costB int) *gen.Budget {
	if !flags.Changed("budget-a") && !flags.Changed("budget-b") {
		return nil
	}
	return &gen.Budget{CostA: costA, CostB: costB}
}

func buildGenerateSampler(path string, ids bool, budget *gen.Budget, o *runOptions) (*gen.Sampler, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("--catalog is required")
	}
	policy, err := gen.ParseReplacementPolicy(o.replacement)
	if err != nil {
		return nil, err
	}

	load := gen.LoadCatalog
	if ids {
		load = gen.LoadIDList
	}
	catalog, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	if budget != nil {
		logrus.Infof("Loaded %d benchmarks from %s; cores=%d budgetA=%d budgetB=%d policy=%s",
			catalog.Len(), path, o.cores, budget.CostA, budget.CostB, policy)
	} else {
		logrus.Infof("Loaded %d benchmarks from %s; cores=%d unconstrained policy=%s",
			catalog.Len(), path, o.cores, policy)
	}
	return gen.NewSampler(catalog, gen.SamplerConfig{TargetSize: o.cores, Budget: budget, Policy: policy})
}

func init() {
	registerRunFlags(generateCmd.Flags(), &generateOpts, gen.WithoutReplacement)
	generateCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file with one '<id> <costA> <costB>' record per line")
	generateCmd.Flags().BoolVar(&idList, "id-list", false, "Catalog contains whitespace-separated IDs only (unconstrained generation)")
	generateCmd.Flags().IntVar(&budgetA, "budget-a", 0, "Total budget in the first cost dimension")
	generateCmd.Flags().IntVar(&budgetB, "budget-b", 0, "Total budget in the second cost dimension")

	rootCmd.AddCommand(generateCmd)
}
