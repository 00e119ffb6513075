package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhowmick22/Simulator/gen"
)

var (
	splitOpts runOptions

	computePath    string // Compute-bound benchmark IDs
	nonComputePath string // Non-compute benchmark IDs
	computeCount   int    // Slots filled from the compute partition
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Generate unique workloads mixing a fixed number of compute-bound benchmarks with the rest",
	Long: "Fill --compute-count of --cores slots from the --compute ID list and the remaining slots from " +
		"the --non-compute ID list. No cost budgets apply.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := resolveProfile(cmd, &splitOpts); err != nil {
			logrus.Fatalf("Failed to load profile: %v", err)
		}
		sampler, err := buildSplitSampler(computePath, nonComputePath, computeCount, &splitOpts)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		out, err := openOutput(splitOpts.outputPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		_, runErr := executeRun(cmd.Context(), sampler, &splitOpts, out)
		if err := out.Close(); err != nil && runErr == nil {
			runErr = err
		}
		if runErr != nil {
			logrus.Fatalf("Generation failed: %v", runErr)
		}
	},
}

func buildSplitSampler(computeFile, nonComputeFile string, slots int, o *runOptions) (*gen.SplitSampler, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	policy, err := gen.ParseReplacementPolicy(o.replacement)
	if err != nil {
		return nil, err
	}

	var compute, nonCompute *gen.Catalog
	if slots > 0 {
		if compute, err = gen.LoadIDList(computeFile); err != nil {
			return nil, fmt.Errorf("loading compute list: %w", err)
		}
	}
	if slots < o.cores {
		if nonCompute, err = gen.LoadIDList(nonComputeFile); err != nil {
			return nil, fmt.Errorf("loading non-compute list: %w", err)
		}
	}
	logrus.Infof("Split generation: cores=%d compute=%d non-compute=%d policy=%s", o.cores, slots, o.cores-slots, policy)
	return gen.NewSplitSampler(compute, nonCompute, o.cores, slots, policy)
}

func init() {
	registerRunFlags(splitCmd.Flags(), &splitOpts, gen.WithReplacement)
	splitCmd.Flags().StringVar(&computePath, "compute", "", "File of compute-bound benchmark IDs")
	splitCmd.Flags().StringVar(&nonComputePath, "non-compute", "", "File of non-compute benchmark IDs")
	splitCmd.Flags().IntVar(&computeCount, "compute-count", 0, "Number of slots filled with compute-bound benchmarks")

	rootCmd.AddCommand(splitCmd)
}
