package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhowmick22/Simulator/gen/bucket"
)

var (
	fineDir     string // Directory of per-level workload lists
	coarseDir   string // Directory receiving merged lists
	presetName  string // Built-in level mapping
	mappingPath string // YAML level mapping
)

var coarsenCmd = &cobra.Command{
	Use:   "coarsen",
	Short: "Merge per-level workload lists into Low/Medium/High buckets",
	Long: "Append every <cb>-cb.<pb>-pb file under --fine to the file of its coarse levels under --coarse, " +
		"using a built-in --preset or a YAML --mapping.",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := resolveMapping(presetName, mappingPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		res, err := bucket.Coarsen(fineDir, coarseDir, m)
		if err != nil {
			logrus.Fatalf("Coarsening failed: %v", err)
		}
		logrus.Infof("Appended %d fine buckets (%d bytes), skipped %d missing", res.Appended, res.Bytes, res.Skipped)
	},
}

func resolveMapping(preset, path string) (bucket.Mapping, error) {
	switch {
	case preset != "" && path != "":
		return nil, fmt.Errorf("--preset and --mapping are mutually exclusive")
	case path != "":
		return bucket.LoadMapping(path)
	case preset != "":
		m, ok := bucket.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q; valid: %s", preset, strings.Join(bucket.PresetNames(), ", "))
		}
		return m, nil
	default:
		return nil, fmt.Errorf("one of --preset or --mapping is required")
	}
}

func init() {
	coarsenCmd.Flags().StringVar(&fineDir, "fine", "fine", "Directory of per-level workload lists")
	coarsenCmd.Flags().StringVar(&coarseDir, "coarse", "coarse", "Directory receiving the merged lists")
	coarsenCmd.Flags().StringVar(&presetName, "preset", "", "Built-in level mapping (2-core, 4-core)")
	coarsenCmd.Flags().StringVar(&mappingPath, "mapping", "", "YAML level mapping file")

	rootCmd.AddCommand(coarsenCmd)
}
