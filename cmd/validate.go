package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/config"
	"github.com/papapumpkin/plexus/internal/quality"
	"github.com/papapumpkin/plexus/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dataset-dir]",
	Short: "Check a dataset without analyzing it",
	Long: `Loads the dataset named by plexus.toml in the given directory (default:
the configured data_dir) and runs every quality check against it.
Tolerated anomalies (duplicate edges, self-interactions, missing
compartments) are reported; --strict turns them into failures.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("strict", false, "escalate tolerated anomalies to failures")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetBool("strict"); v {
		cfg.Strict = true
	}
	printer := ui.New()

	dir := datasetDir(cfg, args)
	_, ds, err := loadDataset(dir)
	if err != nil {
		return err
	}
	printer.DatasetLoaded(len(ds.Proteins), len(ds.Compartments), len(ds.Interactions))

	res := quality.DefaultChain(cfg.Strict).Run(ds)
	printer.ValidationResult(res)
	if !res.Passed {
		return fmt.Errorf("dataset failed validation")
	}
	return nil
}
