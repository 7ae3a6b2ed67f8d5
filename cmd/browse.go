package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/config"
	"github.com/papapumpkin/plexus/internal/store"
	"github.com/papapumpkin/plexus/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [run-id]",
	Short: "Browse a stored run in the interactive viewer",
	Long: `Opens the results browser over a stored run (default: the most recent
one). Use --fresh to analyze the configured dataset and browse the
result without touching the store.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("fresh", "", "analyze this dataset directory and browse the result")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("plexus browse requires a TTY (terminal)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	res, err := resolveBrowseResult(cmd, cfg, args)
	if err != nil {
		return err
	}
	return tui.Run(res)
}

// resolveBrowseResult picks the run to browse: a fresh analysis, the
// run named by the positional argument, or the most recent stored run.
func resolveBrowseResult(cmd *cobra.Command, cfg config.Config, args []string) (*analysis.Result, error) {
	if dir, _ := cmd.Flags().GetString("fresh"); dir != "" {
		_, ds, err := loadDataset(dir)
		if err != nil {
			return nil, err
		}
		return analysis.Run(ds, analysis.Options{
			MaxPairs: cfg.MaxPairs,
			RunID:    analysis.NewRunID(),
		})
	}

	st, err := openStore(cmd.Context(), cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	runID, err := browseRunID(cmd, st, args)
	if err != nil {
		return nil, err
	}
	return st.LoadRun(cmd.Context(), runID)
}

// browseRunID resolves the run id from the argument or falls back to
// the newest stored run.
func browseRunID(cmd *cobra.Command, st *store.Store, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", fmt.Errorf("no stored runs; run 'plexus analyze' first")
	}
	return runs[0].RunID, nil
}
