package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/config"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List runs stored in the run database",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a stored run and its tables",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsCmd.AddCommand(runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := openStore(cmd.Context(), cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCREATED\tPROTEINS\tEDGES\tGROUPS\tCANDIDATES\tDIGEST")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.RunID,
			r.CreatedAt.Format(time.RFC3339),
			r.Stats.Proteins,
			r.Stats.UniqueEdges,
			r.Stats.Groups,
			r.Stats.CrossGroup,
			shortDigest(r.Digest),
		)
	}
	return w.Flush()
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := openStore(cmd.Context(), cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteRun(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted run %s\n", args[0])
	return nil
}

// shortDigest trims a "sha256:<hex>" digest for table display.
func shortDigest(d string) string {
	const short = 19 // "sha256:" + 12 hex chars
	if len(d) <= short {
		return d
	}
	return d[:short]
}
