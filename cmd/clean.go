package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/dataset"
	"github.com/papapumpkin/plexus/internal/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <csv-file>",
	Short: "Repair a structurally damaged sequences CSV",
	Long: `Repairs rows whose field count deviates from the header's. A row with
exactly one extra field collapses its first empty field; rows that
still don't fit are dropped. Content is never guessed. Use --diagnose
to report damage without writing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringP("output", "o", "", "repaired file path (default <file>.clean.csv)")
	cleanCmd.Flags().Bool("diagnose", false, "report damaged rows without repairing")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	path := args[0]
	printer := ui.New()

	if diag, _ := cmd.Flags().GetBool("diagnose"); diag {
		anomalies, err := dataset.Diagnose(path)
		if err != nil {
			return err
		}
		if len(anomalies) == 0 {
			printer.Info("no structural damage found")
			return nil
		}
		for _, a := range anomalies {
			fmt.Fprintf(cmd.OutOrStdout(), "row %d: %d field(s), want %d\n", a.Row, a.Fields, a.Want)
		}
		return fmt.Errorf("%d damaged row(s)", len(anomalies))
	}

	res, err := dataset.Repair(path)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = strings.TrimSuffix(path, ".csv") + ".clean.csv"
	}
	if err := res.Write(out); err != nil {
		return err
	}

	printer.RepairSummary(len(res.Fixed), len(res.Dropped), len(res.Rows))
	printer.ReportWritten(out)
	return nil
}
