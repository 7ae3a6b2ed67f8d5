package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/config"
	"github.com/papapumpkin/plexus/internal/dataset"
	"github.com/papapumpkin/plexus/internal/quality"
	"github.com/papapumpkin/plexus/internal/report"
	"github.com/papapumpkin/plexus/internal/store"
	"github.com/papapumpkin/plexus/internal/telemetry"
	"github.com/papapumpkin/plexus/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dataset-dir]",
	Short: "Run the full analysis pipeline over a dataset",
	Long: `Loads the dataset named by plexus.toml in the given directory (default:
the configured data_dir), validates it, builds connectivity groups, and
classifies the pair universe. Reports land in the output directory and
the run is saved to the run database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("output", "", "report output directory (overrides config)")
	analyzeCmd.Flags().String("format", "", "report format: csv, json, or both")
	analyzeCmd.Flags().Int("max-pairs", 0, "override the pair universe cap")
	analyzeCmd.Flags().Bool("strict", false, "escalate tolerated anomalies to validation failures")
	analyzeCmd.Flags().Bool("no-validate", false, "skip the dataset quality gate")
	analyzeCmd.Flags().Bool("no-save", false, "do not save the run to the database")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyAnalyzeFlags(cmd, &cfg)
	printer := ui.New()

	dir := datasetDir(cfg, args)
	manifest, ds, err := loadDataset(dir)
	if err != nil {
		return err
	}
	applyManifestOptions(cmd, &cfg, manifest)
	printer.DatasetLoaded(len(ds.Proteins), len(ds.Compartments), len(ds.Interactions))

	emitter, err := openEmitter(cfg.Telemetry)
	if err != nil {
		return err
	}
	defer emitter.Close()

	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindDatasetLoaded,
		Data: map[string]any{
			"dir":          dir,
			"digest":       ds.Digest,
			"proteins":     len(ds.Proteins),
			"compartments": len(ds.Compartments),
			"edges":        len(ds.Interactions),
		},
	})

	if noValidate, _ := cmd.Flags().GetBool("no-validate"); !noValidate {
		qres := quality.DefaultChain(cfg.Strict).Run(ds)
		emitValidation(emitter, qres)
		if !qres.Passed {
			printer.ValidationResult(qres)
			return fmt.Errorf("dataset failed validation")
		}
	}

	runID := analysis.NewRunID()
	printer.RunStart(runID)

	res, err := analysis.Run(ds, analysis.Options{
		MaxPairs: cfg.MaxPairs,
		RunID:    runID,
		Emitter:  emitter,
	})
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	printer.AnalysisDone(res.Stats)

	written, err := writeReports(cfg, res)
	if err != nil {
		return err
	}
	for _, path := range written {
		printer.ReportWritten(path)
		_ = emitter.Emit(telemetry.Event{
			Timestamp: time.Now().UTC(),
			Kind:      telemetry.KindReportWritten,
			RunID:     runID,
			Data:      map[string]any{"path": path},
		})
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		st, err := openStore(cmd.Context(), cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SaveRun(cmd.Context(), res, ds.Digest); err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
		printer.RunSaved(runID, cfg.DBPath)
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Summary(res))
	return nil
}

// applyAnalyzeFlags applies CLI flag values to the loaded config.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Format = v
	}
	if v, _ := cmd.Flags().GetInt("max-pairs"); v > 0 {
		cfg.MaxPairs = v
	}
	if v, _ := cmd.Flags().GetBool("strict"); v {
		cfg.Strict = true
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

// applyManifestOptions applies per-dataset options from plexus.toml.
// Explicit CLI flags win over the manifest.
func applyManifestOptions(cmd *cobra.Command, cfg *config.Config, m dataset.Manifest) {
	if m.Options.MaxPairs > 0 && !cmd.Flags().Changed("max-pairs") {
		cfg.MaxPairs = m.Options.MaxPairs
	}
	if m.Options.Strict && !cmd.Flags().Changed("strict") {
		cfg.Strict = true
	}
}

// datasetDir resolves the dataset directory from the positional
// argument or the configured data_dir.
func datasetDir(cfg config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.DataDir
}

// loadDataset reads plexus.toml in dir and the input files it names.
func loadDataset(dir string) (dataset.Manifest, *dataset.Dataset, error) {
	manifest, err := dataset.LoadManifest(dir)
	if err != nil {
		return dataset.Manifest{}, nil, err
	}
	ds, err := dataset.Load(manifest.Dataset)
	if err != nil {
		return dataset.Manifest{}, nil, fmt.Errorf("loading dataset in %s: %w", dir, err)
	}
	return manifest, ds, nil
}

// openEmitter ensures the telemetry directory exists and opens the
// JSONL emitter. An empty path disables telemetry.
func openEmitter(path string) (*telemetry.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	return telemetry.NewEmitter(path)
}

// emitValidation records a validation outcome on the event stream.
func emitValidation(emitter *telemetry.Emitter, res *quality.Result) {
	data := map[string]any{"passed": res.Passed, "checks": len(res.Checks)}
	if f := res.FirstFailure(); f != nil {
		data["failed_check"] = f.Name
	}
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindValidationResult,
		Data:      data,
	})
}

// openStore ensures the database directory exists and opens the run
// store.
func openStore(ctx context.Context, dbPath string) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	return store.Open(ctx, dbPath)
}

// Report file names within the output directory.
const (
	candidatesCSV  = "candidates.csv"
	candidatesJSON = "candidates.json"
	unobservedCSV  = "unobserved.csv"
	unobservedJSON = "unobserved.json"
	groupsCSV      = "groups.csv"
)

// writeReports writes the classified subsets and the group listing in
// the configured format and returns the paths written.
func writeReports(cfg config.Config, res *analysis.Result) ([]string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	csvOut := cfg.Format == "csv" || cfg.Format == "both"
	jsonOut := cfg.Format == "json" || cfg.Format == "both"
	if !csvOut && !jsonOut {
		return nil, fmt.Errorf("unknown report format %q (want csv, json, or both)", cfg.Format)
	}

	var written []string
	write := func(name string, fn func(string) error) error {
		path := filepath.Join(cfg.OutputDir, name)
		if err := fn(path); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	if csvOut {
		if err := write(candidatesCSV, func(p string) error { return report.WritePairsCSV(p, res.CrossGroup) }); err != nil {
			return nil, err
		}
		if err := write(unobservedCSV, func(p string) error { return report.WritePairsCSV(p, res.Unobserved) }); err != nil {
			return nil, err
		}
		if err := write(groupsCSV, func(p string) error { return report.WriteGroupsCSV(p, res.Groups) }); err != nil {
			return nil, err
		}
	}
	if jsonOut {
		if err := write(candidatesJSON, func(p string) error { return report.WritePairsJSON(p, res.CrossGroup) }); err != nil {
			return nil, err
		}
		if err := write(unobservedJSON, func(p string) error { return report.WritePairsJSON(p, res.Unobserved) }); err != nil {
			return nil, err
		}
	}
	return written, nil
}
