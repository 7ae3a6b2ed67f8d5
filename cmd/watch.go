package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/config"
	"github.com/papapumpkin/plexus/internal/dataset"
	"github.com/papapumpkin/plexus/internal/quality"
	"github.com/papapumpkin/plexus/internal/telemetry"
	"github.com/papapumpkin/plexus/internal/ui"
	"github.com/papapumpkin/plexus/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dataset-dir]",
	Short: "Re-run the analysis whenever the dataset changes",
	Long: `Watches the dataset's input files and re-runs the full pipeline after
each settled change. Every run is an independent batch over the files
as they stand; nothing is patched incrementally. Stop with ctrl-c.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("strict", false, "escalate tolerated anomalies to validation failures")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetBool("strict"); v {
		cfg.Strict = true
	}
	printer := ui.New()

	dir := datasetDir(cfg, args)
	manifest, err := dataset.LoadManifest(dir)
	if err != nil {
		return err
	}
	files := []string{
		manifest.Dataset.Proteins,
		manifest.Dataset.Compartments,
		manifest.Dataset.Interactions,
	}

	emitter, err := openEmitter(cfg.Telemetry)
	if err != nil {
		return err
	}
	defer emitter.Close()

	w, err := watch.NewWatcher(files...)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printer.WatchStart(len(files))

	// First pass runs immediately; later passes wait for changes.
	if err := watchRun(ctx, cfg, dir, emitter, printer); err != nil {
		printer.Error(err.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			printer.WatchTriggered(change.Path)
			_ = emitter.Emit(telemetry.Event{
				Timestamp: time.Now().UTC(),
				Kind:      telemetry.KindWatchTriggered,
				Data:      map[string]any{"path": change.Path},
			})
			if err := watchRun(ctx, cfg, dir, emitter, printer); err != nil {
				// A broken intermediate save state is expected while
				// files are being edited; report and keep watching.
				printer.Error(err.Error())
			}
		}
	}
}

// watchRun executes one full batch: load, validate, analyze, report,
// save.
func watchRun(ctx context.Context, cfg config.Config, dir string, emitter *telemetry.Emitter, printer *ui.Printer) error {
	_, ds, err := loadDataset(dir)
	if err != nil {
		return err
	}

	qres := quality.DefaultChain(cfg.Strict).Run(ds)
	emitValidation(emitter, qres)
	if !qres.Passed {
		printer.ValidationResult(qres)
		return fmt.Errorf("dataset failed validation")
	}

	res, err := analysis.Run(ds, analysis.Options{
		MaxPairs: cfg.MaxPairs,
		RunID:    analysis.NewRunID(),
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
	}

	st, err := openStore(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.SaveRun(ctx, res, ds.Digest); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	printer.RunSaved(res.RunID, cfg.DBPath)
	return nil
}
