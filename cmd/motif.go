package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/config"
	"github.com/papapumpkin/plexus/internal/dataset"
	"github.com/papapumpkin/plexus/internal/motif"
	"github.com/papapumpkin/plexus/internal/ui"
)

var motifCmd = &cobra.Command{
	Use:   "motif <expression> [dataset-dir]",
	Short: "Search protein sequences for a PROSITE-style motif",
	Long: `Searches the dataset's sequences for a motif such as "T-[AV]-T-x-T":
single residues, alternative sets in brackets, and x wildcards.
Overlapping occurrences all count. The regex and enumeration engines
return identical hits; pick one with --engine or cross-check with
--engine both.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMotif,
}

func init() {
	motifCmd.Flags().String("engine", "", "search engine: regex, enum, or both (overrides config)")
	motifCmd.Flags().String("sequences", "", "sequences CSV (overrides the manifest)")
	motifCmd.Flags().Int("max-words", 0, "enumeration engine expansion cap (overrides config)")
	rootCmd.AddCommand(motifCmd)
}

func runMotif(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("engine"); v != "" {
		cfg.Motif.Engine = v
	}
	if v, _ := cmd.Flags().GetInt("max-words"); v > 0 {
		cfg.Motif.MaxWords = v
	}
	printer := ui.New()

	m, err := motif.Parse(args[0])
	if err != nil {
		return err
	}

	seqPath, err := sequencesPath(cmd, cfg, args)
	if err != nil {
		return err
	}
	seqs, err := dataset.ReadSequences(seqPath)
	if err != nil {
		return err
	}

	matches, err := searchMotif(m, seqs, cfg.Motif)
	if err != nil {
		return err
	}

	hits := 0
	for _, match := range matches {
		hits += len(match.Positions)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", match.ID, match.Positions)
	}
	printer.MotifHits(m.Raw, len(matches), hits)
	return nil
}

// sequencesPath resolves the sequences CSV from the --sequences flag
// or the dataset manifest.
func sequencesPath(cmd *cobra.Command, cfg config.Config, args []string) (string, error) {
	if v, _ := cmd.Flags().GetString("sequences"); v != "" {
		return v, nil
	}
	dir := cfg.DataDir
	if len(args) > 1 {
		dir = args[1]
	}
	manifest, err := dataset.LoadManifest(dir)
	if err != nil {
		return "", err
	}
	if manifest.Dataset.Sequences == "" {
		return "", fmt.Errorf("dataset in %s names no sequences file; pass --sequences", dir)
	}
	return manifest.Dataset.Sequences, nil
}

// searchMotif runs the configured engine. With "both", the two engines
// cross-check each other and disagreement is an error.
func searchMotif(m motif.Motif, seqs []dataset.Sequence, cfg config.MotifConfig) ([]motif.Match, error) {
	switch cfg.Engine {
	case "regex", "":
		eng, err := motif.NewRegexEngine(m)
		if err != nil {
			return nil, err
		}
		return eng.Search(seqs), nil

	case "enum":
		eng, err := motif.NewEnumEngine(m, cfg.MaxWords)
		if err != nil {
			return nil, err
		}
		return eng.Search(seqs), nil

	case "both":
		re, err := motif.NewRegexEngine(m)
		if err != nil {
			return nil, err
		}
		en, err := motif.NewEnumEngine(m, cfg.MaxWords)
		if err != nil {
			return nil, err
		}
		got, want := en.Search(seqs), re.Search(seqs)
		if !matchesEqual(got, want) {
			return nil, fmt.Errorf("engines disagree on %q; please report this", m.Raw)
		}
		return want, nil

	default:
		return nil, fmt.Errorf("unknown motif engine %q (want regex, enum, or both)", cfg.Engine)
	}
}

func matchesEqual(a, b []motif.Match) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || len(a[i].Positions) != len(b[i].Positions) {
			return false
		}
		for j := range a[i].Positions {
			if a[i].Positions[j] != b[i].Positions[j] {
				return false
			}
		}
	}
	return true
}
