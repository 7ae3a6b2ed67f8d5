package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/config"
	"github.com/papapumpkin/plexus/internal/network"
	"github.com/papapumpkin/plexus/internal/protein"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [dataset-dir]",
	Short: "Print the connectivity groups of a dataset or a stored run",
	Long: `Discovers connectivity groups from a dataset's interactions and prints
one group per line, members in numeric order. With --run, prints the
groups of a stored run instead of rebuilding them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().String("run", "", "print groups of this stored run id")
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	groups, err := resolveGroups(cmd, cfg, args)
	if err != nil {
		return err
	}

	for _, g := range groups {
		fmt.Fprintf(cmd.OutOrStdout(), "group %d (%d): %s\n",
			g.ID, len(g.Members), strings.Join(g.Members, " "))
	}
	return nil
}

// resolveGroups loads groups from the store when --run is given,
// otherwise rebuilds them from the dataset's interactions.
func resolveGroups(cmd *cobra.Command, cfg config.Config, args []string) ([]network.Group, error) {
	if runID, _ := cmd.Flags().GetString("run"); runID != "" {
		st, err := openStore(cmd.Context(), cfg.DBPath)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		res, err := st.LoadRun(cmd.Context(), runID)
		if err != nil {
			return nil, err
		}
		return res.Groups, nil
	}

	_, ds, err := loadDataset(datasetDir(cfg, args))
	if err != nil {
		return nil, err
	}
	edges := make([]protein.Pair, 0, len(ds.Interactions))
	for _, e := range ds.Interactions {
		p, err := protein.Canonicalize(e.A, e.B)
		if err != nil {
			return nil, err
		}
		edges = append(edges, p)
	}
	groups, _, err := network.ComputeGroups(network.FromEdges(edges))
	return groups, err
}
