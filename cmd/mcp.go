package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/plexus/internal/config"
	"github.com/papapumpkin/plexus/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve stored runs to MCP clients over stdio",
	Long: `Starts the plexus MCP server on stdin/stdout. The tools answer
read-only queries about runs in the run database: list runs, list a
run's groups, look up a group's members, classify a pair, and page
through candidate pairs.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, err := openStore(cmd.Context(), cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return mcpserver.NewServer(st).Run(cmd.Context())
}
