package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// listRunsInput is the input schema for the list_runs tool.
type listRunsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of runs to return (default: all)"`
}

// runEntry is a single run in the list_runs response.
type runEntry struct {
	RunID         string `json:"run_id"`
	CreatedAt     string `json:"created_at"`
	DatasetDigest string `json:"dataset_digest"`
	Proteins      int    `json:"proteins"`
	Groups        int    `json:"groups"`
	UniversePairs int    `json:"universe_pairs"`
	Unobserved    int    `json:"unobserved"`
	CrossGroup    int    `json:"cross_group"`
}

// listRunsOutput is the output schema for the list_runs tool.
type listRunsOutput struct {
	Runs []runEntry `json:"runs"`
}

// registerRunTools registers the list_runs MCP tool.
func (s *Server) registerRunTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_runs",
		Description: "List stored analysis runs, newest first",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input listRunsInput) (*mcp.CallToolResult, listRunsOutput, error) {
		if input.Limit < 0 {
			return nil, listRunsOutput{}, fmt.Errorf("limit must be non-negative")
		}

		infos, err := s.store.ListRuns(ctx)
		if err != nil {
			return nil, listRunsOutput{}, fmt.Errorf("listing runs: %w", err)
		}
		if input.Limit > 0 && len(infos) > input.Limit {
			infos = infos[:input.Limit]
		}

		entries := make([]runEntry, len(infos))
		for i, info := range infos {
			entries[i] = runEntry{
				RunID:         info.RunID,
				CreatedAt:     info.CreatedAt.Format(time.RFC3339),
				DatasetDigest: info.Digest,
				Proteins:      info.Stats.Proteins,
				Groups:        info.Stats.Groups,
				UniversePairs: info.Stats.UniversePairs,
				Unobserved:    info.Stats.Unobserved,
				CrossGroup:    info.Stats.CrossGroup,
			}
		}

		return nil, listRunsOutput{Runs: entries}, nil
	})
}
