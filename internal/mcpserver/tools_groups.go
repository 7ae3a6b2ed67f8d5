package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// listGroupsInput is the input schema for the list_groups tool.
type listGroupsInput struct {
	RunID string `json:"run_id,omitempty" jsonschema:"Stored run to query"`
}

// groupEntry is a single connectivity group in the list_groups response.
type groupEntry struct {
	ID      int      `json:"id"`
	Size    int      `json:"size"`
	Members []string `json:"members"`
}

// listGroupsOutput is the output schema for the list_groups tool.
type listGroupsOutput struct {
	RunID  string       `json:"run_id"`
	Groups []groupEntry `json:"groups"`
}

// groupMembersInput is the input schema for the group_members tool.
type groupMembersInput struct {
	RunID   string `json:"run_id" jsonschema:"Stored run to query"`
	GroupID int    `json:"group_id" jsonschema:"Connectivity group id within the run"`
}

// groupMembersOutput is the output schema for the group_members tool.
type groupMembersOutput struct {
	RunID   string   `json:"run_id"`
	GroupID int      `json:"group_id"`
	Size    int      `json:"size"`
	Members []string `json:"members"`
}

// registerGroupTools registers the list_groups and group_members MCP tools.
func (s *Server) registerGroupTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_groups",
		Description: "List the connectivity groups of a stored run",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input listGroupsInput) (*mcp.CallToolResult, listGroupsOutput, error) {
		if input.RunID == "" {
			return nil, listGroupsOutput{}, fmt.Errorf("run_id is required")
		}

		res, err := s.store.LoadRun(ctx, input.RunID)
		if err != nil {
			return nil, listGroupsOutput{}, fmt.Errorf("loading run: %w", err)
		}

		entries := make([]groupEntry, len(res.Groups))
		for i, g := range res.Groups {
			entries[i] = groupEntry{ID: g.ID, Size: len(g.Members), Members: g.Members}
		}

		return nil, listGroupsOutput{RunID: input.RunID, Groups: entries}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "group_members",
		Description: "List the member proteins of one connectivity group",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input groupMembersInput) (*mcp.CallToolResult, groupMembersOutput, error) {
		if input.RunID == "" {
			return nil, groupMembersOutput{}, fmt.Errorf("run_id is required")
		}

		res, err := s.store.LoadRun(ctx, input.RunID)
		if err != nil {
			return nil, groupMembersOutput{}, fmt.Errorf("loading run: %w", err)
		}

		// Group ids are dense, so the id doubles as the slice index.
		if input.GroupID < 0 || input.GroupID >= len(res.Groups) {
			return nil, groupMembersOutput{}, fmt.Errorf("group %d not found in run %q (have %d groups)",
				input.GroupID, input.RunID, len(res.Groups))
		}

		g := res.Groups[input.GroupID]
		return nil, groupMembersOutput{
			RunID:   input.RunID,
			GroupID: g.ID,
			Size:    len(g.Members),
			Members: g.Members,
		}, nil
	})
}
