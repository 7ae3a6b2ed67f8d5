// Package mcpserver exposes stored analysis runs to MCP clients as a
// set of read-only query tools served over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papapumpkin/plexus/internal/store"
)

// Version is the plexus MCP server version, matching the module.
const Version = "0.1.0"

// Server is the plexus MCP query server. Its tools answer questions
// about runs persisted in the store; none of them mutates anything.
type Server struct {
	store *store.Store
	mcp   *mcp.Server
}

// NewServer creates an MCP server with all query tools registered.
func NewServer(st *store.Store) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "plexus",
			Version: Version,
		},
		nil,
	)

	s := &Server{store: st, mcp: mcpServer}
	s.registerTools()
	return s
}

// registerTools registers the query tools with the MCP server.
func (s *Server) registerTools() {
	s.registerRunTools()
	s.registerGroupTools()
	s.registerPairTools()
}

// Run serves the tools over stdio until the client disconnects or the
// context is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
