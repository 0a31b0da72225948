// ABOUTME: MCP server setup for the glucolog record store.
// ABOUTME: Wraps the MCP server with repository access and report output config.
package mcp

import (
	"context"

	"github.com/harperreed/glucolog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	reportDir string
}

// NewServer creates a new MCP server with the given storage. Generated
// reports are written under reportDir.
func NewServer(repo storage.Repository, reportDir string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "glucolog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		reportDir: reportDir,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
