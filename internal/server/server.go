// Package server provides the MCP server wrapper with lifecycle management.
package server

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/raphaelgruber/namesmith/internal/metrics"
)

// Name is the implementation name announced to MCP clients.
const Name = "namesmith"

// Server wraps the MCP server with its logger and metrics.
type Server struct {
	mcp       *mcp.Server
	logger    *slog.Logger
	collector *metrics.Collector
}

// New creates an MCP server. A nil collector disables tool call metrics.
func New(version string, logger *slog.Logger, collector *metrics.Collector) *Server {
	impl := &mcp.Implementation{
		Name:    Name,
		Version: version,
	}

	return &Server{
		mcp:       mcp.NewServer(impl, nil),
		logger:    logger,
		collector: collector,
	}
}

// Run serves on stdio and blocks until disconnect or context cancellation.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server", "transport", "stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for tool registration.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Setup installs the request middleware.
func (s *Server) Setup() {
	s.mcp.AddReceivingMiddleware(LoggingMiddleware(s.logger, s.collector))
}
