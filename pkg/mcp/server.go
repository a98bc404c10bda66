// Package mcp exposes the generator over the Model Context Protocol so
// coding agents can turn design nodes into components without shelling
// out to the CLI.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/itsklimov/figma-rn-sub004/pkg/config"
	"github.com/itsklimov/figma-rn-sub004/pkg/figma"
	"github.com/itsklimov/figma-rn-sub004/pkg/mcplog"
	"github.com/itsklimov/figma-rn-sub004/pkg/tokens"
	"github.com/itsklimov/figma-rn-sub004/pkg/validator"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server, exposing generation and token
// inspection tools.
type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
	client    *figma.Client
	project   *tokens.ProjectTokens
	validator *validator.Validator // may be nil if no parser available
	logger    *mcplog.Logger       // may be nil (tool-call logging disabled)
	log       *slog.Logger
}

// NewServer creates an MCP server over a loaded config, a Figma client
// and the project's discovered tokens.
func NewServer(cfg *config.Config, client *figma.Client, project *tokens.ProjectTokens, v *validator.Validator, logger *mcplog.Logger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg:       cfg,
		client:    client,
		project:   project,
		validator: v,
		logger:    logger,
		log:       log,
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("figmagen", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: generateComponentTool(), Handler: s.handleGenerateComponent},
		server.ServerTool{Tool: previewIRTool(), Handler: s.handlePreviewIR},
		server.ServerTool{Tool: listProjectTokensTool(), Handler: s.handleListProjectTokens},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
