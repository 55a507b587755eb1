// Copyright (c) 2026 Neomantra Corp

// Package xbfmcp exposes XBF decoding as Model Context Protocol tools,
// so an LLM client can describe and decode a captured XBF file without
// a custom integration. Grounded on the teacher's internal/mcp_data and
// internal/mcp_meta packages: a small Server struct carrying shared
// state, a RegisterTools method adding tools via mark3labs/mcp-go, and
// one handler method per tool.
package xbfmcp

import (
	"log/slog"
)

// Server holds state shared by the XBF MCP tool handlers.
type Server struct {
	Logger *slog.Logger
}

// NewServer returns a Server, defaulting Logger to slog.Default() when
// logger is nil.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{Logger: logger}
}
