// Copyright (c) 2026 Neomantra Corp

package xbfmcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcp_server "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the XBF inspection tools on mcpServer.
func (s *Server) RegisterTools(mcpServer *mcp_server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("xbf_describe",
			mcp.WithDescription("Reads an XBF-encoded file's leading metadata and describes its type tree (primitive kinds, vector element types, struct field names and types) without decoding any values."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("path",
				mcp.Required(),
				mcp.Description("Path to an XBF file. A trailing .zst/.zstd suffix is decompressed automatically."),
			),
		),
		s.describeHandler,
	)

	mcpServer.AddTool(
		mcp.NewTool("xbf_decode",
			mcp.WithDescription("Reads an XBF-encoded file and decodes up to max_values of its values as JSON. Wide integers (u64/i64/u128/i128/u256/i256) are rendered as decimal or hex strings to avoid JSON number precision loss."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("path",
				mcp.Required(),
				mcp.Description("Path to an XBF file. A trailing .zst/.zstd suffix is decompressed automatically."),
			),
			mcp.WithNumber("max_values",
				mcp.Description("Maximum number of values to decode (default 100)."),
			),
		),
		s.decodeHandler,
	)
}
