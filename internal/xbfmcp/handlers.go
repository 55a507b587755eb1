// Copyright (c) 2026 Neomantra Corp

package xbfmcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nimblemarkets/xbf-go"
	"github.com/segmentio/encoding/json"
)

const defaultMaxValues = 100

func (s *Server) describeHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultErrorf("path is required: %s", err), nil
	}

	reader, closer, err := xbf.MakeCompressedReader(path, false)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to open %s: %s", path, err), nil
	}
	defer closer.Close()

	metadata, err := xbf.DeserializeMetadata(reader)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to read metadata: %s", err), nil
	}

	jbytes, err := json.Marshal(xbf.DescribeMetadata(metadata))
	if err != nil {
		return mcp.NewToolResultErrorf("failed to marshal description: %s", err), nil
	}
	s.Logger.Info("xbf_describe", "path", path)
	return mcp.NewToolResultText(string(jbytes)), nil
}

func (s *Server) decodeHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultErrorf("path is required: %s", err), nil
	}
	maxValues := defaultMaxValues
	if n, err := request.RequireFloat("max_values"); err == nil && n > 0 {
		maxValues = int(n)
	}

	reader, closer, err := xbf.MakeCompressedReader(path, false)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to open %s: %s", path, err), nil
	}
	defer closer.Close()

	scanner := xbf.NewStreamScanner(reader)
	metadata, err := scanner.Metadata()
	if err != nil {
		return mcp.NewToolResultErrorf("failed to read metadata: %s", err), nil
	}

	values := make([]any, 0, maxValues)
	for len(values) < maxValues && scanner.Next() {
		j, err := xbf.ValueToJSON(scanner.Value())
		if err != nil {
			return mcp.NewToolResultErrorf("failed to convert value to JSON: %s", err), nil
		}
		values = append(values, j)
	}
	if err := scanner.Err(); err != nil {
		return mcp.NewToolResultErrorf("decode error after %d value(s): %s", len(values), err), nil
	}

	result := map[string]any{
		"metadata": xbf.DescribeMetadata(metadata),
		"values":   values,
	}
	jbytes, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to marshal result: %s", err), nil
	}
	s.Logger.Info("xbf_decode", "path", path, "count", len(values))
	return mcp.NewToolResultText(string(jbytes)), nil
}
