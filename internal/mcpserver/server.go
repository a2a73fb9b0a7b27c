// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes strtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/strtools"
)

const serverInstructions = `strtools MCP server — transforms text between casing conventions and renders CSV tables.

Configuration: All limits are configurable via STRTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- STRTOOLS_MAX_TEXT_SIZE (default: 1048576) — max text input size in bytes for transform
- STRTOOLS_MAX_CSV_SIZE (default: 4194304) — max CSV input size in bytes for render_table
- STRTOOLS_MAX_CSV_ROWS (default: 10000) — max CSV data rows rendered by render_table

Operations: camelcase, csv, lowercase, nospaces, slugify, snakecase, uppercase. Use list_operations for the names with descriptions. The transform tool applies every operation except csv, which is served by render_table.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "strtools", Version: strtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform",
		Description: "Apply a named text transform to a line of text. Operations: camelcase, lowercase, nospaces, slugify, snakecase, uppercase (names are case-insensitive; no-spaces is accepted for nospaces). Returns the operation, input, and output. CSV input is not transformed here; use render_table. Max input size is configurable via STRTOOLS_MAX_TEXT_SIZE.",
	}, handleTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List every operation the transform and render_table tools accept, in a fixed order, with a one-line description of each. Takes no arguments.",
	}, handleListOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_table",
		Description: "Parse CSV text and render it as an aligned table. The first record is the header row and every following record is a data row. Returns the rendered table plus column and row counts. Max input size and row count are configurable via STRTOOLS_MAX_CSV_SIZE and STRTOOLS_MAX_CSV_ROWS.",
	}, handleRenderTable)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
