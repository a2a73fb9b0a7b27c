package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableTool(t *testing.T) {
	input := renderTableInput{CSV: "name,age\nAlice,30\nBob,25\n"}
	result, output, err := handleRenderTable(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, 2, output.Columns)
	assert.Equal(t, 2, output.Rows)
	assert.True(t, strings.HasPrefix(output.Table, "+"), "table should open with a border row")
	for _, cell := range []string{"name", "age", "Alice", "Bob"} {
		assert.Contains(t, output.Table, cell)
	}
}

func TestRenderTableTool_NoHeaders(t *testing.T) {
	input := renderTableInput{CSV: ""}
	result, output, err := handleRenderTable(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Table)

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.Equal(t, "CSV has no headers", text.Text)
}

func TestRenderTableTool_NoRows(t *testing.T) {
	input := renderTableInput{CSV: "name,age\n"}
	result, output, err := handleRenderTable(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Table)

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.Equal(t, "CSV has no data rows", text.Text)
}

func TestRenderTableTool_Malformed(t *testing.T) {
	input := renderTableInput{CSV: "name,age\nAlice,\"30\nBob"}
	result, output, err := handleRenderTable(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Table)
}

func TestRenderTableTool_CSVTooLarge(t *testing.T) {
	old := cfg
	cfg = &serverConfig{MaxTextSize: old.MaxTextSize, MaxCSVSize: 8, MaxCSVRows: old.MaxCSVRows}
	defer func() { cfg = old }()

	input := renderTableInput{CSV: "name,age\nAlice,30\n"}
	result, output, err := handleRenderTable(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Table)
}

func TestRenderTableTool_TooManyRows(t *testing.T) {
	old := cfg
	cfg = &serverConfig{MaxTextSize: old.MaxTextSize, MaxCSVSize: old.MaxCSVSize, MaxCSVRows: 1}
	defer func() { cfg = old }()

	input := renderTableInput{CSV: "name,age\nAlice,30\nBob,25\n"}
	result, output, err := handleRenderTable(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Table)

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.Contains(t, text.Text, "exceeding the maximum")
}
