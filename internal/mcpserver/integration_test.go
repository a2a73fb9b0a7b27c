package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "strtools-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background — it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Tools, 3, "expected 3 registered tools")

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}

	expectedTools := []string{
		"transform",
		"list_operations",
		"render_table",
	}

	for _, name := range expectedTools {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	// Every tool should have a non-empty description.
	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
}

func TestIntegration_CallTool_Transform(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "transform",
		Arguments: map[string]any{
			"operation": "snakecase",
			"text":      "Hello World",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "transform should succeed on a known operation")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "snakecase", structured["operation"])
	assert.Equal(t, "Hello World", structured["input"])
	assert.Equal(t, "hello_world", structured["output"])
}

func TestIntegration_CallTool_ListOperations(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_operations",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "list_operations should always succeed")

	structured := unmarshalStructured(t, result)
	operations, ok := structured["operations"].([]any)
	require.True(t, ok, "operations should be an array")
	assert.Len(t, operations, 7)

	first, ok := operations[0].(map[string]any)
	require.True(t, ok, "expected operation entry to be map[string]any, got %T", operations[0])
	assert.Equal(t, "camelcase", first["name"])
	assert.NotEmpty(t, first["description"])
}

func TestIntegration_CallTool_RenderTable(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "render_table",
		Arguments: map[string]any{
			"csv": "name,age\nAlice,30\n",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "render_table should succeed on well-formed CSV")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(2), structured["columns"])
	assert.Equal(t, float64(1), structured["rows"])

	table, ok := structured["table"].(string)
	require.True(t, ok, "table should be a string")
	assert.Contains(t, table, "Alice")
	assert.Contains(t, table, "name")
}

func TestIntegration_CallTool_Error_UnknownOperation(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "transform",
		Arguments: map[string]any{
			"operation": "bogus",
			"text":      "Hello",
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "transform should return IsError for an unknown operation")

	// The error content should contain descriptive text.
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.NotEmpty(t, text.Text)
}

func TestIntegration_CallTool_Error_EmptyCSV(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "render_table",
		Arguments: map[string]any{
			"csv": "",
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "render_table should return IsError for empty input")
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
