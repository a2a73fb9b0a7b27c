package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/strtools/operation"
)

type listOperationsInput struct{}

type operationInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type listOperationsOutput struct {
	Operations []operationInfo `json:"operations"`
}

func handleListOperations(_ context.Context, _ *mcp.CallToolRequest, _ listOperationsInput) (*mcp.CallToolResult, listOperationsOutput, error) {
	kinds := operation.Kinds()
	ops := make([]operationInfo, 0, len(kinds))
	for _, k := range kinds {
		ops = append(ops, operationInfo{Name: k.String(), Description: k.Describe()})
	}
	return nil, listOperationsOutput{Operations: ops}, nil
}
