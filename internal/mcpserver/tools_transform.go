package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/strtools/operation"
	"github.com/erraggy/strtools/transformer"
)

type transformInput struct {
	Operation string `json:"operation" jsonschema:"Operation name: camelcase\\, lowercase\\, nospaces\\, slugify\\, snakecase\\, or uppercase (case-insensitive)"`
	Text      string `json:"text"      jsonschema:"The text to transform"`
}

type transformOutput struct {
	Operation string `json:"operation"`
	Input     string `json:"input"`
	Output    string `json:"output"`
}

func handleTransform(_ context.Context, _ *mcp.CallToolRequest, input transformInput) (*mcp.CallToolResult, transformOutput, error) {
	if int64(len(input.Text)) > cfg.MaxTextSize {
		return errResult(fmt.Errorf("text exceeds maximum size of %d bytes", cfg.MaxTextSize)), transformOutput{}, nil
	}

	kind, err := operation.Parse(input.Operation)
	if err != nil {
		return errResult(fmt.Errorf("%w; valid operations: %s", err, strings.Join(transformableNames(), ", "))), transformOutput{}, nil
	}
	if kind == operation.CSV {
		return errResult(fmt.Errorf("the csv operation is served by the render_table tool")), transformOutput{}, nil
	}

	return nil, transformOutput{
		Operation: kind.String(),
		Input:     input.Text,
		Output:    transformer.Apply(kind, input.Text),
	}, nil
}

// transformableNames lists the operations the transform tool accepts,
// which is every operation except csv.
func transformableNames() []string {
	kinds := operation.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if k == operation.CSV {
			continue
		}
		names = append(names, k.String())
	}
	return names
}
