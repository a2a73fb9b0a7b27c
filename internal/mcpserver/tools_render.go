package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/strtools/csvtable"
)

type renderTableInput struct {
	CSV string `json:"csv" jsonschema:"CSV text; the first record is the header row and every following record is a data row"`
}

type renderTableOutput struct {
	Table   string `json:"table"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

func handleRenderTable(_ context.Context, _ *mcp.CallToolRequest, input renderTableInput) (*mcp.CallToolResult, renderTableOutput, error) {
	if int64(len(input.CSV)) > cfg.MaxCSVSize {
		return errResult(fmt.Errorf("csv exceeds maximum size of %d bytes", cfg.MaxCSVSize)), renderTableOutput{}, nil
	}

	table, err := csvtable.Parse(strings.NewReader(input.CSV))
	if err != nil {
		return errResult(err), renderTableOutput{}, nil
	}
	if len(table.Rows) > cfg.MaxCSVRows {
		return errResult(fmt.Errorf("csv has %d data rows, exceeding the maximum of %d", len(table.Rows), cfg.MaxCSVRows)), renderTableOutput{}, nil
	}

	return nil, renderTableOutput{
		Table:   table.String(),
		Columns: len(table.Headers),
		Rows:    len(table.Rows),
	}, nil
}
