package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/strtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: strtools mcp\n\n")
		Writef(fs.Output(), "Run the Model Context Protocol server over stdio.\n\n")
		Writef(fs.Output(), "The server exposes the transform, list_operations, and render_table\n")
		Writef(fs.Output(), "tools to MCP clients. It reads JSON-RPC from stdin and writes to\n")
		Writef(fs.Output(), "stdout, so it should only be started by an MCP client.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  STRTOOLS_MAX_TEXT_SIZE  Max text input size in bytes (default 1048576)\n")
		Writef(fs.Output(), "  STRTOOLS_MAX_CSV_SIZE   Max CSV input size in bytes (default 4194304)\n")
		Writef(fs.Output(), "  STRTOOLS_MAX_CSV_ROWS   Max CSV data rows rendered (default 10000)\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  strtools mcp\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
