// Package strtools provides string case-conversion and formatting tools.
//
// strtools offers a small set of composable packages for resolving named
// text operations, applying case/formatting transforms, and rendering
// CSV input as aligned tables.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - operation: Resolve user-supplied operation names to transformation kinds
//   - transformer: Apply case and formatting transforms to text
//   - csvtable: Parse CSV input and render it as an aligned table
//
// Seven operations are supported:
//
//   - camelcase: "hello world" -> "helloWorld"
//   - csv: render comma-separated input as an aligned table
//   - lowercase: "Hello World" -> "hello world"
//   - nospaces: "hello world" -> "helloworld"
//   - slugify: "Hello, World!" -> "hello-world"
//   - snakecase: "hello world" -> "hello_world"
//   - uppercase: "hello world" -> "HELLO WORLD"
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/strtools
//
// # Quick Start
//
// Resolve an operation name and apply it:
//
//	import (
//	    "github.com/erraggy/strtools/operation"
//	    "github.com/erraggy/strtools/transformer"
//	)
//
//	kind, err := operation.Parse("SnakeCase")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := transformer.Apply(kind, "Hello World")
//	fmt.Println(out) // hello_world
//
// Render CSV input as a table:
//
//	import "github.com/erraggy/strtools/csvtable"
//
//	table, err := csvtable.Parse(strings.NewReader(data))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table.Render(os.Stdout)
//
// # Operation Package
//
// The operation package defines the closed set of operation kinds and
// resolves user-supplied names to them. Matching is case-insensitive and
// ignores surrounding whitespace; unrecognized names fail with an
// *operation.UnknownOperationError that callers can detect via
// errors.Is(err, operation.ErrUnknownOperation).
//
// Example:
//
//	for _, kind := range operation.Kinds() {
//	    fmt.Printf("%s: %s\n", kind, kind.Describe())
//	}
//
// # Transformer Package
//
// The transformer package implements the transforms themselves. All
// transforms are pure functions: they never fail, and the same input
// always produces the same output. SnakeCase and CamelCase share a single
// word-splitting policy that treats whitespace and punctuation runs,
// lower-to-upper transitions, and letter/digit boundaries as word breaks:
//
//	transformer.SnakeCase("HTTPServer")  // "http_server"
//	transformer.CamelCase("user 2 name") // "user2Name"
//	transformer.Slugify("Crème Brûlée")  // "creme-brulee"
//
// Upper and lower casing use full Unicode case mapping, and Slugify folds
// accented characters to their base ASCII form before slugging.
//
// # Csvtable Package
//
// The csvtable package parses comma-separated input with flexible record
// lengths (rows may be ragged), trims every field, and renders the result
// as an aligned ASCII table with centered headers. Inputs with no records
// fail with ErrNoHeaders; inputs with a header row but no data rows fail
// with ErrNoRows.
//
// # Command-Line Interface
//
// In addition to the library packages, strtools provides a command-line
// interface where the operation name is the command:
//
//	# Prompt for a line and snake_case it
//	strtools snakecase
//
//	# Transform an argument directly
//	strtools camelcase "Hello World"
//
//	# Render CSV from a file as a table
//	strtools csv data.csv
//
//	# List all operations
//	strtools list
//
// Install the CLI:
//
//	go install github.com/erraggy/strtools/cmd/strtools@latest
//
// # MCP Server
//
// strtools also embeds an MCP (Model Context Protocol) server exposing
// the transforms and table rendering as tools over stdio:
//
//	strtools mcp
//
// The server reads STRTOOLS_* environment variables for input size
// limits; see the mcp command help for details.
//
// # Error Handling
//
// The library has a single recoverable error in its core: resolving an
// unknown operation name. All transform operations are total and cannot
// fail. The csvtable package adds two sentinel errors for empty input
// (ErrNoHeaders, ErrNoRows). Errors are plain values checked with
// errors.Is and errors.As; nothing panics on user input.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/strtools
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/strtools
package strtools
