package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/strtools"
	"github.com/erraggy/strtools/cmd/strtools/commands"
	"github.com/erraggy/strtools/operation"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		if len(os.Args) > 2 && (os.Args[2] == "--full" || os.Args[2] == "-f") {
			fmt.Println(strtools.BuildInfo())
		} else {
			fmt.Printf("strtools v%s\n", strtools.Version())
		}
	case "help", "-h", "--help":
		printUsage()
	case "list":
		if err := commands.HandleList(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		runOperation(command, os.Args[2:])
	}
}

// runOperation resolves the operation name and dispatches to its handler.
// Unrecognized names report the valid set and exit non-zero.
func runOperation(name string, args []string) {
	kind, err := operation.Parse(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if suggestion := suggestOperation(name); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr, "Available operations are:")
		for _, opName := range operation.Names() {
			fmt.Fprintf(os.Stderr, "  %s\n", opName)
		}
		os.Exit(1)
	}

	if kind == operation.CSV {
		err = commands.HandleCSV(args)
	} else {
		err = commands.HandleTransform(kind, args)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestOperation returns the operation or command name closest to input
// within edit distance 2, or "" when nothing is close enough.
func suggestOperation(input string) string {
	candidates := append(operation.Names(), "list", "mcp", "version", "help")

	lowered := strings.ToLower(input)
	best := ""
	bestDist := 3
	for _, candidate := range candidates {
		if d := levenshtein(lowered, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`strtools - String Transformation Tools

Usage:
  strtools <operation> [flags] [text]
  strtools <command> [flags]

Operations:
  camelcase   Join words into camelCase
  csv         Parse CSV data and render an aligned table
  lowercase   Map every character to lowercase
  nospaces    Remove all whitespace
  slugify     Produce a URL-safe hyphenated slug
  snakecase   Join words with underscores
  uppercase   Map every character to uppercase

Commands:
  list        List available operations
  mcp         Run the Model Context Protocol server over stdio
  version     Show version information
  help        Show this help message

Examples:
  strtools uppercase "hello world"
  strtools snakecase
  strtools slugify --format json "Hello, World!"
  strtools csv data.csv
  printf 'name,age\nAlice,30\n' | strtools csv -

Run 'strtools <operation> --help' for more information on an operation.`)
}
