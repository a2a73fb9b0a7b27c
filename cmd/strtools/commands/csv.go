package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/strtools/csvtable"
)

// CSVFlags contains flags for the csv operation
type CSVFlags struct {
	Quiet  bool
	Format string
}

// SetupCSVFlags creates and configures a FlagSet for the csv operation.
// Returns the FlagSet and a CSVFlags struct with bound flag variables.
func SetupCSVFlags() (*flag.FlagSet, *CSVFlags) {
	fs := flag.NewFlagSet("csv", flag.ContinueOnError)
	flags := &CSVFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the rendered table, no prompts")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the rendered table, no prompts")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: strtools csv [flags] [file|-]\n\n")
		Writef(fs.Output(), "Parse CSV data and render it as an aligned table.\n\n")
		Writef(fs.Output(), "The first record is the header row and every following record is a\n")
		Writef(fs.Output(), "data row. With no file argument the data is read interactively from\n")
		Writef(fs.Output(), "stdin until an empty line.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Aligned text table on stdout\n")
		Writef(fs.Output(), "  json            JSON object with the headers and rows\n")
		Writef(fs.Output(), "  yaml            YAML object with the headers and rows\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  strtools csv data.csv\n")
		Writef(fs.Output(), "  strtools csv\n")
		Writef(fs.Output(), "  printf 'name,age\\nAlice,30\\n' | strtools csv -\n")
		Writef(fs.Output(), "  strtools csv --format json data.csv | jq '.rows'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Table rendered successfully\n")
		Writef(fs.Output(), "  1    Invalid flags, unreadable file, or malformed CSV\n")
	}

	return fs, flags
}

// HandleCSV executes the csv operation
func HandleCSV(args []string) error {
	fs, flags := SetupCSVFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("csv operation takes at most one file argument")
	}

	// Validate format flag early to fail fast before reading input
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	table, err := readTable(fs, flags)
	if err != nil {
		return err
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(table, flags.Format)
	}

	table.Render(os.Stdout)
	return nil
}

// readTable parses CSV from the file argument, stdin, or an interactive
// prompt, depending on what the command line asked for.
func readTable(fs *flag.FlagSet, flags *CSVFlags) (*csvtable.Table, error) {
	if fs.NArg() == 1 {
		path := fs.Arg(0)
		if path == StdinFilePath {
			return csvtable.Parse(os.Stdin)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening CSV file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return csvtable.Parse(f)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "Selected operation: csv\n")
		Writef(os.Stderr, "Enter your CSV data (enter an empty line to finish):\n")
	}
	lines, err := readLinesUntilBlank(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return csvtable.ParseLines(lines)
}

// readLinesUntilBlank reads lines from r until the first empty line or EOF.
func readLinesUntilBlank(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
