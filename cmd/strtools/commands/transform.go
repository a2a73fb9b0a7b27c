package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/strtools/operation"
	"github.com/erraggy/strtools/transformer"
)

// TransformFlags contains flags shared by every text transform operation
type TransformFlags struct {
	Quiet   bool
	Format  string
	Verbose bool
}

// TransformResult is the structured output of a transform operation.
type TransformResult struct {
	Operation string `json:"operation" yaml:"operation"`
	Input     string `json:"input" yaml:"input"`
	Output    string `json:"output" yaml:"output"`
}

// SetupTransformFlags creates and configures a FlagSet for a transform
// operation. Returns the FlagSet and a TransformFlags struct with bound
// flag variables.
func SetupTransformFlags(kind operation.Kind) (*flag.FlagSet, *TransformFlags) {
	name := kind.String()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &TransformFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the transform result, no prompts")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the transform result, no prompts")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log transform details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: strtools %s [flags] [text]\n\n", name)
		Writef(fs.Output(), "Operation: %s\n\n", kind.Describe())
		Writef(fs.Output(), "Reads one line of text and prints \"<input> -> <output>\". With no text\n")
		Writef(fs.Output(), "argument the line is read interactively from stdin.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  \"<input> -> <output>\" on stdout\n")
		Writef(fs.Output(), "  json            JSON object with the operation, input, and output\n")
		Writef(fs.Output(), "  yaml            YAML object with the operation, input, and output\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  strtools %s \"Hello World\"\n", name)
		Writef(fs.Output(), "  strtools %s\n", name)
		Writef(fs.Output(), "  echo \"Hello World\" | strtools %s -q\n", name)
		Writef(fs.Output(), "  strtools %s --format json \"Hello World\" | jq '.output'\n", name)
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Transform succeeded\n")
		Writef(fs.Output(), "  1    Invalid flags or input could not be read\n")
	}

	return fs, flags
}

// HandleTransform executes one of the text transform operations
func HandleTransform(kind operation.Kind, args []string) error {
	fs, flags := SetupTransformFlags(kind)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("%s operation takes at most one text argument", kind)
	}

	// Validate format flag early to fail fast before reading input
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var opts []transformer.Option
	if flags.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, transformer.WithLogger(transformer.NewSlogAdapter(logger)))
	}

	var input string
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	} else {
		if !flags.Quiet {
			Writef(os.Stderr, "Selected operation: %s\n", kind)
			Writef(os.Stderr, "Insert string to modify:\n")
		}
		line, err := readLine(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		input = line
	}

	output := transformer.ApplyWithOptions(kind, input, opts...)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		result := TransformResult{
			Operation: kind.String(),
			Input:     input,
			Output:    output,
		}
		return OutputStructured(result, flags.Format)
	}

	Writef(os.Stdout, "%s -> %s\n", input, output)
	return nil
}

// readLine reads a single line from r without the trailing newline.
// EOF before any input yields an empty line.
func readLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return scanner.Text(), nil
}
