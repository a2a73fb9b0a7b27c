package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/strtools/operation"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Format string
}

// OperationInfo describes one operation in structured list output.
type OperationInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a ListFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: strtools list [flags]\n\n")
		Writef(fs.Output(), "List every available operation in a fixed order.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  strtools list\n")
		Writef(fs.Output(), "  strtools list --format json | jq -r '.[].name'\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("list command takes no arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		kinds := operation.Kinds()
		infos := make([]OperationInfo, 0, len(kinds))
		for _, k := range kinds {
			infos = append(infos, OperationInfo{Name: k.String(), Description: k.Describe()})
		}
		return OutputStructured(infos, flags.Format)
	}

	for _, k := range operation.Kinds() {
		Writef(os.Stdout, "%-10s %s\n", k, k.Describe())
	}
	return nil
}
