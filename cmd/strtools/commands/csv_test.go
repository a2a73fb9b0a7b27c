package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/strtools/csvtable"
)

// writeTempCSV writes content to a throwaway CSV file and returns its path.
func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetupCSVFlags(t *testing.T) {
	fs, flags := SetupCSVFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "csv", fs.Name())
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--quiet", "--format", "yaml", "data.csv"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "yaml", flags.Format)
		assert.Equal(t, "data.csv", fs.Arg(0))
	})
}

func TestHandleCSV_Help(t *testing.T) {
	err := HandleCSV([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleCSV_InvalidFormat(t *testing.T) {
	err := HandleCSV([]string{"--format", "xml", "data.csv"})
	assert.Error(t, err)
}

func TestHandleCSV_TooManyArgs(t *testing.T) {
	err := HandleCSV([]string{"a.csv", "b.csv"})
	assert.Error(t, err)
}

func TestHandleCSV_MissingFile(t *testing.T) {
	err := HandleCSV([]string{filepath.Join(t.TempDir(), "missing.csv")})
	require.Error(t, err)
	assert.ErrorContains(t, err, "opening CSV file")
}

func TestHandleCSV_File(t *testing.T) {
	path := writeTempCSV(t, "name,age\nAlice,30\nBob,25\n")

	err := HandleCSV([]string{path})
	assert.NoError(t, err)
}

func TestHandleCSV_FileNoRows(t *testing.T) {
	path := writeTempCSV(t, "name,age\n")

	err := HandleCSV([]string{path})
	require.Error(t, err)
	assert.ErrorIs(t, err, csvtable.ErrNoRows)
}

func TestHandleCSV_StructuredOutput(t *testing.T) {
	path := writeTempCSV(t, "name,age\nAlice,30\n")

	err := HandleCSV([]string{"--format", "json", path})
	assert.NoError(t, err)

	err = HandleCSV([]string{"--format", "yaml", path})
	assert.NoError(t, err)
}
