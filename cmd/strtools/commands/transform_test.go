package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/strtools/operation"
)

func TestSetupTransformFlags(t *testing.T) {
	fs, flags := SetupTransformFlags(operation.UpperCase)

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "uppercase", fs.Name())
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, FormatText, flags.Format)
		assert.False(t, flags.Verbose, "expected Verbose to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-q", "--format", "json", "--verbose", "hello"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "json", flags.Format)
		assert.True(t, flags.Verbose, "expected Verbose to be true")
		assert.Equal(t, "hello", fs.Arg(0))
	})

	t.Run("flag set per operation", func(t *testing.T) {
		fs2, _ := SetupTransformFlags(operation.Slugify)
		assert.Equal(t, "slugify", fs2.Name())
	})
}

func TestHandleTransform_Help(t *testing.T) {
	err := HandleTransform(operation.UpperCase, []string{"--help"})
	assert.NoError(t, err)
}

func TestHandleTransform_InvalidFormat(t *testing.T) {
	err := HandleTransform(operation.UpperCase, []string{"--format", "invalid", "hello"})
	assert.Error(t, err)
}

func TestHandleTransform_UnknownFlag(t *testing.T) {
	err := HandleTransform(operation.UpperCase, []string{"--bogus"})
	assert.Error(t, err)
}

func TestHandleTransform_TooManyArgs(t *testing.T) {
	err := HandleTransform(operation.UpperCase, []string{"hello", "world"})
	assert.Error(t, err)
}

func TestHandleTransform_DirectText(t *testing.T) {
	err := HandleTransform(operation.SnakeCase, []string{"Hello World"})
	assert.NoError(t, err)
}

func TestHandleTransform_StructuredOutput(t *testing.T) {
	err := HandleTransform(operation.Slugify, []string{"--format", "json", "Hello, World!"})
	assert.NoError(t, err)

	err = HandleTransform(operation.Slugify, []string{"--format", "yaml", "Hello, World!"})
	assert.NoError(t, err)
}
