package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/cellfmt"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderStdin(t *testing.T) {
	t.Parallel()
	doc := "header: [id]\nrows: [[1]]\n"
	out, err := run(t, doc, "render", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "┌────┐\n│ id │\n├────┤\n│ 1  │\n└────┘\n", out)
}

func TestRenderFileWithBorderOverride(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("border: rounded\nrows: [[a, b]]\n"), 0o600))

	out, err := run(t, "", "render", "--plain", "--border", "double", path)
	require.NoError(t, err)
	assert.Equal(t, "╔═══╦═══╗\n║ a ║ b ║\n╚═══╩═══╝\n", out)
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()
	_, err := run(t, "border: dotted\n", "render", "-")
	require.ErrorIs(t, err, cellfmt.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "stdin")

	_, err = run(t, "rows: [[a]]\n", "render", "--border", "wavy")
	assert.ErrorIs(t, err, cellfmt.ErrTypeMismatch)

	_, err = run(t, "", "render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCellSeparator(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "cell", "--kind", "separator", "--width", "5", "--x", "left", "--y", "bottom", "--single-column")
	require.NoError(t, err)
	assert.Equal(t, "└───────┘\n", out)
}

func TestCellContent(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "--plain", "cell", "--width", "6", "--x", "left", "--align", "center", "hi")
	require.NoError(t, err)
	assert.Equal(t, "│   hi   │\n", out)
}

func TestCellErrors(t *testing.T) {
	t.Parallel()
	_, err := run(t, "", "cell", "--width", "2", "toolong")
	require.ErrorIs(t, err, cellfmt.ErrOutOfRange)

	_, err = run(t, "", "cell", "--kind", "cell")
	assert.ErrorIs(t, err, cellfmt.ErrAbstractInstantiation)

	_, err = run(t, "", "cell", "--kind", "box")
	assert.ErrorIs(t, err, cellfmt.ErrTypeMismatch)

	_, err = run(t, "", "cell", "--x", "top")
	assert.ErrorIs(t, err, cellfmt.ErrTypeMismatch)

	_, err = run(t, "", "cell", "--width", "-1")
	assert.ErrorIs(t, err, cellfmt.ErrOutOfRange)
}

func TestParseValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, parseValue("7"))
	assert.Equal(t, 2.5, parseValue("2.5"))
	assert.Equal(t, "x", parseValue("x"))
}

func TestUseStyle(t *testing.T) {
	t.Parallel()
	assert.True(t, useStyle(false, false))
	assert.False(t, useStyle(true, false))
	assert.False(t, useStyle(false, true))
	assert.False(t, (&rootOptions{plain: true}).styled())
}

func TestCellKindHelpListsAllKinds(t *testing.T) {
	t.Parallel()
	usage := newCellCmd(&rootOptions{}).Flags().Lookup("kind").Usage
	for kind := range cellKinds {
		assert.Contains(t, usage, kind)
	}
}
