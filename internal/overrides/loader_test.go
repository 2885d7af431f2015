package overrides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverrideFile(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, OverrideFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTableMissingFile(t *testing.T) {
	table, err := LoadTable(t.TempDir())
	assert.NoError(t, err)
	assert.Nil(t, table)
}

func TestLoadTableValues(t *testing.T) {
	root := t.TempDir()
	writeOverrideFile(t, root, `
[compa]
buffer_size = 4096
greeting = "Guten tag!"
verbose = true
ratio = 0.75

[compb]
greeting = "hello"
`)

	table, err := LoadTable(root)
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Equal(t, filepath.Join(root, OverrideFileName), table.Path)

	compa, ok := table.Component("compa")
	require.True(t, ok)

	v, ok := compa.Value("buffer_size")
	require.True(t, ok)
	assert.Equal(t, int64(4096), v)

	v, ok = compa.Value("greeting")
	require.True(t, ok)
	assert.Equal(t, "Guten tag!", v)

	v, ok = compa.Value("verbose")
	require.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = compa.Value("ratio")
	require.True(t, ok)
	assert.Equal(t, 0.75, v)

	_, ok = compa.Value("not_overridden")
	assert.False(t, ok)
}

func TestLoadTableComponentAbsent(t *testing.T) {
	root := t.TempDir()
	writeOverrideFile(t, root, `
[compb]
greeting = "hello"
`)

	table, err := LoadTable(root)
	require.NoError(t, err)

	_, ok := table.Component("compa")
	assert.False(t, ok)
}

func TestLoadTableEmptyComponentIsPresent(t *testing.T) {
	root := t.TempDir()
	writeOverrideFile(t, root, "[compa]\n")

	table, err := LoadTable(root)
	require.NoError(t, err)

	compa, ok := table.Component("compa")
	assert.True(t, ok, "an empty component table is present, not absent")
	assert.Empty(t, compa)
}

func TestLoadTableMalformed(t *testing.T) {
	root := t.TempDir()
	writeOverrideFile(t, root, "this is = not [ valid toml")

	table, err := LoadTable(root)
	assert.Error(t, err)
	assert.Nil(t, table)
}

func TestLoadTableDuplicateComponentRejected(t *testing.T) {
	root := t.TempDir()
	writeOverrideFile(t, root, `
[compa]
buffer_size = 1

[compa]
buffer_size = 2
`)

	_, err := LoadTable(root)
	assert.Error(t, err, "redefined component tables must be rejected deterministically")
}

func TestNilTableLookup(t *testing.T) {
	var table *Table
	_, ok := table.Component("compa")
	assert.False(t, ok)
}
