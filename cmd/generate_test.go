package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
package: compa
fields:
  - name: buffer_size
    type: int
    default: 32
  - name: choice
    type: Choice
    variants: [One, Other]
    default: One
`

// testProject lays out <tmp>/proj/{compa/cfgen.yaml, target/debug} and
// returns (projectRoot, manifestPath, outDirHint).
func testProject(t *testing.T) (string, string, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "proj")
	compDir := filepath.Join(root, "compa")
	outDir := filepath.Join(root, "target", "debug")
	require.NoError(t, os.MkdirAll(compDir, 0755))
	require.NoError(t, os.MkdirAll(outDir, 0755))

	manifestPath := filepath.Join(compDir, "cfgen.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(testManifest), 0644))
	return root, manifestPath, outDir
}

func TestGenerateWithOverrides(t *testing.T) {
	root, manifestPath, outDir := testProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "cfg.toml"),
		[]byte("[compa]\nbuffer_size = 4096\nchoice = \"Other\"\n"), 0644))

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--schema", manifestPath, "--out-dir", outDir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(filepath.Dir(manifestPath), "compa_cfg.gen.go"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "package compa")
	assert.Contains(t, out, "BufferSize: 4096,")
	assert.Contains(t, out, "Choice: ChoiceOther,")
}

func TestGenerateDefaultsWithoutOverrideFile(t *testing.T) {
	_, manifestPath, outDir := testProject(t)

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--schema", manifestPath, "--out-dir", outDir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(filepath.Dir(manifestPath), "compa_cfg.gen.go"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "BufferSize: 32,")
	assert.Contains(t, out, "Choice: ChoiceOne,")
}

func TestGenerateExplicitOutPath(t *testing.T) {
	_, manifestPath, outDir := testProject(t)
	outPath := filepath.Join(t.TempDir(), "custom.gen.go")

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--schema", manifestPath, "--out-dir", outDir, "--out", outPath})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(outPath)
	assert.NoError(t, err)
}

func TestGenerateStrictWithoutOverrides(t *testing.T) {
	_, manifestPath, outDir := testProject(t)

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--schema", manifestPath, "--out-dir", outDir, "--strict"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
}

func TestGenerateUnknownVariantFails(t *testing.T) {
	root, manifestPath, outDir := testProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "cfg.toml"),
		[]byte("[compa]\nchoice = \"Bogus\"\n"), 0644))

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--schema", manifestPath, "--out-dir", outDir})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choice")

	// No partial output may be produced.
	_, statErr := os.Stat(filepath.Join(filepath.Dir(manifestPath), "compa_cfg.gen.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateMissingManifest(t *testing.T) {
	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--schema", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, cmd.Execute())
}

func TestGenerateExplicitRoot(t *testing.T) {
	root, manifestPath, _ := testProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "cfg.toml"),
		[]byte("[compa]\nbuffer_size = 64\n"), 0644))

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--schema", manifestPath, "--root", root})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(filepath.Dir(manifestPath), "compa_cfg.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "BufferSize: 64,")
}
