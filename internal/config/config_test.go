package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".hextoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_AllFields(t *testing.T) {
	path := writeConfig(t, "output: blob.h\nname: firmware\nwidth: 8\nhex_format: true\n")

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "blob.h", d.Output)
	assert.Equal(t, "firmware", d.Name)
	assert.Equal(t, 8, d.Width)
	assert.True(t, d.HexFormat)
}

func TestLoadFile_PartialFile(t *testing.T) {
	path := writeConfig(t, "width: 16\n")

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, d.Width)
	assert.Empty(t, d.Output)
	assert.Empty(t, d.Name)
	assert.False(t, d.HexFormat)
}

func TestLoadFile_Missing(t *testing.T) {
	d, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Defaults{}, d)
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "width: [not an int\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadFile_NegativeWidth(t *testing.T) {
	path := writeConfig(t, "width: -3\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "name: fromenv\n")
	t.Setenv(envVar, path)

	d, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fromenv", d.Name)
}

func TestLoad_EnvPointsAtMissingFile(t *testing.T) {
	t.Setenv(envVar, filepath.Join(t.TempDir(), "absent.yaml"))

	d, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults{}, d)
}
