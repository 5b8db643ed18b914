package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsIn(t *testing.T) {
	root := t.TempDir()
	p := PathsIn(root)

	assert.Equal(t, root, p.WorkDir)
	assert.Equal(t, filepath.Join(root, "data"), p.DataDir)
	assert.Equal(t, filepath.Join(root, "data", "reports"), p.ReportsDir)
	assert.Equal(t, filepath.Join(root, "logs"), p.LogsDir)

	assert.Equal(t, filepath.Join(root, "data", "household_power_consumption.txt"), p.DatasetFile)
	assert.Equal(t, filepath.Join(root, "data", "household_power_consumption.zip"), p.DatasetZip)

	assert.Equal(t, filepath.Join(root, "plot2.png"), p.SinglePanelPNG)
	assert.Equal(t, filepath.Join(root, "plot4.png"), p.GridPNG)
}

func TestDatasetPresent(t *testing.T) {
	p := PathsIn(t.TempDir())

	assert.False(t, p.DatasetPresent())

	require.NoError(t, os.MkdirAll(p.DataDir, 0755))
	assert.True(t, p.DatasetPresent())
}

func TestDatasetPresentIgnoresFile(t *testing.T) {
	p := PathsIn(t.TempDir())

	// A plain file named "data" does not count as the extracted dataset.
	require.NoError(t, os.WriteFile(p.DataDir, []byte("not a dir"), 0644))
	assert.False(t, p.DatasetPresent())
}

func TestEnsureDirectories(t *testing.T) {
	p := PathsIn(t.TempDir())

	require.NoError(t, p.EnsureDirectories())

	assert.DirExists(t, p.LogsDir)
	// The data directory must stay absent: its existence is the
	// acquisition-skip signal.
	assert.NoDirExists(t, p.DataDir)
}

func TestGetLogPath(t *testing.T) {
	p := PathsIn(t.TempDir())
	assert.Equal(t, filepath.Join(p.LogsDir, "plot2.log"), p.GetLogPath("plot2.log"))
}

func TestGetPaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := GetPaths()
	require.NoError(t, err)
	assert.Equal(t, wd, p.WorkDir)
}
