package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
save_directory: `+dir+`
start_menu: false
default_figure:
  width: 2
  height: 9
min_figure:
  width: 4
  height: 0
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.SaveDirectory)
	assert.False(t, cfg.StartMenu)
	assert.True(t, cfg.Confirmations)
	assert.True(t, cfg.WatchFiles)
	assert.Equal(t, Size{Width: 4, Height: 1}, cfg.MinFigure)
	assert.Equal(t, Size{Width: 4, Height: 9}, cfg.DefaultFigure)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_menu: [\n"), 0644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.SaveDirectory = t.TempDir()
	cfg.Confirmations = false
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetSavePath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "a.txt", cfg.GetSavePath("a.txt"))

	cfg.SaveDirectory = filepath.Join(t.TempDir(), "diagrams")
	assert.Equal(t, filepath.Join(cfg.SaveDirectory, "a.txt"), cfg.GetSavePath("a.txt"))
	assert.DirExists(t, cfg.SaveDirectory)
	assert.Equal(t, "/abs/a.txt", cfg.GetSavePath("/abs/a.txt"))
	assert.Equal(t, cfg.SaveDirectory, cfg.listDirectory())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "diagrams"), expandPath("~/diagrams"))
	assert.Equal(t, "", expandPath(""))
	assert.True(t, filepath.IsAbs(expandPath("relative")))
}
