package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivemoreminix/qoverlay/ui"
)

func TestInitializeConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qoverlay", configFile)

	require.NoError(t, initializeConfigIfNot(path))
	conf, err := readConfig(path)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), *conf)
}

func TestInitializeConfigKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFile)
	require.NoError(t, os.WriteFile(path, []byte("Overlays = 3\n"), 0644))

	require.NoError(t, initializeConfigIfNot(path))
	conf, err := readConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, conf.Overlays)
	assert.Equal(t, "overlay.pdf", conf.Output, "missing keys keep their defaults")
}

func TestReadConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFile)
	contents := `Overlays = 0
SurfaceHeight = 2
DefaultBackground = "white"
Palette = ["#123456", "nope", "#ABCDEF"]
PageWidth = -1
FontSize = 0
TextColor = "#00000"
Output = ""
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	conf, err := readConfig(path)
	require.NoError(t, err)

	def := defaultConfig()
	assert.Equal(t, def.Overlays, conf.Overlays)
	assert.Equal(t, def.SurfaceHeight, conf.SurfaceHeight)
	assert.Equal(t, def.DefaultBackground, conf.DefaultBackground)
	assert.Equal(t, []string{"#123456", "#ABCDEF"}, conf.Palette)
	assert.Equal(t, def.PageWidth, conf.PageWidth)
	assert.Equal(t, def.FontSize, conf.FontSize)
	assert.Equal(t, def.TextColor, conf.TextColor)
	assert.Equal(t, def.Output, conf.Output)
}

func TestReadConfigEmptyPaletteUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFile)
	require.NoError(t, os.WriteFile(path, []byte("Palette = []\n"), 0644))

	conf, err := readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ui.DefaultPalette, conf.Palette)
}

func TestReadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := readConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("Overlays = \"many\"\n"), 0644))
	_, err = readConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFile)
	conf := defaultConfig()
	conf.Overlays = 4
	conf.Palette = []string{"#010203"}
	conf.Output = "out.png"

	require.NoError(t, writeConfig(path, &conf))
	got, err := readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, conf, *got)
}

func TestConfigDirFollowsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "qoverlay", configFile), configPath())

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "does-not-exist"))
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "qoverlay"), configDir())
}
