package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
)

func parseFlags(t *testing.T, args ...string) (config.Settings, error) {
	t.Helper()

	flags := &rootFlags{}
	cmd := &cobra.Command{Use: "fontpicker-demo"}
	bindFlags(cmd, flags)
	require.NoError(t, cmd.ParseFlags(args))

	return loadSettings(cmd, flags)
}

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := parseFlags(t)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestLoadSettingsFlags(t *testing.T) {
	settings, err := parseFlags(t, "--dim", "--initial", "Courier", "--lang", "de", "--tint", "#FF8000")
	require.NoError(t, err)

	assert.True(t, settings.DimsBackground)
	assert.False(t, settings.Fullscreen)
	assert.Equal(t, "Courier", settings.InitialFontName)
	assert.Equal(t, "de", settings.Language)
	assert.Equal(t, config.HexToColor(0xFF8000), settings.BarTintColor)
	assert.Equal(t, config.HexToColor(0xFF8000), settings.SelectionTintColor)
}

func TestLoadSettingsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.toml")
	require.NoError(t, os.WriteFile(path, []byte("fullscreen = true\ninitial_font_name = \"Georgia\"\n"), 0o644))

	settings, err := parseFlags(t, "--config", path, "--fullscreen=false")
	require.NoError(t, err)

	assert.False(t, settings.Fullscreen)
	assert.Equal(t, "Georgia", settings.InitialFontName)
}

func TestLoadSettingsBadTint(t *testing.T) {
	_, err := parseFlags(t, "--tint", "orange")
	assert.ErrorContains(t, err, "--tint")
}
