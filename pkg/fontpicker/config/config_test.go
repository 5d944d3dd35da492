package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    config.Color
		wantErr bool
	}{
		{in: "#FF8000", want: config.Color{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}},
		{in: "efefef", want: config.Color{R: 0xEF, G: 0xEF, B: 0xEF, A: 0xFF}},
		{in: "#00000066", want: config.Color{R: 0, G: 0, B: 0, A: 0x66}},
		{in: "#FFF", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := config.ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#0000FF", config.HexToColor(0x0000FF).String())
	assert.Equal(t, "#00000066", config.Color{A: 0x66}.String())
}

func TestParseKeepsDefaults(t *testing.T) {
	settings, err := config.Parse([]byte(`fullscreen = true`))
	require.NoError(t, err)

	assert.True(t, settings.Fullscreen)
	assert.Equal(t, config.DefaultSettings().BarBackgroundColor, settings.BarBackgroundColor)
}

func TestParseFullFile(t *testing.T) {
	settings, err := config.Parse([]byte(`
bar_tint_color = "#FF3B30"
selection_tint_color = "#34C759"
bar_background_color = "#1C1C1E"
dims_background = true
initial_font_name = "Courier"
language = "de"
`))
	require.NoError(t, err)

	assert.Equal(t, config.HexToColor(0xFF3B30), settings.BarTintColor)
	assert.Equal(t, config.HexToColor(0x34C759), settings.SelectionTintColor)
	assert.Equal(t, config.HexToColor(0x1C1C1E), settings.BarBackgroundColor)
	assert.True(t, settings.DimsBackground)
	assert.Equal(t, "Courier", settings.InitialFontName)
	assert.Equal(t, "de", settings.Language)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte(`dim_background = true`))
	assert.ErrorContains(t, err, "dim_background")
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := config.Parse([]byte(`bar_tint_color = "blue"`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.toml")
	require.NoError(t, os.WriteFile(path, []byte(`initial_font_name = "Helvetica"`), 0o644))

	settings, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Helvetica", settings.InitialFontName)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestShowsScrim(t *testing.T) {
	tests := []struct {
		dims, fullscreen, want bool
	}{
		{dims: false, fullscreen: false, want: false},
		{dims: true, fullscreen: false, want: true},
		{dims: true, fullscreen: true, want: false},
		{dims: false, fullscreen: true, want: false},
	}

	for _, tt := range tests {
		s := config.Settings{DimsBackground: tt.dims, Fullscreen: tt.fullscreen}
		assert.Equal(t, tt.want, s.ShowsScrim(), "dims=%v fullscreen=%v", tt.dims, tt.fullscreen)
	}
}
