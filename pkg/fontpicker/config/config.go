// Package config holds the caller-supplied presentation options of a picker
// and loads them from TOML settings files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Color is an 8-bit RGBA color. In settings files it is written as
// "#RRGGBB" or "#RRGGBBAA".
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// HexToColor converts a 0xRRGGBB value to an opaque Color.
func HexToColor(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}

	if len(raw) == 6 {
		return HexToColor(uint32(v)), nil
	}

	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Settings configures one picker. Set before presenting; changes made while
// the picker is visible have no effect.
type Settings struct {
	BarTintColor       Color  `toml:"bar_tint_color"`       // Toolbar button color
	SelectionTintColor Color  `toml:"selection_tint_color"` // Checkmark color
	BarBackgroundColor Color  `toml:"bar_background_color"` // Toolbar fill
	DimsBackground     bool   `toml:"dims_background"`      // Shade the host above the picker (partial mode only)
	Fullscreen         bool   `toml:"fullscreen"`           // Use the whole host instead of the bottom portion
	InitialFontName    string `toml:"initial_font_name"`    // Font shown selected when the picker opens
	Language           string `toml:"language"`             // BCP 47 tag for the toolbar label, empty for English
}

// DefaultSettings returns the stock look: blue tints on a light gray toolbar.
func DefaultSettings() Settings {
	return Settings{
		BarTintColor:       HexToColor(0x0000FF),
		SelectionTintColor: HexToColor(0x0000FF),
		BarBackgroundColor: HexToColor(0xEFEFEF),
	}
}

// ShowsScrim reports whether the host is dimmed behind the picker. Fullscreen
// leaves nothing of the host visible, so dimming never applies there.
func (s Settings) ShowsScrim() bool {
	return s.DimsBackground && !s.Fullscreen
}

// Load reads settings from a TOML file. Keys missing from the file keep
// their DefaultSettings values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML settings on top of DefaultSettings.
func Parse(data []byte) (Settings, error) {
	settings := DefaultSettings()

	md, err := toml.Decode(string(data), &settings)
	if err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Settings{}, fmt.Errorf("decode settings: unknown keys %s", strings.Join(keys, ", "))
	}

	return settings, nil
}
