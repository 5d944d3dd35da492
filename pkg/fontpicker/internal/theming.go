package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
)

// Theme defines the colors of the picker that are not caller configurable.
// Toolbar and selection tints come from config.Settings.
type Theme struct {
	ListBackgroundColor sdl.Color // List area fill
	TextColor           sdl.Color // Row text
	FocusColor          sdl.Color // D-pad cursor behind the focused row
	HairlineColor       sdl.Color // Border under the toolbar
	ScrimColor          sdl.Color // Dimming overlay, alpha applied separately
	HostColor           sdl.Color // Host fill when no host renderer is given
	FontPath            string    // UI font for the toolbar; empty uses the embedded Go font
	BackgroundImagePath string    // Optional image drawn as the default host content
}

var currentTheme = DefaultTheme()

// DefaultTheme mirrors a light system list: white rows, black text and a
// light gray hairline.
func DefaultTheme() Theme {
	return Theme{
		ListBackgroundColor: ToSDLColor(config.HexToColor(0xFFFFFF)),
		TextColor:           ToSDLColor(config.HexToColor(0x000000)),
		FocusColor:          sdl.Color{R: 0, G: 0, B: 0, A: 24},
		HairlineColor:       ToSDLColor(config.HexToColor(0xAAAAAA)),
		ScrimColor:          ToSDLColor(config.HexToColor(0x000000)),
		HostColor:           ToSDLColor(config.HexToColor(0x202020)),
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// ToSDLColor converts a settings color for SDL drawing.
func ToSDLColor(c config.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
