package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
)

const previewFontCacheSize = 32

// FontSet holds the toolbar font and the per-family preview fonts.
type FontSet struct {
	UIFont  *ttf.Font
	preview *Cache[*ttf.Font]
	failed  map[string]bool
	size    int
}

// Fonts is the active font set, created by Init.
var Fonts *FontSet

func initFonts(uiFontSize, previewSize int) error {
	uiFont, err := openUIFont(uiFontSize)
	if err != nil {
		return err
	}

	Fonts = &FontSet{
		UIFont:  uiFont,
		preview: NewCache[*ttf.Font](previewFontCacheSize, func(f *ttf.Font) { f.Close() }),
		failed:  make(map[string]bool),
		size:    previewSize,
	}
	return nil
}

func openUIFont(size int) (*ttf.Font, error) {
	if path := GetTheme().FontPath; path != "" {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, nil
		}
		GetInternalLogger().Warn("Failed to open theme font; using embedded font", "path", path, "error", err)
	}

	rw, err := sdl.RWFromMem(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("wrap embedded font: %w", err)
	}
	return ttf.OpenFontRW(rw, 1, size)
}

// Preview returns the font used to draw family in its own face. Families
// whose face cannot be opened fall back to the UI font.
func (fs *FontSet) Preview(family string, c *catalog.Catalog) *ttf.Font {
	if font, ok := fs.preview.Get(family); ok {
		return font
	}
	if fs.failed[family] {
		return fs.UIFont
	}

	face, ok := c.Face(family)
	if !ok {
		fs.failed[family] = true
		return fs.UIFont
	}

	font, err := ttf.OpenFontIndex(face.File, fs.size, face.Index)
	if err != nil {
		GetInternalLogger().Debug("Failed to open preview font", "family", family, "file", face.File, "error", err)
		fs.failed[family] = true
		return fs.UIFont
	}

	fs.preview.Set(family, font)
	return font
}

// ResizePreviewCache keeps at least n preview fonts open.
func (fs *FontSet) ResizePreviewCache(n int) {
	fs.preview.Resize(max(n, previewFontCacheSize))
}

func closeFonts() {
	if Fonts == nil {
		return
	}
	Fonts.preview.Destroy()
	if Fonts.UIFont != nil {
		Fonts.UIFont.Close()
	}
	Fonts = nil
}
