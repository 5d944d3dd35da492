package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
)

const (
	sampleFontSize = 28
	hintFontSize   = 16
	margin         = 32
)

var sampleText = []string{
	"The quick brown fox",
	"jumps over the lazy dog.",
	"0123456789 &?!",
}

var (
	backgroundColor = sdl.Color{R: 250, G: 248, B: 240, A: 255}
	inkColor        = sdl.Color{R: 30, G: 30, B: 30, A: 255}
	hintColor       = sdl.Color{R: 120, G: 120, B: 120, A: 255}
)

// documentView is the host screen: a page of sample text set in the current
// font. It is redrawn under the picker while the picker is open.
type documentView struct {
	catalog *catalog.Catalog
	family  string

	sample *ttf.Font
	hint   *ttf.Font
	dirty  bool
}

func newDocumentView(c *catalog.Catalog, family string) *documentView {
	return &documentView{catalog: c, family: family, dirty: true}
}

func (d *documentView) font() string {
	return d.family
}

func (d *documentView) setFont(family string) {
	if family == d.family {
		return
	}
	d.family = family
	d.dirty = true
}

func (d *documentView) Render(renderer *sdl.Renderer, bounds sdl.Rect) {
	d.loadFonts()

	renderer.SetDrawColor(backgroundColor.R, backgroundColor.G, backgroundColor.B, backgroundColor.A)
	renderer.FillRect(&bounds)

	y := bounds.Y + margin
	y = drawLine(renderer, d.hint, d.label(), hintColor, bounds.X+margin, y)
	y += margin / 2

	for _, line := range sampleText {
		y = drawLine(renderer, d.sample, line, inkColor, bounds.X+margin, y)
	}

	if d.hint != nil {
		footerY := bounds.Y + bounds.H - margin - int32(d.hint.Height())
		drawLine(renderer, d.hint, "Tap or press A to change the font, B to quit", hintColor, bounds.X+margin, footerY)
	}
}

func (d *documentView) label() string {
	if d.family == "" {
		return "No fonts found"
	}
	return d.family
}

// loadFonts reopens the sample font after the family changed.
func (d *documentView) loadFonts() {
	if d.hint == nil {
		d.hint = openEmbedded(hintFontSize)
	}
	if !d.dirty {
		return
	}
	d.dirty = false

	if d.sample != nil {
		d.sample.Close()
		d.sample = nil
	}

	if face, ok := d.catalog.Face(d.family); ok {
		font, err := ttf.OpenFontIndex(face.File, sampleFontSize, face.Index)
		if err == nil {
			d.sample = font
			return
		}
		fontpicker.GetLogger().Warn("Failed to open sample font", "family", d.family, "error", err)
	}
	d.sample = openEmbedded(sampleFontSize)
}

func (d *documentView) close() {
	if d.sample != nil {
		d.sample.Close()
	}
	if d.hint != nil {
		d.hint.Close()
	}
}

func openEmbedded(size int) *ttf.Font {
	rw, err := sdl.RWFromMem(goregular.TTF)
	if err != nil {
		return nil
	}
	font, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil
	}
	return font
}

// drawLine draws text at (x, y) and returns the y of the next line.
func drawLine(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32) int32 {
	if font == nil || text == "" {
		return y
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return y + int32(font.Height())
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return y + surface.H
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return y + surface.H
}
