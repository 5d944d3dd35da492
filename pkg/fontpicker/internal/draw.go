package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FillRect fills rect with color, blending by the color's alpha.
func FillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

// WithAlpha returns color with its alpha scaled by opacity in [0,1].
func WithAlpha(color sdl.Color, opacity float64) sdl.Color {
	switch {
	case opacity <= 0:
		color.A = 0
	case opacity < 1:
		color.A = uint8(float64(color.A) * opacity)
	}
	return color
}

// RenderText creates a texture for text. The caller owns the texture.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32, error) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, err
	}

	return texture, surface.W, surface.H, nil
}

// TextTexture is a rendered string with its pixel size.
type TextTexture struct {
	Texture *sdl.Texture
	W       int32
	H       int32
}

func (t *TextTexture) Destroy() {
	if t != nil && t.Texture != nil {
		t.Texture.Destroy()
	}
}

// DrawClipped copies t into a box at (x, y), vertically centered in height,
// clipped to maxWidth.
func (t *TextTexture) DrawClipped(renderer *sdl.Renderer, x, y, height, maxWidth int32) {
	if t == nil || t.Texture == nil {
		return
	}
	w := min(t.W, maxWidth)
	if w <= 0 {
		return
	}
	src := sdl.Rect{X: 0, Y: 0, W: w, H: t.H}
	dst := sdl.Rect{X: x, Y: y + (height-t.H)/2, W: w, H: t.H}
	renderer.Copy(t.Texture, &src, &dst)
}
