package fontpicker

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/internal"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/presenter"
)

const rowTextureCacheSlack = 8

// pickerView draws a widget. It owns the textures it creates.
type pickerView struct {
	renderer  *sdl.Renderer
	widget    *presenter.Widget
	checkmark *sdl.Texture
	done      *internal.TextTexture
	rows      *internal.Cache[*internal.TextTexture]
}

func newPickerView(renderer *sdl.Renderer, widget *presenter.Widget, doneLabel string) (*pickerView, error) {
	dims := widget.Dimensions()
	settings := widget.Settings()

	checkmark, err := internal.RasterizeSVG(renderer, constants.CheckmarkSVG, scaled(constants.CheckmarkSize, dims.Scale))
	if err != nil {
		return nil, err
	}

	doneTexture, w, h, err := internal.RenderText(renderer, internal.Fonts.UIFont, doneLabel, internal.ToSDLColor(settings.BarTintColor))
	if err != nil {
		checkmark.Destroy()
		return nil, err
	}

	visible := 1
	if dims.RowHeight > 0 {
		visible = int(dims.Host.H/dims.RowHeight) + 1
	}
	internal.Fonts.ResizePreviewCache(visible + rowTextureCacheSlack)

	return &pickerView{
		renderer:  renderer,
		widget:    widget,
		checkmark: checkmark,
		done:      &internal.TextTexture{Texture: doneTexture, W: w, H: h},
		rows: internal.NewCache[*internal.TextTexture](visible+rowTextureCacheSlack, func(t *internal.TextTexture) {
			t.Destroy()
		}),
	}, nil
}

func (v *pickerView) destroy() {
	v.rows.Destroy()
	v.done.Destroy()
	v.checkmark.Destroy()
}

// render draws one frame: the host, then the scrim and the panel while the
// picker is on screen.
func (v *pickerView) render(host Host, now time.Time, finished bool) {
	dims := v.widget.Dimensions()
	bounds := toSDLRect(dims.Host, 0)

	v.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	if host != nil {
		host.Render(v.renderer, bounds)
	} else {
		internal.GetWindow().RenderBackground()
	}

	if finished {
		return
	}

	theme := internal.GetTheme()

	if v.widget.ScrimVisible() {
		internal.FillRect(v.renderer, bounds, internal.WithAlpha(theme.ScrimColor, v.widget.ScrimAlpha(now)))
	}

	offset := v.widget.PanelOffset(now)
	v.renderList(dims, offset, theme)
	v.renderToolbar(dims, offset, theme)
}

func (v *pickerView) renderList(dims layout.Dimensions, offset int32, theme internal.Theme) {
	listRect := toSDLRect(dims.List, offset)
	internal.FillRect(v.renderer, listRect, theme.ListBackgroundColor)

	v.renderer.SetClipRect(&listRect)
	defer v.renderer.SetClipRect(nil)

	settings := v.widget.Settings()
	tint := internal.ToSDLColor(settings.SelectionTintColor)
	checkSize := scaled(constants.CheckmarkSize, dims.Scale)

	textX := listRect.X + dims.RowInset.Left
	checkX := listRect.X + listRect.W - dims.RowInset.Right - checkSize
	textWidth := checkX - dims.RowInset.Right - textX

	for _, row := range v.widget.Rows() {
		y := listRect.Y + row.Y

		if row.Focused {
			internal.FillRect(v.renderer, sdl.Rect{X: listRect.X, Y: y, W: listRect.W, H: dims.RowHeight}, theme.FocusColor)
		}

		if text := v.rowText(row.Name, theme.TextColor); text != nil {
			text.DrawClipped(v.renderer, textX, y, dims.RowHeight, textWidth)
		}

		if row.Selected {
			dst := sdl.Rect{X: checkX, Y: y + (dims.RowHeight-checkSize)/2, W: checkSize, H: checkSize}
			internal.DrawTinted(v.renderer, v.checkmark, dst, tint)
		}
	}
}

// rowText returns the family name drawn in its own face.
func (v *pickerView) rowText(family string, color sdl.Color) *internal.TextTexture {
	if text, ok := v.rows.Get(family); ok {
		return text
	}

	font := internal.Fonts.Preview(family, v.widget.Catalog())
	texture, w, h, err := internal.RenderText(v.renderer, font, family, color)
	if err != nil && font != internal.Fonts.UIFont {
		// Some faces have no glyphs for their own name.
		texture, w, h, err = internal.RenderText(v.renderer, internal.Fonts.UIFont, family, color)
	}
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render row", "family", family, "error", err)
		return nil
	}

	text := &internal.TextTexture{Texture: texture, W: w, H: h}
	v.rows.Set(family, text)
	return text
}

func (v *pickerView) renderToolbar(dims layout.Dimensions, offset int32, theme internal.Theme) {
	settings := v.widget.Settings()

	internal.FillRect(v.renderer, toSDLRect(dims.Toolbar, offset), internal.ToSDLColor(settings.BarBackgroundColor))

	button := toSDLRect(dims.DoneButton, offset)
	labelX := button.X + (button.W-v.done.W)/2
	v.done.DrawClipped(v.renderer, max(labelX, button.X), button.Y, button.H, button.W)

	internal.FillRect(v.renderer, toSDLRect(dims.Hairline, offset), theme.HairlineColor)
}

func toSDLRect(r layout.Rect, dy int32) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y + dy, W: r.W, H: r.H}
}

func scaled(v int32, scale float32) int32 {
	return int32(float32(v)*scale + 0.5)
}
