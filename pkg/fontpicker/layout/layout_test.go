package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"
)

func TestCalculatePartial(t *testing.T) {
	d := layout.Calculate(1000, 1000, layout.ModePartial, 1)

	assert.Equal(t, layout.Rect{X: 0, Y: 650, W: 1000, H: 350}, d.List)
	assert.Equal(t, layout.Rect{X: 0, Y: 600, W: 1000, H: 50}, d.Toolbar)
	assert.Equal(t, int32(649), d.Hairline.Y, "hairline sits on the toolbar's bottom edge")
	assert.Equal(t, int32(1), d.Hairline.H)
	assert.Equal(t, layout.Rect{X: 0, Y: 600, W: 1000, H: 400}, d.Panel)
	assert.Equal(t, int32(904), d.DoneButton.X)
}

func TestCalculateFullscreen(t *testing.T) {
	d := layout.Calculate(800, 600, layout.ModeFullscreen, 1)

	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 800, H: 50}, d.Toolbar)
	assert.Equal(t, layout.Rect{X: 0, Y: 50, W: 800, H: 550}, d.List)
	assert.Equal(t, d.Host, d.Panel)
}

func TestCalculateScales(t *testing.T) {
	d := layout.Calculate(1000, 1000, layout.ModePartial, 2)

	assert.Equal(t, int32(100), d.Toolbar.H)
	assert.Equal(t, int32(88), d.RowHeight)
	assert.Equal(t, int32(2), d.Hairline.H)
}

func TestHitTestPartial(t *testing.T) {
	d := layout.Calculate(1000, 1000, layout.ModePartial, 1)

	tests := []struct {
		name  string
		point layout.Point
		want  layout.Target
	}{
		{"above panel", layout.Point{X: 500, Y: 100}, layout.TargetBackground},
		{"toolbar", layout.Point{X: 100, Y: 620}, layout.TargetToolbar},
		{"done", layout.Point{X: 950, Y: 620}, layout.TargetDone},
		{"list", layout.Point{X: 500, Y: 800}, layout.TargetList},
		{"outside host", layout.Point{X: -1, Y: 10}, layout.TargetNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.HitTest(tt.point))
		})
	}
}

func TestHitTestFullscreenHasNoBackground(t *testing.T) {
	d := layout.Calculate(400, 300, layout.ModeFullscreen, 1)

	for y := int32(0); y < 300; y += 7 {
		for x := int32(0); x < 400; x += 13 {
			assert.NotEqual(t, layout.TargetBackground, d.HitTest(layout.Point{X: x, Y: y}))
		}
	}
}

func TestViewportVisibleRange(t *testing.T) {
	v := layout.NewViewport(44, 200, 100)

	first, last := v.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, last)

	v.ScrollBy(50)
	first, last = v.VisibleRange()
	assert.Equal(t, 1, first)
	assert.Equal(t, 6, last)
}

func TestViewportClampsScroll(t *testing.T) {
	v := layout.NewViewport(40, 200, 10)

	v.ScrollBy(-100)
	assert.Equal(t, int32(0), v.Offset())

	v.ScrollBy(10_000)
	assert.Equal(t, int32(200), v.Offset())

	first, last := v.VisibleRange()
	assert.Equal(t, 5, first)
	assert.Equal(t, 10, last)
}

func TestViewportShortContentDoesNotScroll(t *testing.T) {
	v := layout.NewViewport(40, 200, 3)
	v.ScrollBy(100)

	assert.Equal(t, int32(0), v.Offset())
	first, last := v.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, last)
}

func TestViewportEmpty(t *testing.T) {
	v := layout.NewViewport(40, 200, 0)

	first, last := v.VisibleRange()
	assert.Equal(t, first, last)
	_, ok := v.RowAt(10)
	assert.False(t, ok)
}

func TestViewportScrollToVisible(t *testing.T) {
	v := layout.NewViewport(40, 200, 50)

	v.ScrollToVisible(20)
	assert.Equal(t, int32(640), v.Offset(), "row 20 ends at 840, bottom aligned")

	v.ScrollToVisible(3)
	assert.Equal(t, int32(120), v.Offset(), "row 3 top aligned")

	v.ScrollToVisible(5)
	assert.Equal(t, int32(120), v.Offset(), "already visible rows do not scroll")
}

func TestViewportRowAt(t *testing.T) {
	v := layout.NewViewport(40, 200, 50)
	v.ScrollBy(30)

	index, ok := v.RowAt(15)
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, int32(10), v.RowY(1))

	_, ok = v.RowAt(200)
	assert.False(t, ok)
}
