package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"
)

func TestGestureTapWithinSlop(t *testing.T) {
	g := NewGesture(10)
	g.Begin(layout.Point{X: 100, Y: 100})

	assert.Zero(t, g.Move(layout.Point{X: 105, Y: 108}))
	assert.True(t, g.End(layout.Point{X: 104, Y: 109}))
	assert.False(t, g.Active())
}

func TestGestureDragScrolls(t *testing.T) {
	g := NewGesture(10)
	g.Begin(layout.Point{X: 100, Y: 100})

	assert.Zero(t, g.Move(layout.Point{X: 100, Y: 95}))
	assert.Equal(t, int32(-20), g.Move(layout.Point{X: 100, Y: 80}))
	assert.Equal(t, int32(-5), g.Move(layout.Point{X: 100, Y: 75}))
	assert.False(t, g.End(layout.Point{X: 100, Y: 75}), "a drag is never a tap")
}

func TestGestureHorizontalDragIsNotTap(t *testing.T) {
	g := NewGesture(10)
	g.Begin(layout.Point{X: 0, Y: 0})

	assert.False(t, g.End(layout.Point{X: 40, Y: 0}))
}

func TestGestureIgnoresMovesWithoutPress(t *testing.T) {
	g := NewGesture(10)

	assert.Zero(t, g.Move(layout.Point{X: 50, Y: 50}))
	assert.False(t, g.End(layout.Point{X: 50, Y: 50}))
}
