package presenter

import "github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"

// Gesture tells taps from drags for one pointer. A press that travels more
// than the slop in either axis becomes a drag and never produces a tap.
type Gesture struct {
	slop     int32
	active   bool
	dragging bool
	start    layout.Point
	last     layout.Point
}

func NewGesture(slop int32) *Gesture {
	return &Gesture{slop: slop}
}

// Begin starts tracking a press at p.
func (g *Gesture) Begin(p layout.Point) {
	g.active = true
	g.dragging = false
	g.start = p
	g.last = p
}

// Move reports the vertical distance moved since the last call while the
// press is a drag. It returns 0 before the slop is exceeded.
func (g *Gesture) Move(p layout.Point) int32 {
	if !g.active {
		return 0
	}

	if !g.dragging && (abs(p.X-g.start.X) > g.slop || abs(p.Y-g.start.Y) > g.slop) {
		g.dragging = true
	}
	if !g.dragging {
		return 0
	}

	dy := p.Y - g.last.Y
	g.last = p
	return dy
}

// End finishes the press and reports whether it was a tap.
func (g *Gesture) End(p layout.Point) bool {
	if !g.active {
		return false
	}
	g.Move(p)
	g.active = false
	return !g.dragging
}

func (g *Gesture) Active() bool {
	return g.active
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
