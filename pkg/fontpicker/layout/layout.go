// Package layout computes where the picker's toolbar, hairline and list sit on
// the host screen and resolves taps against those regions.
package layout

import (
	"math"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
)

// Point is a position in host coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is an axis-aligned rectangle in host coordinates.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Offset returns r moved down by dy.
func (r Rect) Offset(dy int32) Rect {
	r.Y += dy
	return r
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Mode selects how much of the host the picker occupies.
type Mode int

const (
	ModePartial    Mode = iota // Bottom portion of the host, like an on-screen keyboard
	ModeFullscreen             // Entire host, top to bottom
)

func ModeFor(fullscreen bool) Mode {
	if fullscreen {
		return ModeFullscreen
	}
	return ModePartial
}

// Dimensions holds the computed regions for one host size.
// This is computed once from the host size and reused for rendering and hit testing.
type Dimensions struct {
	Mode       Mode
	Scale      float32
	Host       Rect
	Panel      Rect // Toolbar and list together
	Toolbar    Rect
	Hairline   Rect
	DoneButton Rect
	List       Rect
	RowHeight  int32
	RowInset   Padding
}

// Calculate lays out the picker on a host of the given size.
// In partial mode the list takes a fixed fraction of the host height and the
// toolbar is pinned directly above it. In fullscreen the toolbar is pinned to
// the top and the list fills the remainder.
func Calculate(hostWidth, hostHeight int32, mode Mode, scale float32) Dimensions {
	if scale <= 0 {
		scale = 1
	}

	toolbarHeight := scaled(constants.ToolbarHeight, scale)
	hairlineHeight := scaled(constants.HairlineHeight, scale)
	doneWidth := scaled(constants.DoneButtonWidth, scale)

	host := Rect{X: 0, Y: 0, W: hostWidth, H: hostHeight}

	var toolbar, list Rect
	switch mode {
	case ModeFullscreen:
		toolbar = Rect{X: 0, Y: 0, W: hostWidth, H: toolbarHeight}
		list = Rect{X: 0, Y: toolbarHeight, W: hostWidth, H: max(hostHeight-toolbarHeight, 0)}
	default:
		listHeight := int32(math.Round(float64(hostHeight) * constants.PartialHeightRatio))
		list = Rect{X: 0, Y: hostHeight - listHeight, W: hostWidth, H: listHeight}
		toolbar = Rect{X: 0, Y: max(list.Y-toolbarHeight, 0), W: hostWidth, H: min(toolbarHeight, list.Y)}
	}

	hairline := Rect{X: 0, Y: toolbar.Y + toolbar.H - hairlineHeight, W: hostWidth, H: hairlineHeight}

	doneButton := Rect{
		X: max(hostWidth-doneWidth, 0),
		Y: toolbar.Y,
		W: min(doneWidth, hostWidth),
		H: toolbar.H,
	}

	panel := Rect{X: 0, Y: toolbar.Y, W: hostWidth, H: list.Y + list.H - toolbar.Y}

	inset := scaled(constants.RowInset, scale)

	return Dimensions{
		Mode:       mode,
		Scale:      scale,
		Host:       host,
		Panel:      panel,
		Toolbar:    toolbar,
		Hairline:   hairline,
		DoneButton: doneButton,
		List:       list,
		RowHeight:  scaled(constants.RowHeight, scale),
		RowInset:   Padding{Top: 0, Right: inset, Bottom: 0, Left: inset},
	}
}

// Target identifies what a tap landed on.
type Target int

const (
	TargetNone       Target = iota // Outside the host entirely
	TargetBackground               // The picker's own background surface
	TargetToolbar                  // Toolbar chrome other than the Done button
	TargetDone
	TargetList
)

func (t Target) String() string {
	switch t {
	case TargetBackground:
		return "background"
	case TargetToolbar:
		return "toolbar"
	case TargetDone:
		return "done"
	case TargetList:
		return "list"
	default:
		return "none"
	}
}

// HitTest resolves p to the innermost region under it. Only points that land
// on no descendant surface resolve to TargetBackground.
func (d Dimensions) HitTest(p Point) Target {
	switch {
	case !d.Host.Contains(p):
		return TargetNone
	case d.DoneButton.Contains(p):
		return TargetDone
	case d.Toolbar.Contains(p):
		return TargetToolbar
	case d.List.Contains(p):
		return TargetList
	default:
		return TargetBackground
	}
}

func scaled(v int32, scale float32) int32 {
	s := int32(float32(v) * scale)
	if s < 1 && v > 0 {
		return 1
	}
	return s
}
