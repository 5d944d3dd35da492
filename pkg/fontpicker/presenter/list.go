package presenter

import (
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/selection"
)

// Row is a realized list row ready to draw.
type Row struct {
	Index    int
	Name     string
	Y        int32 // Top of the row relative to the list region
	Selected bool  // Draw the checkmark
	Focused  bool  // Draw the D-pad focus cursor
}

// List presents a catalog as a virtualized single-selection list.
type List struct {
	catalog  *catalog.Catalog
	tracker  *selection.Tracker
	viewport *layout.Viewport

	initialFont    string // cleared after its row is first realized
	initialApplied bool

	focus       int
	focusActive bool
}

// NewList creates a list over c. initialFont is ignored unless it names a
// family in the catalog.
func NewList(c *catalog.Catalog, initialFont string) *List {
	l := &List{
		catalog:  c,
		tracker:  selection.NewTracker(),
		viewport: layout.NewViewport(1, 0, c.Len()),
	}

	if index, ok := c.Index(initialFont); ok && initialFont != "" {
		l.initialFont = initialFont
		l.focus = index
	}

	return l
}

// Resize rebuilds the viewport for new row and list heights and scrolls the
// pending initial font, or the focused row, into view.
func (l *List) Resize(rowHeight, height int32) {
	l.viewport = layout.NewViewport(rowHeight, height, l.catalog.Len())
	l.viewport.ScrollToVisible(l.focus)
}

func (l *List) Len() int {
	return l.catalog.Len()
}

func (l *List) Viewport() *layout.Viewport {
	return l.viewport
}

// Rows realizes the rows currently inside the viewport.
func (l *List) Rows() []Row {
	first, last := l.viewport.VisibleRange()
	rows := make([]Row, 0, last-first)
	for i := first; i < last; i++ {
		rows = append(rows, l.realize(i))
	}
	return rows
}

func (l *List) realize(index int) Row {
	name := l.catalog.Name(index)

	if l.initialFont != "" && name == l.initialFont {
		l.applyInitial()
	}

	return Row{
		Index:    index,
		Name:     name,
		Y:        l.viewport.RowY(index),
		Selected: l.tracker.IsSelected(name),
		Focused:  l.focusActive && l.focus == index,
	}
}

// applyInitial marks the initial font selected and consumes the hint.
func (l *List) applyInitial() {
	if l.initialFont == "" {
		return
	}
	if !l.tracker.IsSelected(l.initialFont) {
		l.tracker.Toggle(l.initialFont)
	}
	l.initialFont = ""
	l.initialApplied = true
}

// InitialApplied reports whether the initial font hint has been consumed by
// marking its row.
func (l *List) InitialApplied() bool {
	return l.initialApplied
}

// Toggle applies a tap on row index and returns the resulting change and the
// row's font name.
func (l *List) Toggle(index int) (selection.Change, string) {
	if index < 0 || index >= l.catalog.Len() {
		return selection.ChangeNone, ""
	}

	// A user choice supersedes a hint whose row was never realized.
	l.initialFont = ""

	name := l.catalog.Name(index)
	l.focus = index
	return l.tracker.Toggle(name), name
}

// RowAt returns the row under y, measured from the top of the list region.
func (l *List) RowAt(y int32) (int, bool) {
	return l.viewport.RowAt(y)
}

func (l *List) Scroll(dy int32) {
	l.viewport.ScrollBy(dy)
}

// MoveFocus moves the D-pad cursor by delta rows, wrapping at either end.
// The first move only reveals the cursor.
func (l *List) MoveFocus(delta int) {
	n := l.catalog.Len()
	if n == 0 {
		return
	}

	if !l.focusActive {
		l.focusActive = true
	} else {
		l.focus = ((l.focus+delta)%n + n) % n
	}

	l.viewport.ScrollToVisible(l.focus)
}

// Focused returns the row under the D-pad cursor.
func (l *List) Focused() (int, bool) {
	if !l.focusActive || l.catalog.Len() == 0 {
		return 0, false
	}
	return l.focus, true
}

// Selection returns the currently selected font.
func (l *List) Selection() (string, bool) {
	return l.tracker.Current()
}
