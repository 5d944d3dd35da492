// Package selection tracks the single chosen font of a picker.
package selection

// State is the tracker's current state.
type State int

const (
	NoSelection State = iota
	Selected
)

func (s State) String() string {
	switch s {
	case NoSelection:
		return "NoSelection"
	case Selected:
		return "Selected"
	default:
		return "Unknown"
	}
}

// Change describes the effect of a toggle.
type Change int

const (
	ChangeNone       Change = iota
	ChangeSelected          // a font became selected
	ChangeDeselected        // the selected font was tapped again and cleared
)

// Tracker holds at most one selected font. Selecting a new font replaces the
// previous one.
type Tracker struct {
	font  string
	state State
}

// NewTracker returns a tracker in NoSelection.
func NewTracker() *Tracker {
	return &Tracker{}
}

// NewTrackerWith returns a tracker preselected with font. An empty font
// yields NoSelection.
func NewTrackerWith(font string) *Tracker {
	t := &Tracker{}
	if font != "" {
		t.font = font
		t.state = Selected
	}
	return t
}

// Toggle applies a row tap for font.
func (t *Tracker) Toggle(font string) Change {
	if font == "" {
		return ChangeNone
	}

	if t.state == Selected && t.font == font {
		t.font = ""
		t.state = NoSelection
		return ChangeDeselected
	}

	t.font = font
	t.state = Selected
	return ChangeSelected
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Current returns the selected font, or false in NoSelection.
func (t *Tracker) Current() (string, bool) {
	if t.state != Selected {
		return "", false
	}
	return t.font, true
}

// IsSelected reports whether font is the current selection.
func (t *Tracker) IsSelected(font string) bool {
	return t.state == Selected && t.font == font
}
