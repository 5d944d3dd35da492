package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/selection"
)

func TestNewTrackerStartsEmpty(t *testing.T) {
	tr := selection.NewTracker()

	assert.Equal(t, selection.NoSelection, tr.State())
	_, ok := tr.Current()
	assert.False(t, ok)
}

func TestNewTrackerWith(t *testing.T) {
	tr := selection.NewTrackerWith("Courier")
	font, ok := tr.Current()
	assert.True(t, ok)
	assert.Equal(t, "Courier", font)

	assert.Equal(t, selection.NoSelection, selection.NewTrackerWith("").State())
}

func TestToggleTransitions(t *testing.T) {
	tests := []struct {
		name     string
		taps     []string
		want     string
		wantOK   bool
		lastWant selection.Change
	}{
		{name: "select from empty", taps: []string{"Arial"}, want: "Arial", wantOK: true, lastWant: selection.ChangeSelected},
		{name: "replace selection", taps: []string{"Arial", "Helvetica"}, want: "Helvetica", wantOK: true, lastWant: selection.ChangeSelected},
		{name: "deselect", taps: []string{"Arial", "Arial"}, wantOK: false, lastWant: selection.ChangeDeselected},
		{name: "reselect after deselect", taps: []string{"Arial", "Arial", "Arial"}, want: "Arial", wantOK: true, lastWant: selection.ChangeSelected},
		{name: "empty name ignored", taps: []string{"Arial", ""}, want: "Arial", wantOK: true, lastWant: selection.ChangeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := selection.NewTracker()
			var last selection.Change
			for _, tap := range tt.taps {
				last = tr.Toggle(tap)
			}

			font, ok := tr.Current()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, font)
			assert.Equal(t, tt.lastWant, last)
		})
	}
}

func TestSingleSelectionInvariant(t *testing.T) {
	tr := selection.NewTracker()
	tr.Toggle("Arial")
	tr.Toggle("Courier")

	assert.True(t, tr.IsSelected("Courier"))
	assert.False(t, tr.IsSelected("Arial"))
}
