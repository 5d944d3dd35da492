package presenter_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/presenter"
)

// Example drives a widget without a renderer: a host feeds it taps and the
// clock, and the delegate reports the outcome.
func Example() {
	c := catalog.Load(catalog.StaticSource{"Helvetica", "Arial", "Courier"}, nil)

	settings := config.DefaultSettings()
	settings.InitialFontName = "Courier"

	w := presenter.New(c, settings, quietLogger())
	w.SetDelegate(presenter.Delegate{
		OnSelect: func(font string) { fmt.Println("selected:", font) },
		OnDismiss: func(font string, ok bool) {
			if !ok {
				fmt.Println("dismissed without a font")
				return
			}
			fmt.Println("dismissed with:", font)
		},
	})
	w.Layout(1000, 1000, 1)

	now := time.Unix(0, 0)
	_ = w.Present(now)
	now = now.Add(constants.TransitionDuration)
	w.Update(now)

	font, _ := w.Selection()
	fmt.Println("initial:", font)

	// Third row, then the empty area above the picker.
	d := w.Dimensions()
	w.Tap(layout.Point{X: 10, Y: d.List.Y + 2*d.RowHeight + 1}, now)
	w.Tap(layout.Point{X: 10, Y: 10}, now)

	for !w.Update(now) {
		now = now.Add(constants.FrameInterval)
	}

	// Output:
	// initial: Courier
	// selected: Helvetica
	// dismissed with: Helvetica
}
