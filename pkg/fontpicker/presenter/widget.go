// Package presenter holds the picker's behavior independent of any renderer:
// the virtualized list, the selection, the presentation lifecycle and the
// delegate callbacks. A renderer feeds it host size, taps, button presses and
// the clock, and draws what it reports.
package presenter

import (
	"errors"
	"log/slog"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/selection"
)

// ErrAlreadyPresented is returned when a widget instance is presented twice.
// Widgets are single use.
var ErrAlreadyPresented = errors.New("font picker already presented")

// Result is the final outcome of a presentation.
type Result struct {
	Font     string        // Selected font when dismissal began
	Selected bool          // False when nothing was selected
	Reason   DismissReason // What closed the picker
}

// Widget is one font picker instance.
type Widget struct {
	settings config.Settings
	catalog  *catalog.Catalog
	list     *List
	shell    *Shell
	delegate Delegate
	dims     layout.Dimensions
	logger   *slog.Logger

	presented atomic.Bool
	finished  bool
	result    Result
}

// New creates a widget over c. Settings are captured here and are not read
// again.
func New(c *catalog.Catalog, settings config.Settings, logger *slog.Logger) *Widget {
	if logger == nil {
		logger = slog.Default()
	}

	if settings.InitialFontName != "" && !c.Contains(settings.InitialFontName) {
		logger.Debug("Initial font not installed; starting without a selection", "font", settings.InitialFontName)
	}

	return &Widget{
		settings: settings,
		catalog:  c,
		list:     NewList(c, settings.InitialFontName),
		shell:    NewShell(settings.ShowsScrim()),
		logger:   logger,
	}
}

func (w *Widget) SetDelegate(d Delegate) {
	w.delegate = d
}

func (w *Widget) Settings() config.Settings {
	return w.settings
}

func (w *Widget) Catalog() *catalog.Catalog {
	return w.catalog
}

func (w *Widget) Dimensions() layout.Dimensions {
	return w.dims
}

func (w *Widget) Phase() Phase {
	return w.shell.Phase()
}

// Layout sizes the widget for a host of the given size.
func (w *Widget) Layout(hostWidth, hostHeight int32, scale float32) {
	w.dims = layout.Calculate(hostWidth, hostHeight, layout.ModeFor(w.settings.Fullscreen), scale)
	w.list.Resize(w.dims.RowHeight, w.dims.List.H)
}

// Present puts the widget on screen. The first pass over the visible rows
// applies the initial font.
func (w *Widget) Present(now time.Time) error {
	if !w.presented.CompareAndSwap(false, true) {
		return ErrAlreadyPresented
	}

	w.shell.Present(now)
	w.list.Rows()

	if !w.list.InitialApplied() && w.settings.InitialFontName != "" && w.catalog.Contains(w.settings.InitialFontName) {
		// The row was not realized because the list has no visible height.
		w.list.applyInitial()
	}

	w.logger.Debug("Font picker presented",
		"families", w.catalog.Len(),
		"fullscreen", w.settings.Fullscreen,
		"scrim", w.settings.ShowsScrim(),
	)

	return nil
}

// Rows returns the rows to draw this frame.
func (w *Widget) Rows() []Row {
	return w.list.Rows()
}

// Selection returns the currently selected font.
func (w *Widget) Selection() (string, bool) {
	return w.list.Selection()
}

// Tap handles a pointer tap at p in host coordinates.
func (w *Widget) Tap(p layout.Point, now time.Time) {
	if !w.shell.Interactive() {
		return
	}

	target := w.dims.HitTest(p)
	switch target {
	case layout.TargetDone:
		w.Dismiss(DismissReasonDone, now)
	case layout.TargetBackground:
		w.Dismiss(DismissReasonOutsideTap, now)
	case layout.TargetList:
		if index, ok := w.list.RowAt(p.Y - w.dims.List.Y); ok {
			w.toggle(index)
		}
	}
}

// Scroll moves the list by dy pixels.
func (w *Widget) Scroll(dy int32) {
	if !w.shell.Interactive() {
		return
	}
	w.list.Scroll(dy)
}

// Press handles a virtual button press.
func (w *Widget) Press(button constants.VirtualButton, now time.Time) {
	if !w.shell.Interactive() {
		return
	}

	switch button {
	case constants.VirtualButtonUp:
		w.list.MoveFocus(-1)
	case constants.VirtualButtonDown:
		w.list.MoveFocus(1)
	case constants.VirtualButtonL1:
		w.list.MoveFocus(-w.pageSize())
	case constants.VirtualButtonR1:
		w.list.MoveFocus(w.pageSize())
	case constants.VirtualButtonA:
		if index, ok := w.list.Focused(); ok {
			w.toggle(index)
		} else {
			w.list.MoveFocus(0)
		}
	case constants.VirtualButtonStart, constants.VirtualButtonX:
		w.Dismiss(DismissReasonDone, now)
	case constants.VirtualButtonB:
		w.Dismiss(DismissReasonBack, now)
	}
}

func (w *Widget) pageSize() int {
	if w.dims.RowHeight <= 0 {
		return 1
	}
	return max(int(w.dims.List.H/w.dims.RowHeight), 1)
}

func (w *Widget) toggle(index int) {
	change, font := w.list.Toggle(index)
	switch change {
	case selection.ChangeSelected:
		w.logger.Debug("Font selected", "font", font)
		w.delegate.selected(font)
	case selection.ChangeDeselected:
		w.logger.Debug("Font deselected", "font", font)
	}
}

// Dismiss begins dismissal. The selection is captured when the sequence
// starts; a request made while presenting is honored once the picker is
// interactive.
func (w *Widget) Dismiss(reason DismissReason, now time.Time) {
	if w.shell.BeginDismiss(reason, now) {
		w.capture(reason)
	}
}

func (w *Widget) capture(reason DismissReason) {
	font, ok := w.list.Selection()
	w.result = Result{Font: font, Selected: ok, Reason: reason}
	w.logger.Debug("Font picker dismissing", "reason", reason.String(), "font", font, "selected", ok)
}

// Update advances animations to now and delivers the dismissal callback once
// the picker has left the screen. It returns true when the widget is finished.
func (w *Widget) Update(now time.Time) bool {
	if w.finished {
		return true
	}

	wasPresenting := w.shell.Phase() == PhasePresenting
	if w.shell.Update(now) {
		w.finished = true
		w.delegate.dismissed(w.result.Font, w.result.Selected)
		return true
	}

	if wasPresenting && w.shell.Interactive() {
		if reason := w.shell.PendingDismiss(); reason != DismissReasonNone {
			w.Dismiss(reason, now)
		}
	}

	return false
}

func (w *Widget) Finished() bool {
	return w.finished
}

// Result returns the outcome. It is meaningful once Finished reports true.
func (w *Widget) Result() Result {
	return w.result
}

func (w *Widget) ScrimVisible() bool {
	return w.shell.ScrimVisible()
}

func (w *Widget) ScrimAlpha(now time.Time) float64 {
	return w.shell.ScrimAlpha(now)
}

// PanelOffset returns the panel's vertical displacement in pixels for the
// slide transitions.
func (w *Widget) PanelOffset(now time.Time) int32 {
	return int32(w.shell.PanelOffset(now) * float64(w.dims.Panel.H))
}
