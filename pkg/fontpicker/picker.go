package fontpicker

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/internal"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/layout"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/locale"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/presenter"
)

// Host draws the screen the picker is presented over. bounds covers the
// whole window. Present calls it every frame before drawing the picker.
type Host interface {
	Render(renderer *sdl.Renderer, bounds sdl.Rect)
}

// HostFunc adapts a function to Host.
type HostFunc func(renderer *sdl.Renderer, bounds sdl.Rect)

func (f HostFunc) Render(renderer *sdl.Renderer, bounds sdl.Rect) {
	f(renderer, bounds)
}

// Picker is one font picker. It is single use: create a new Picker for each
// presentation.
type Picker struct {
	widget    *presenter.Widget
	localizer *locale.Localizer
}

// New enumerates the fonts from source and creates a picker. The catalog is
// loaded once, here; enumeration failures leave the list empty.
func New(source catalog.Source, settings config.Settings) *Picker {
	logger := internal.GetInternalLogger()

	bundle, err := locale.NewBundle()
	if err != nil {
		logger.Error("Failed to load translations", "error", err)
	}

	return &Picker{
		widget:    presenter.New(catalog.Load(source, logger), settings, logger),
		localizer: locale.New(bundle, settings.Language),
	}
}

// SetDelegate sets the callbacks. Set before Present.
func (p *Picker) SetDelegate(d Delegate) {
	p.widget.SetDelegate(d)
}

// Catalog returns the families the picker lists.
func (p *Picker) Catalog() *catalog.Catalog {
	return p.widget.Catalog()
}

// Present shows the picker over host and blocks until it has been dismissed
// and has left the screen. host may be nil, in which case the theme
// background is drawn. The delegate's OnDismiss runs before Present returns.
func (p *Picker) Present(host Host) (*Result, error) {
	window := internal.GetWindow()
	if !initialized || window == nil {
		return nil, ErrNotInitialized
	}

	processor := internal.GetInputProcessor()
	logger := internal.GetInternalLogger()

	width, height := window.Size()
	p.widget.Layout(width, height, internal.GetScaleFactor())

	view, err := newPickerView(window.Renderer, p.widget, p.localizer.Done())
	if err != nil {
		return nil, NewInfrastructureError("render", err)
	}
	defer view.destroy()

	if err := p.widget.Present(time.Now()); err != nil {
		return nil, err
	}

	ctrl := &pickerController{
		widget:  p.widget,
		window:  window,
		repeat:  internal.NewRepeatInput(),
		gesture: presenter.NewGesture(int32(float32(constants.TapSlop) * p.widget.Dimensions().Scale)),
		fingers: make(map[sdl.FingerID]bool),
	}

	for {
		if event := sdl.WaitEventTimeout(int(constants.FrameInterval.Milliseconds())); event != nil {
			for ; event != nil; event = sdl.PollEvent() {
				ctrl.handleEvent(processor, event, time.Now())
			}
		}

		now := time.Now()
		ctrl.handleRepeats(now)

		if internal.GetPowerButtonWatcher().TakePress() {
			p.widget.Dismiss(DismissReasonPower, now)
		}

		finished := p.widget.Update(now)

		view.render(host, now, finished)
		window.Present()

		if finished {
			break
		}
	}

	result := p.widget.Result()
	logger.Debug("Font picker finished", "font", result.Font, "selected", result.Selected, "reason", result.Reason.String())

	return &result, nil
}

// FontPicker presents a picker over the theme background, listing the
// system's installed fonts.
func FontPicker(settings config.Settings, delegate Delegate) (*Result, error) {
	picker := New(catalog.SystemSource{Logger: internal.GetInternalLogger()}, settings)
	picker.SetDelegate(delegate)
	return picker.Present(nil)
}

type pickerController struct {
	widget  *presenter.Widget
	window  *internal.Window
	repeat  internal.RepeatInput
	gesture *presenter.Gesture
	fingers map[sdl.FingerID]bool
}

func (pc *pickerController) handleEvent(processor *internal.InputProcessor, event sdl.Event, now time.Time) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		pc.widget.Dismiss(DismissReasonQuit, now)

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			w, h := pc.window.Size()
			pc.widget.Layout(w, h, internal.GetScaleFactor())
		}

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil || inputEvent.Repeat {
			return
		}
		pc.repeat.SetHeld(inputEvent.Button, inputEvent.Pressed, now)
		if inputEvent.Pressed {
			pc.widget.Press(inputEvent.Button, now)
		}

	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return
		}
		p := pc.mousePoint(e.X, e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			pc.gesture.Begin(p)
		} else if pc.gesture.End(p) {
			pc.widget.Tap(p, now)
		}

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.State&sdl.ButtonLMask() == 0 {
			return
		}
		pc.drag(pc.mousePoint(e.X, e.Y))

	case *sdl.MouseWheelEvent:
		dy := e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		pc.widget.Scroll(-dy * pc.widget.Dimensions().RowHeight)

	case *sdl.TouchFingerEvent:
		pc.handleFinger(e, now)
	}
}

// handleFinger tracks the first finger down; multi-touch is ignored.
func (pc *pickerController) handleFinger(e *sdl.TouchFingerEvent, now time.Time) {
	w, h := pc.window.Size()
	p := layout.Point{X: int32(e.X * float32(w)), Y: int32(e.Y * float32(h))}

	switch e.Type {
	case sdl.FINGERDOWN:
		if len(pc.fingers) == 0 {
			pc.gesture.Begin(p)
		}
		pc.fingers[e.FingerID] = true
	case sdl.FINGERMOTION:
		if len(pc.fingers) == 1 {
			pc.drag(p)
		}
	case sdl.FINGERUP:
		single := len(pc.fingers) == 1
		delete(pc.fingers, e.FingerID)
		if single && pc.gesture.End(p) {
			pc.widget.Tap(p, now)
		}
	}
}

func (pc *pickerController) drag(p layout.Point) {
	if dy := pc.gesture.Move(p); dy != 0 {
		pc.widget.Scroll(-dy)
	}
}

func (pc *pickerController) mousePoint(x, y int32) layout.Point {
	px, py := pc.window.ToPixels(x, y)
	return layout.Point{X: px, Y: py}
}

func (pc *pickerController) handleRepeats(now time.Time) {
	if button := pc.repeat.Update(now); button != constants.VirtualButtonUnassigned {
		pc.widget.Press(button, now)
	}
}
