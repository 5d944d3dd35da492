package main

import (
	"context"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/router"
)

const (
	screenDocument router.Screen = iota
	screenFontPicker
)

type documentAction int

const (
	documentActionQuit documentAction = iota
	documentActionChangeFont
)

type documentResult struct {
	action documentAction
}

// pickerInput is what the picker screen is opened with: the font shown in
// the document when the user asked to change it.
type pickerInput struct {
	current string
}

type demo struct {
	catalog  *catalog.Catalog
	settings config.Settings
	document *documentView
	logger   *slog.Logger
}

func newDemo(c *catalog.Catalog, settings config.Settings, logger *slog.Logger) *demo {
	font := settings.InitialFontName
	if !c.Contains(font) && c.Len() > 0 {
		font = c.Name(0)
	}

	return &demo{
		catalog:  c,
		settings: settings,
		document: newDocumentView(c, font),
		logger:   logger,
	}
}

func (d *demo) close() {
	d.document.close()
}

func (d *demo) run(ctx context.Context) error {
	r := router.New(d.logger)
	r.Register(screenDocument, "document", d.documentScreen)
	r.Register(screenFontPicker, "font_picker", d.pickerScreen)
	r.OnTransition(d.transition)

	return r.Run(ctx, screenDocument, nil)
}

func (d *demo) transition(from router.Screen, result any, history *router.History) (router.Screen, any) {
	switch from {
	case screenDocument:
		if result.(documentResult).action == documentActionChangeFont {
			history.Push(from, nil, nil)
			return screenFontPicker, pickerInput{current: d.document.font()}
		}

	case screenFontPicker:
		res := result.(*fontpicker.Result)
		if res.Reason == fontpicker.DismissReasonQuit || res.Reason == fontpicker.DismissReasonPower {
			return router.ScreenExit, nil
		}
		if entry := history.Pop(); entry != nil {
			return entry.Screen, entry.Input
		}
	}

	return router.ScreenExit, nil
}

// documentScreen shows the document until the user asks for the picker or quits.
func (d *demo) documentScreen(ctx context.Context, _ any) (any, error) {
	window := fontpicker.GetWindow()

	for {
		if ctx.Err() != nil {
			return documentResult{action: documentActionQuit}, nil
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return documentResult{action: documentActionQuit}, nil
			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONUP && e.Which != sdl.TOUCH_MOUSEID {
					return documentResult{action: documentActionChangeFont}, nil
				}
			case *sdl.TouchFingerEvent:
				if e.Type == sdl.FINGERUP {
					return documentResult{action: documentActionChangeFont}, nil
				}
			}

			if button, ok := fontpicker.ButtonPressed(event); ok {
				switch button {
				case constants.VirtualButtonA, constants.VirtualButtonStart:
					return documentResult{action: documentActionChangeFont}, nil
				case constants.VirtualButtonB:
					return documentResult{action: documentActionQuit}, nil
				}
			}
		}

		w, h := window.Size()
		d.document.Render(window.Renderer, sdl.Rect{X: 0, Y: 0, W: w, H: h})
		window.Present()
	}
}

// pickerScreen presents the picker over the document. Selections preview
// live; dismissing with nothing selected restores the font the document had.
func (d *demo) pickerScreen(_ context.Context, input any) (any, error) {
	in := input.(pickerInput)

	settings := d.settings
	settings.InitialFontName = in.current

	picker := fontpicker.New(d.catalog, settings)
	picker.SetDelegate(fontpicker.Delegate{
		OnSelect: func(font string) {
			d.document.setFont(font)
		},
		OnDismiss: func(font string, ok bool) {
			if !ok {
				d.document.setFont(in.current)
				return
			}
			d.document.setFont(font)
			d.logger.Info("Font chosen", "font", font)
		},
	})

	return picker.Present(d.document)
}
