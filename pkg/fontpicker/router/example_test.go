package router_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/presenter"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/router"
)

const (
	ScreenDocument router.Screen = iota
	ScreenFontPicker
)

type DocumentInput struct {
	Font   string
	Resume *DocumentResume
}

type DocumentResume struct {
	ScrollY int
}

type DocumentResult struct {
	ChangeFont bool
	Font       string
	Resume     *DocumentResume
}

type PickerInput struct {
	InitialFont string
}

// Example shows a document screen handing off to the font picker and
// resuming with the chosen font.
func Example() {
	r := router.New(nil)

	visits := 0
	r.Register(ScreenDocument, "document", func(_ context.Context, input any) (any, error) {
		in := input.(DocumentInput)
		visits++

		if visits == 1 {
			fmt.Printf("Document: %s, opening picker\n", in.Font)
			return DocumentResult{ChangeFont: true, Font: in.Font, Resume: &DocumentResume{ScrollY: 240}}, nil
		}

		fmt.Printf("Document: %s at scroll %d\n", in.Font, in.Resume.ScrollY)
		return DocumentResult{}, nil
	})

	r.Register(ScreenFontPicker, "font_picker", func(_ context.Context, input any) (any, error) {
		in := input.(PickerInput)
		fmt.Printf("Picker: opened with %s\n", in.InitialFont)
		return &presenter.Result{Font: "Georgia", Selected: true, Reason: presenter.DismissReasonDone}, nil
	})

	r.OnTransition(func(from router.Screen, result any, history *router.History) (router.Screen, any) {
		switch from {
		case ScreenDocument:
			res := result.(DocumentResult)
			if res.ChangeFont {
				history.Push(from, DocumentInput{Font: res.Font}, res.Resume)
				return ScreenFontPicker, PickerInput{InitialFont: res.Font}
			}
		case ScreenFontPicker:
			picked := result.(*presenter.Result)
			if entry := history.Pop(); entry != nil {
				in := entry.Input.(DocumentInput)
				in.Resume = entry.Resume.(*DocumentResume)
				if picked.Selected {
					in.Font = picked.Font
				}
				return entry.Screen, in
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(context.Background(), ScreenDocument, DocumentInput{Font: "Courier"})

	// Output:
	// Document: Courier, opening picker
	// Picker: opened with Courier
	// Document: Georgia at scroll 240
}
