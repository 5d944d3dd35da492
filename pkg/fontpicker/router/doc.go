// Package router moves a host application between its screens and the font
// picker with explicit data flow.
//
// Each screen is a function from an input to a result. A single transition
// function decides, from the screen that just finished and its result, which
// screen runs next and with what input. A History stack lets a screen resume
// where it was left, for example a document view returning from the picker
// with its scroll position intact.
//
//	const (
//	    ScreenDocument router.Screen = iota
//	    ScreenFontPicker
//	)
//
//	r := router.New(logger)
//	r.Register(ScreenDocument, "document", documentScreen)
//	r.Register(ScreenFontPicker, "font_picker", func(ctx context.Context, input any) (any, error) {
//	    settings := input.(config.Settings)
//	    return fontpicker.New(source, settings).Present(host)
//	})
//	r.OnTransition(func(from router.Screen, result any, history *router.History) (router.Screen, any) {
//	    switch from {
//	    case ScreenDocument:
//	        doc := result.(DocumentResult)
//	        if doc.ChangeFont {
//	            history.Push(from, doc.Input, doc.Scroll)
//	            return ScreenFontPicker, doc.Settings
//	        }
//	    case ScreenFontPicker:
//	        if entry := history.Pop(); entry != nil {
//	            return entry.Screen, resume(entry, result.(*fontpicker.Result))
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ctx, ScreenDocument, DocumentInput{})
package router
