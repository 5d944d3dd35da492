// Package fontpicker presents a modal font selection list over a host screen.
//
// The picker lists the installed font families, each drawn in its own face,
// and reports selections and the final choice through a Delegate. It runs as
// a blocking call that owns the SDL event loop until the picker is dismissed:
//
//	fontpicker.Init(fontpicker.Options{WindowTitle: "Editor"})
//	defer fontpicker.Close()
//
//	settings := config.DefaultSettings()
//	settings.InitialFontName = "Courier"
//
//	picker := fontpicker.New(catalog.SystemSource{}, settings)
//	picker.SetDelegate(fontpicker.Delegate{
//	    OnSelect: func(font string) { preview(font) },
//	})
//	result, err := picker.Present(host)
//
// Behavior that does not depend on SDL lives in the presenter, catalog,
// selection, layout and animation packages.
package fontpicker

import (
	"log/slog"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/internal"
)

// WindowOptions selects the SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures SDL initialization.
type Options struct {
	WindowTitle       string        // Window title displayed in windowed mode
	WindowOptions     WindowOptions // SDL window flags (borderless, resizable, etc.)
	LogPath           string        // Full path for the log file including filename
	FlipFaceButtons   bool          // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	PowerButtonDevice string        // evdev device carrying the power key; empty disables it
	UIFontPath        string        // Toolbar font; empty uses the embedded Go font
	BackgroundImage   string        // Image drawn when Present is given no host
}

var initialized bool

// Init initializes SDL, the window, fonts and input handling.
// Must be called before Present.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	theme := internal.DefaultTheme()
	theme.FontPath = options.UIFontPath
	theme.BackgroundImagePath = options.BackgroundImage
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{DevicePath: options.PowerButtonDevice}

	if err := internal.Init(options.WindowTitle, options.WindowOptions, pbc); err != nil {
		return NewInfrastructureError("init", err)
	}

	initialized = true
	return nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
	initialized = false
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// GetWindow returns the SDL window hosting the picker, or nil before Init.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// ButtonPressed maps a keyboard or controller event to a virtual button press,
// so host screens share the picker's bindings. ok is false for releases,
// key repeats and unmapped input.
func ButtonPressed(event sdl.Event) (button constants.VirtualButton, ok bool) {
	processor := internal.GetInputProcessor()
	if processor == nil {
		return constants.VirtualButtonUnassigned, false
	}
	inputEvent := processor.ProcessSDLEvent(event)
	if inputEvent == nil || !inputEvent.Pressed || inputEvent.Repeat {
		return constants.VirtualButtonUnassigned, false
	}
	return inputEvent.Button, true
}
