package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
)

var window *Window

// Init brings up SDL, the host window, fonts and input.
func Init(title string, winOpts WindowOptions, pbc PowerButtonConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init ttf: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image support unavailable", "error", err)
	}

	// Touch input arrives as finger events; keep SDL from also synthesizing mouse clicks.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	InitInputProcessor()

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, FullscreenDesktop: true}
		}
	}

	var err error
	window, err = initWindow(title, winOpts)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	scale := GetScaleFactor()
	if err := initFonts(scaledSize(constants.UIFontSize, scale), scaledSize(constants.PreviewFontSize, scale)); err != nil {
		return fmt.Errorf("load ui font: %w", err)
	}

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		powerWatcher, err = StartPowerButtonWatcher(pbc)
		if err != nil {
			GetInternalLogger().Warn("Power button unavailable", "device", pbc.DevicePath, "error", err)
		}
	}

	return nil
}

func scaledSize(points int, scale float32) int {
	return int(float32(points)*scale + 0.5)
}

func SDLCleanup() {
	powerWatcher.Stop()
	powerWatcher = nil
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
