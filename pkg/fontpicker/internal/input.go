package internal

import (
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputProcessor maps keyboard and game controller events to virtual buttons.
type InputProcessor struct {
	keyboard    map[sdl.Keycode]constants.VirtualButton
	controller  map[sdl.GameControllerButton]constants.VirtualButton
	controllers map[sdl.JoystickID]*sdl.GameController
}

var (
	inputProcessor  *InputProcessor
	flipFaceButtons bool
)

// SetFlipFaceButtons uses direct face button mapping (A=A, B=B) instead of
// the Nintendo-style swap.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

func InitInputProcessor() {
	if os.Getenv(constants.FlipFaceButtonsVar) != "" {
		flipFaceButtons = true
	}

	p := &InputProcessor{
		keyboard: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_SPACE:     constants.VirtualButtonA,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_d:         constants.VirtualButtonStart,
			sdl.K_PAGEUP:    constants.VirtualButtonL1,
			sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
		},
		controller: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}

	// SDL reports positions; handheld labels put A on the right.
	if flipFaceButtons {
		p.controller[sdl.CONTROLLER_BUTTON_A] = constants.VirtualButtonA
		p.controller[sdl.CONTROLLER_BUTTON_B] = constants.VirtualButtonB
		p.controller[sdl.CONTROLLER_BUTTON_X] = constants.VirtualButtonX
		p.controller[sdl.CONTROLLER_BUTTON_Y] = constants.VirtualButtonY
	} else {
		p.controller[sdl.CONTROLLER_BUTTON_A] = constants.VirtualButtonB
		p.controller[sdl.CONTROLLER_BUTTON_B] = constants.VirtualButtonA
		p.controller[sdl.CONTROLLER_BUTTON_X] = constants.VirtualButtonY
		p.controller[sdl.CONTROLLER_BUTTON_Y] = constants.VirtualButtonX
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.openController(i)
	}

	inputProcessor = p
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Opened game controller", "name", controller.Name(), "id", id)
}

// ProcessSDLEvent translates event into a virtual button event. It returns nil
// for events that do not map to a button. Controller hotplug is handled here.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := p.keyboard[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button, ok := p.controller[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			id := sdl.JoystickID(e.Which)
			if controller, ok := p.controllers[id]; ok {
				controller.Close()
				delete(p.controllers, id)
			}
		}
	}
	return nil
}

func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, controller := range inputProcessor.controllers {
		controller.Close()
		delete(inputProcessor.controllers, id)
	}
}
