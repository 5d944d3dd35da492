package internal

import (
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes the handheld's power key input device.
type PowerButtonConfig struct {
	DevicePath string       // e.g. /dev/input/event1
	ButtonCode evdev.EvCode // KEY_POWER unless the device reports otherwise
}

// PowerButtonWatcher reads the power key from evdev on its own goroutine and
// raises a flag the render loop polls. A press dismisses the open picker.
type PowerButtonWatcher struct {
	device  *evdev.InputDevice
	code    evdev.EvCode
	pressed *atomic.Bool
	wg      sync.WaitGroup
}

var powerWatcher *PowerButtonWatcher

// StartPowerButtonWatcher opens the device and starts watching it.
func StartPowerButtonWatcher(pbc PowerButtonConfig) (*PowerButtonWatcher, error) {
	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		return nil, err
	}

	code := pbc.ButtonCode
	if code == 0 {
		code = evdev.KEY_POWER
	}

	w := &PowerButtonWatcher{
		device:  device,
		code:    code,
		pressed: atomic.NewBool(false),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *PowerButtonWatcher) run() {
	defer w.wg.Done()

	for {
		event, err := w.device.ReadOne()
		if err != nil {
			// Closing the device unblocks ReadOne with an error.
			return
		}
		if event.Type != evdev.EV_KEY || event.Code != w.code {
			continue
		}
		// Value 0 is release; act on release so the key-up does not leak to the host.
		if event.Value == 0 {
			w.pressed.Store(true)
		}
	}
}

// TakePress reports a press since the last call and clears it.
func (w *PowerButtonWatcher) TakePress() bool {
	if w == nil {
		return false
	}
	return w.pressed.CompareAndSwap(true, false)
}

// Stop closes the device and waits for the reader goroutine to exit.
func (w *PowerButtonWatcher) Stop() {
	if w == nil {
		return
	}
	w.device.Close()
	w.wg.Wait()
}

// GetPowerButtonWatcher returns the active watcher, or nil when none is running.
func GetPowerButtonWatcher() *PowerButtonWatcher {
	return powerWatcher
}
