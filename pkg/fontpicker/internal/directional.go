package internal

import (
	"time"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
)

// RepeatInput turns a held navigation button into a stream of repeats: one
// after the initial delay, then one per interval until release. Only buttons
// that move the list cursor repeat.
type RepeatInput struct {
	held        constants.VirtualButton
	since       time.Time
	delay       time.Duration
	interval    time.Duration
	hasRepeated bool
}

// NewRepeatInput uses a 300ms delay and 50ms interval.
func NewRepeatInput() RepeatInput {
	return NewRepeatInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

func NewRepeatInputWithTiming(delay, interval time.Duration) RepeatInput {
	return RepeatInput{delay: delay, interval: interval}
}

// Repeats reports whether the button auto-repeats while held.
func Repeats(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonL1, constants.VirtualButtonR1:
		return true
	}
	return false
}

// SetHeld records a press or release. The most recent press wins; releasing
// a button other than the held one is ignored.
func (r *RepeatInput) SetHeld(button constants.VirtualButton, pressed bool, now time.Time) {
	if !Repeats(button) {
		return
	}
	if pressed {
		r.held = button
		r.since = now
		r.hasRepeated = false
		return
	}
	if button == r.held {
		r.Reset()
	}
}

// Update returns the button to repeat this frame, or VirtualButtonUnassigned.
func (r *RepeatInput) Update(now time.Time) constants.VirtualButton {
	if r.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := r.interval
	if !r.hasRepeated {
		threshold = r.delay
	}

	if now.Sub(r.since) >= threshold {
		r.since = now
		r.hasRepeated = true
		return r.held
	}

	return constants.VirtualButtonUnassigned
}

func (r *RepeatInput) Reset() {
	r.held = constants.VirtualButtonUnassigned
	r.hasRepeated = false
}
