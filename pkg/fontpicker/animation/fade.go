// Package animation provides time-boxed value transitions driven by the
// render loop's clock.
package animation

import "time"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// EaseInOut accelerates from rest and decelerates to rest.
func EaseInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Fade interpolates a value from From to To over Duration. Once started it
// runs to completion; there is no way to cancel or restart it.
type Fade struct {
	From     float64
	To       float64
	Duration time.Duration
	Easing   Easing

	start   time.Time
	started bool
}

// NewFade creates an ease-in-out fade.
func NewFade(from, to float64, duration time.Duration) *Fade {
	return &Fade{From: from, To: to, Duration: duration, Easing: EaseInOut}
}

// Start begins the fade at now. It returns false if the fade was already started.
func (f *Fade) Start(now time.Time) bool {
	if f.started {
		return false
	}
	f.start = now
	f.started = true
	return true
}

func (f *Fade) Started() bool {
	return f.started
}

// Progress returns linear progress in [0,1]. An unstarted fade reports 0.
func (f *Fade) Progress(now time.Time) float64 {
	if !f.started {
		return 0
	}
	if f.Duration <= 0 {
		return 1
	}

	p := float64(now.Sub(f.start)) / float64(f.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// Value returns the interpolated value at now.
func (f *Fade) Value(now time.Time) float64 {
	easing := f.Easing
	if easing == nil {
		easing = Linear
	}
	return f.From + (f.To-f.From)*easing(f.Progress(now))
}

// Done reports whether the fade has started and reached its end value.
func (f *Fade) Done(now time.Time) bool {
	return f.started && f.Progress(now) >= 1
}
