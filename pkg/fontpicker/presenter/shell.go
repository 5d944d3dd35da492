package presenter

import (
	"time"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/animation"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/constants"
)

// Phase is a step of the picker's presentation lifecycle.
type Phase int

const (
	PhaseConfigured  Phase = iota // Not yet on screen
	PhasePresenting               // Sliding in, scrim fading in
	PhaseInteractive              // Accepting input
	PhaseFadingOut                // Scrim fading out after a dismissal trigger
	PhaseDismissing               // Sliding out
	PhaseDismissed                // Off screen, dismissal delivered
)

func (p Phase) String() string {
	switch p {
	case PhaseConfigured:
		return "configured"
	case PhasePresenting:
		return "presenting"
	case PhaseInteractive:
		return "interactive"
	case PhaseFadingOut:
		return "fading_out"
	case PhaseDismissing:
		return "dismissing"
	case PhaseDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// DismissReason records what closed the picker.
type DismissReason int

const (
	DismissReasonNone       DismissReason = iota
	DismissReasonDone                     // Toolbar Done button
	DismissReasonOutsideTap               // Tap on the picker's background
	DismissReasonBack                     // Back button
	DismissReasonPower                    // Hardware power key
	DismissReasonQuit                     // Window closed
)

func (r DismissReason) String() string {
	switch r {
	case DismissReasonDone:
		return "done"
	case DismissReasonOutsideTap:
		return "outside_tap"
	case DismissReasonBack:
		return "back"
	case DismissReasonPower:
		return "power"
	case DismissReasonQuit:
		return "quit"
	default:
		return "none"
	}
}

// Shell sequences the scrim and panel transitions. All animations run to
// completion; a dismissal requested while presenting waits until the picker
// is interactive.
type Shell struct {
	showsScrim bool
	phase      Phase
	reason     DismissReason
	pending    DismissReason

	scrimIn  *animation.Fade
	scrimOut *animation.Fade
	slideIn  *animation.Fade
	slideOut *animation.Fade
}

// NewShell creates a shell. showsScrim enables the dimming overlay.
func NewShell(showsScrim bool) *Shell {
	return &Shell{
		showsScrim: showsScrim,
		scrimIn:    animation.NewFade(0, constants.ScrimOpacity, constants.ScrimFadeDuration),
		scrimOut:   animation.NewFade(constants.ScrimOpacity, 0, constants.ScrimFadeDuration),
		slideIn:    animation.NewFade(1, 0, constants.TransitionDuration),
		slideOut:   animation.NewFade(0, 1, constants.TransitionDuration),
	}
}

func (s *Shell) Phase() Phase {
	return s.phase
}

func (s *Shell) Reason() DismissReason {
	return s.reason
}

func (s *Shell) Interactive() bool {
	return s.phase == PhaseInteractive
}

// Present starts the entry transitions. It returns false if the shell has
// already been presented.
func (s *Shell) Present(now time.Time) bool {
	if s.phase != PhaseConfigured {
		return false
	}

	s.phase = PhasePresenting
	s.slideIn.Start(now)
	if s.showsScrim {
		s.scrimIn.Start(now)
	}
	return true
}

// BeginDismiss starts the dismissal sequence. It returns true when the
// sequence started now; a request made while presenting is deferred, and
// requests after the first are ignored.
func (s *Shell) BeginDismiss(reason DismissReason, now time.Time) bool {
	switch s.phase {
	case PhasePresenting:
		if s.pending == DismissReasonNone {
			s.pending = reason
		}
		return false
	case PhaseInteractive:
	default:
		return false
	}

	s.reason = reason
	if s.showsScrim {
		s.phase = PhaseFadingOut
		s.scrimOut.Start(now)
	} else {
		s.phase = PhaseDismissing
		s.slideOut.Start(now)
	}
	return true
}

// PendingDismiss reports a dismissal deferred until the entry transition ends.
func (s *Shell) PendingDismiss() DismissReason {
	return s.pending
}

// Update advances the lifecycle to now. It returns true exactly once, on the
// call that moves the shell to PhaseDismissed.
func (s *Shell) Update(now time.Time) bool {
	switch s.phase {
	case PhasePresenting:
		if s.slideIn.Done(now) && (!s.showsScrim || s.scrimIn.Done(now)) {
			s.phase = PhaseInteractive
		}
	case PhaseFadingOut:
		if s.scrimOut.Done(now) {
			s.phase = PhaseDismissing
			s.slideOut.Start(now)
		}
	case PhaseDismissing:
		if s.slideOut.Done(now) {
			s.phase = PhaseDismissed
			return true
		}
	}
	return false
}

// ScrimVisible reports whether the scrim is part of the view hierarchy.
// It is removed as soon as its fade-out completes.
func (s *Shell) ScrimVisible() bool {
	if !s.showsScrim {
		return false
	}
	switch s.phase {
	case PhasePresenting, PhaseInteractive, PhaseFadingOut:
		return true
	default:
		return false
	}
}

// ScrimAlpha returns the scrim opacity in [0,1] at now.
func (s *Shell) ScrimAlpha(now time.Time) float64 {
	if !s.ScrimVisible() {
		return 0
	}
	if s.phase == PhaseFadingOut {
		return s.scrimOut.Value(now)
	}
	return s.scrimIn.Value(now)
}

// PanelOffset returns how much of the panel is pushed below the host edge,
// from 0 (fully shown) to 1 (fully hidden).
func (s *Shell) PanelOffset(now time.Time) float64 {
	switch s.phase {
	case PhasePresenting:
		return s.slideIn.Value(now)
	case PhaseInteractive, PhaseFadingOut:
		return 0
	case PhaseDismissing:
		return s.slideOut.Value(now)
	default:
		return 1
	}
}
