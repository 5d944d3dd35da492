package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Screen identifies a screen. Applications define their own constants with iota.
type Screen int

// ScreenExit is returned by a TransitionFunc to stop the router.
const ScreenExit Screen = -1

var (
	// ErrNoTransition is returned by Run when OnTransition was never called.
	ErrNoTransition = errors.New("router: no transition function set")

	// ErrUnknownScreen is returned when a transition names an unregistered screen.
	ErrUnknownScreen = errors.New("router: screen not registered")
)

// ScreenFunc runs a screen to completion. input and result are screen specific.
type ScreenFunc func(ctx context.Context, input any) (result any, err error)

// TransitionFunc picks the next screen after from finished with result.
// Return ScreenExit to stop.
type TransitionFunc func(from Screen, result any, history *History) (next Screen, input any)

type route struct {
	name string
	fn   ScreenFunc
}

// Router runs registered screens until the transition function exits.
type Router struct {
	routes     map[Screen]route
	transition TransitionFunc
	history    *History
	logger     *slog.Logger
}

// New creates a router. A nil logger discards transition logs.
func New(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{
		routes:  make(map[Screen]route),
		history: NewHistory(),
		logger:  logger,
	}
}

// Register adds a screen under a name used in logs and errors.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.routes[screen] = route{name: name, fn: fn}
	return r
}

func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Name returns the registered name of screen.
func (r *Router) Name(screen Screen) string {
	if screen == ScreenExit {
		return "exit"
	}
	if rt, ok := r.routes[screen]; ok {
		return rt.name
	}
	return fmt.Sprintf("screen(%d)", int(screen))
}

// Run starts at start and keeps running screens until the transition
// function returns ScreenExit, a screen fails, or ctx is done. Cancellation is
// checked between screens; a running screen is never interrupted.
func (r *Router) Run(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rt, ok := r.routes[current]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownScreen, r.Name(current))
		}

		result, err := rt.fn(ctx, currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s: %w", rt.name, err)
		}

		next, nextInput := r.transition(current, result, r.history)
		r.logger.Debug("Screen transition",
			"from", rt.name,
			"to", r.Name(next),
			"history", r.history.Len(),
		)

		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// History returns the navigation history shared with the transition function.
func (r *Router) History() *History {
	return r.history
}
