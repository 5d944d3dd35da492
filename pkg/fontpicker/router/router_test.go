package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/router"
)

func echo(_ context.Context, input any) (any, error) {
	return input, nil
}

func TestRunWithoutTransition(t *testing.T) {
	r := router.New(nil).Register(ScreenDocument, "document", echo)

	assert.ErrorIs(t, r.Run(context.Background(), ScreenDocument, nil), router.ErrNoTransition)
}

func TestRunUnknownScreen(t *testing.T) {
	r := router.New(nil).
		Register(ScreenDocument, "document", echo).
		OnTransition(func(router.Screen, any, *router.History) (router.Screen, any) {
			return ScreenFontPicker, nil
		})

	err := r.Run(context.Background(), ScreenDocument, nil)
	require.ErrorIs(t, err, router.ErrUnknownScreen)
	assert.Contains(t, err.Error(), "screen(1)")
}

func TestRunWrapsScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := router.New(nil).
		Register(ScreenFontPicker, "font_picker", func(context.Context, any) (any, error) { return nil, boom }).
		OnTransition(func(router.Screen, any, *router.History) (router.Screen, any) {
			return router.ScreenExit, nil
		})

	err := r.Run(context.Background(), ScreenFontPicker, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "font_picker")
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runs := 0

	r := router.New(nil).
		Register(ScreenDocument, "document", func(context.Context, any) (any, error) {
			runs++
			cancel()
			return nil, nil
		}).
		OnTransition(func(router.Screen, any, *router.History) (router.Screen, any) {
			return ScreenDocument, nil
		})

	assert.ErrorIs(t, r.Run(ctx, ScreenDocument, nil), context.Canceled)
	assert.Equal(t, 1, runs)
}

func TestName(t *testing.T) {
	r := router.New(nil).Register(ScreenDocument, "document", echo)

	assert.Equal(t, "document", r.Name(ScreenDocument))
	assert.Equal(t, "exit", r.Name(router.ScreenExit))
	assert.Equal(t, "screen(7)", r.Name(router.Screen(7)))
}

func TestHistory(t *testing.T) {
	h := router.NewHistory()
	assert.True(t, h.IsEmpty())
	assert.Nil(t, h.Pop())
	assert.Nil(t, h.Peek())

	h.Push(ScreenDocument, "a", 1)
	h.Push(ScreenFontPicker, "b", nil)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, ScreenFontPicker, h.Peek().Screen)

	entry := h.Pop()
	require.NotNil(t, entry)
	assert.Equal(t, "b", entry.Input)

	h.Clear()
	assert.True(t, h.IsEmpty())
}
