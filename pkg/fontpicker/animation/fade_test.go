package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/animation"
)

func TestFadeUnstarted(t *testing.T) {
	f := animation.NewFade(0, 0.4, 300*time.Millisecond)
	now := time.Now()

	assert.False(t, f.Started())
	assert.False(t, f.Done(now))
	assert.Equal(t, 0.0, f.Value(now))
}

func TestFadeProgresses(t *testing.T) {
	f := animation.NewFade(0, 0.4, 300*time.Millisecond)
	f.Easing = animation.Linear
	t0 := time.Unix(100, 0)

	assert.True(t, f.Start(t0))
	assert.InDelta(t, 0.0, f.Value(t0), 1e-9)
	assert.InDelta(t, 0.2, f.Value(t0.Add(150*time.Millisecond)), 1e-9)
	assert.False(t, f.Done(t0.Add(299*time.Millisecond)))
	assert.True(t, f.Done(t0.Add(300*time.Millisecond)))
	assert.InDelta(t, 0.4, f.Value(t0.Add(time.Second)), 1e-9)
}

func TestFadeCannotRestart(t *testing.T) {
	f := animation.NewFade(0.4, 0, 300*time.Millisecond)
	t0 := time.Unix(100, 0)

	assert.True(t, f.Start(t0))
	assert.False(t, f.Start(t0.Add(200*time.Millisecond)))
	assert.True(t, f.Done(t0.Add(300*time.Millisecond)), "second Start must not push the end time back")
}

func TestFadeZeroDuration(t *testing.T) {
	f := animation.NewFade(0, 1, 0)
	t0 := time.Unix(100, 0)
	f.Start(t0)

	assert.True(t, f.Done(t0))
	assert.Equal(t, 1.0, f.Value(t0))
}

func TestEaseInOutEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, animation.EaseInOut(0))
	assert.Equal(t, 1.0, animation.EaseInOut(1))
	assert.InDelta(t, 0.5, animation.EaseInOut(0.5), 1e-9)
}
