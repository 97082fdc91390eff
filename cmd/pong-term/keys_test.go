package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pong/arena"
	"github.com/plus3/pong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) (*Tracker, *time.Time) {
	t.Helper()
	bindings, err := config.Default().Bindings()
	require.NoError(t, err)

	tracker, err := NewTracker(bindings)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return now }
	return tracker, &now
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		name string
		want binding
	}{
		{"W", binding{key: tcell.KeyRune, char: 'w'}},
		{"Digit1", binding{key: tcell.KeyRune, char: '1'}},
		{"Space", binding{key: tcell.KeyRune, char: ' '}},
		{"ArrowUp", binding{key: tcell.KeyUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBinding(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseBinding("NumpadEnter")
	assert.ErrorContains(t, err, "unknown key name")
}

func TestTrackerHoldWindow(t *testing.T) {
	tracker, now := newTestTracker(t)

	assert.True(t, tracker.Press(runeEvent('W')))
	assert.True(t, tracker.Poll().Pressed(arena.KeyMoveUp), "uppercase matches too")

	*now = now.Add(100 * time.Millisecond)
	assert.True(t, tracker.Poll().Pressed(arena.KeyMoveUp))

	*now = now.Add(100 * time.Millisecond)
	assert.False(t, tracker.Poll().Pressed(arena.KeyMoveUp), "released after the hold window")
}

func TestTrackerArrowKeys(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Press(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	tracker.Press(runeEvent('w'))

	in := tracker.Poll()
	assert.True(t, in.Pressed(arena.KeyMoveDown))
	assert.True(t, in.Pressed(arena.KeyMoveUp))
}

func TestTrackerPauseIsEdgeTriggered(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.Press(runeEvent('p'))

	assert.True(t, tracker.Poll().Pressed(arena.KeyPause))
	assert.False(t, tracker.Poll().Pressed(arena.KeyPause), "consumed by the first poll")
}

func TestTrackerIgnoresUnboundKeys(t *testing.T) {
	tracker, _ := newTestTracker(t)

	assert.False(t, tracker.Press(runeEvent('x')))
	assert.Equal(t, 0, tracker.Poll().Len())
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(runeEvent('q')))
	assert.False(t, isQuit(runeEvent('w')))
}

func TestLoopDrawsFrames(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)

	tracker, _ := newTestTracker(t)
	driver := arena.NewDriver(arena.NewWorld(arena.DefaultSetup()), nil, nil)

	done := make(chan struct{})
	go func() {
		loop(screen, driver, tracker, time.Millisecond)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on escape")
	}
	screen.Fini()

	assert.Positive(t, driver.Frames())
}
