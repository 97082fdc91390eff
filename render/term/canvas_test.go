package term_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pong/arena"
	"github.com/plus3/pong/render/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestCanvasFillRect(t *testing.T) {
	screen := newScreen(t, 80, 24)
	canvas := term.NewCanvas(screen)

	canvas.FillRect(arena.Rect{Left: -0.5, Right: 0.5, Top: 0.5, Bottom: -0.5})

	filled := 0
	for y := range 24 {
		for x := range 80 {
			if cellAt(screen, x, y) == canvas.Block {
				filled++
			}
		}
	}
	assert.Equal(t, 40*12, filled)

	assert.Equal(t, canvas.Block, cellAt(screen, 20, 6), "top-left corner")
	assert.Equal(t, canvas.Block, cellAt(screen, 59, 17), "bottom-right corner")
	assert.NotEqual(t, canvas.Block, cellAt(screen, 19, 6))
	assert.NotEqual(t, canvas.Block, cellAt(screen, 60, 6))
	assert.NotEqual(t, canvas.Block, cellAt(screen, 20, 5))
	assert.NotEqual(t, canvas.Block, cellAt(screen, 20, 18))
}

func TestCanvasFillRectFlipsY(t *testing.T) {
	screen := newScreen(t, 80, 24)
	canvas := term.NewCanvas(screen)

	canvas.FillRect(arena.Rect{Left: -1, Right: -0.5, Top: 1, Bottom: 0.5})

	assert.Equal(t, canvas.Block, cellAt(screen, 0, 0), "positive y is at the top of the terminal")
	assert.NotEqual(t, canvas.Block, cellAt(screen, 0, 23))
}

func TestCanvasSmallRectCoversACell(t *testing.T) {
	screen := newScreen(t, 80, 24)
	canvas := term.NewCanvas(screen)

	canvas.FillRect(arena.Rect{Left: -0.001, Right: 0.001, Top: 0.001, Bottom: -0.001})

	assert.Equal(t, canvas.Block, cellAt(screen, 39, 11))
	assert.Equal(t, canvas.Block, cellAt(screen, 40, 12))
}

func TestCanvasClipsToScreen(t *testing.T) {
	screen := newScreen(t, 10, 10)
	canvas := term.NewCanvas(screen)

	assert.NotPanics(t, func() {
		canvas.FillRect(arena.Rect{Left: 0.5, Right: 1.5, Top: 1.5, Bottom: 0.5})
		canvas.Text(0.9, 0, "overflowing")
		canvas.Text(0, 3, "offscreen")
	})
	assert.Equal(t, canvas.Block, cellAt(screen, 9, 0))
}

func TestCanvasText(t *testing.T) {
	screen := newScreen(t, 80, 24)
	canvas := term.NewCanvas(screen)

	canvas.Text(-0.125, 0.95, "1 : 2")

	row := ""
	for x := 35; x < 40; x++ {
		row += string(cellAt(screen, x, 0))
	}
	assert.Equal(t, "1 : 2", row)
}

func TestCanvasClear(t *testing.T) {
	screen := newScreen(t, 80, 24)
	canvas := term.NewCanvas(screen)

	canvas.FillRect(arena.Rect{Left: -0.5, Right: 0.5, Top: 0.5, Bottom: -0.5})
	canvas.Clear()

	assert.NotEqual(t, canvas.Block, cellAt(screen, 40, 12))
}

func TestCanvasDrawsScene(t *testing.T) {
	screen := newScreen(t, 80, 24)
	canvas := term.NewCanvas(screen)
	driver := arena.NewDriver(arena.NewWorld(arena.DefaultSetup()), nil, nil)

	driver.Once(arena.Input{}, canvas)

	// player paddle spans x in [-0.94, -0.86], so column 2
	assert.Equal(t, canvas.Block, cellAt(screen, 2, 12))
	// enemy paddle mirrors it
	assert.Equal(t, canvas.Block, cellAt(screen, 77, 12))
}
