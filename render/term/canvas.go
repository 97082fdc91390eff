// Package term draws the arena onto a terminal through tcell.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pong/arena"
)

// Canvas implements arena.Canvas over a tcell screen, one cell per
// character. Rectangles cover every cell they touch, so even the ball is
// at least one cell wide. The caller shows the screen after drawing.
type Canvas struct {
	screen tcell.Screen
	Fill   tcell.Style
	Label  tcell.Style
	Block  rune
}

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{
		screen: screen,
		Fill:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Label:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Block:  '█',
	}
}

func (c *Canvas) Clear() {
	c.screen.Clear()
}

func (c *Canvas) FillRect(r arena.Rect) {
	width, height := c.screen.Size()
	x, y, w, h := c.viewport().Project(r)

	x0, x1 := cellSpan(x, w, width)
	y0, y1 := cellSpan(y, h, height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.screen.SetContent(col, row, c.Block, nil, c.Fill)
		}
	}
}

// Text writes msg starting at the cell containing the NDC point. Runes past
// the right edge are dropped.
func (c *Canvas) Text(x, y float32, msg string) {
	width, height := c.screen.Size()
	sx, sy := c.viewport().Point(x, y)

	col, row := int(math.Floor(float64(sx))), int(math.Floor(float64(sy)))
	if row < 0 || row >= height {
		return
	}
	for _, ch := range msg {
		if col >= width {
			return
		}
		if col >= 0 {
			c.screen.SetContent(col, row, ch, nil, c.Label)
		}
		col++
	}
}

func (c *Canvas) viewport() arena.Viewport {
	width, height := c.screen.Size()
	return arena.Viewport{Width: width, Height: height}
}

// cellSpan returns the half-open cell range covering [start, start+size),
// clipped to [0, limit).
func cellSpan(start, size float32, limit int) (int, int) {
	lo := int(math.Floor(float64(start)))
	hi := int(math.Ceil(float64(start + size)))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, limit)
}
