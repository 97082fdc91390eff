// Package screen draws the arena onto ebiten images.
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pong/arena"
)

var (
	DefaultBackground = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	DefaultForeground = color.White
)

// Canvas implements arena.Canvas over an ebiten image. Bind it to the
// frame's target image before each draw; an unbound canvas drops
// everything.
type Canvas struct {
	Background color.Color
	Foreground color.Color
	target     *ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{
		Background: DefaultBackground,
		Foreground: DefaultForeground,
	}
}

// Bind sets the image subsequent calls draw onto.
func (c *Canvas) Bind(target *ebiten.Image) {
	c.target = target
}

func (c *Canvas) Clear() {
	if c.target == nil {
		return
	}
	c.target.Fill(c.Background)
}

func (c *Canvas) FillRect(r arena.Rect) {
	if c.target == nil {
		return
	}
	x, y, w, h := c.viewport().Project(r)
	vector.DrawFilledRect(c.target, x, y, w, h, c.Foreground, false)
}

// Text prints msg with ebiten's debug font, its top-left corner at the
// given NDC point.
func (c *Canvas) Text(x, y float32, msg string) {
	if c.target == nil {
		return
	}
	sx, sy := c.viewport().Point(x, y)
	ebitenutil.DebugPrintAt(c.target, msg, int(sx), int(sy))
}

func (c *Canvas) viewport() arena.Viewport {
	bounds := c.target.Bounds()
	return arena.Viewport{Width: bounds.Dx(), Height: bounds.Dy()}
}
