package arena_test

import (
	"github.com/plus3/pong/arena"
)

// recordingCanvas keeps everything drawn since the last Clear.
type recordingCanvas struct {
	clears int
	rects  []arena.Rect
	texts  []string
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.rects = c.rects[:0]
	c.texts = c.texts[:0]
}

func (c *recordingCanvas) FillRect(r arena.Rect) {
	c.rects = append(c.rects, r)
}

func (c *recordingCanvas) Text(_, _ float32, msg string) {
	c.texts = append(c.texts, msg)
}

// exactSetup uses power-of-two sizes so edge arithmetic is exact in float32.
func exactSetup() arena.Setup {
	return arena.Setup{
		PaddleHalfWidth:  0.125,
		PaddleHalfHeight: 0.25,
		PaddleStep:       0.0625,
		PlayerX:          -0.5,
		EnemyX:           0.5,
		BallHalfWidth:    0.0625,
		BallHalfHeight:   0.0625,
		BallVelocity:     arena.Vec2{X: -0.0625, Y: 0.0625},
	}
}
