package arena_test

import (
	"testing"

	"github.com/plus3/pong/arena"
	"github.com/stretchr/testify/assert"
)

func TestViewportPoint(t *testing.T) {
	v := arena.Viewport{Width: 800, Height: 600}

	tests := []struct {
		name   string
		x, y   float32
		sx, sy float32
	}{
		{"top left", -1, 1, 0, 0},
		{"bottom right", 1, -1, 800, 600},
		{"center", 0, 0, 400, 300},
		{"upper half", 0.5, 0.5, 600, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := v.Point(tt.x, tt.y)
			assert.Equal(t, tt.sx, sx)
			assert.Equal(t, tt.sy, sy)
		})
	}
}

func TestViewportProject(t *testing.T) {
	v := arena.Viewport{Width: 800, Height: 600}

	x, y, w, h := v.Project(arena.Rect{Left: -0.5, Right: 0.5, Top: 0.5, Bottom: -0.5})

	assert.Equal(t, float32(200), x)
	assert.Equal(t, float32(150), y)
	assert.Equal(t, float32(400), w)
	assert.Equal(t, float32(300), h)
}

func TestRectSize(t *testing.T) {
	r := arena.Rect{Left: -0.25, Right: 0.5, Top: 0.5, Bottom: 0.25}
	assert.Equal(t, float32(0.75), r.Width())
	assert.Equal(t, float32(0.25), r.Height())
}
