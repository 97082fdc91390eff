package main

import (
	"fmt"
	"math"

	"github.com/plus3/pong/arena"
)

const maxViolations = 20

// Violation is one failed invariant.
type Violation struct {
	Frame   int64
	Message string
}

// Checker verifies the world after every frame: paddles stay inside the
// arena, every coordinate is finite, the ball keeps its size and speed.
type Checker struct {
	world    *arena.World
	speed    arena.Vec2
	found    []Violation
	total    int
	lastSeen arena.Scoreboard
}

func NewChecker(world *arena.World) *Checker {
	v := world.Ball.Shape().Velocity
	return &Checker{
		world: world,
		speed: arena.Vec2{X: abs(v.X), Y: abs(v.Y)},
	}
}

func (c *Checker) Check(frame int64) {
	w := c.world

	for name, paddle := range map[string]*arena.Shape{"player": w.Player.Shape(), "enemy": w.Enemy.Shape()} {
		if paddle.TopEdge() > arena.ArenaMax || paddle.BottomEdge() < arena.ArenaMin {
			c.fail(frame, "%s paddle left the arena: top %v bottom %v", name, paddle.TopEdge(), paddle.BottomEdge())
		}
		if paddle.Offset.X != 0 {
			c.fail(frame, "%s paddle moved horizontally: %v", name, paddle.Offset.X)
		}
	}

	ball := w.Ball.Shape()
	for _, v := range []float32{ball.Offset.X, ball.Offset.Y, ball.Velocity.X, ball.Velocity.Y} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			c.fail(frame, "ball has a non-finite value: offset %+v velocity %+v", ball.Offset, ball.Velocity)
			break
		}
	}
	if abs(ball.Velocity.X) != c.speed.X || abs(ball.Velocity.Y) != c.speed.Y {
		c.fail(frame, "ball speed changed: %+v", ball.Velocity)
	}
	if width := ball.RightEdge() - ball.LeftEdge(); abs(width-2*ball.HalfWidth()) > 1e-5 {
		c.fail(frame, "ball width drifted to %v", width)
	}
	if abs(ball.CenterY()) > arena.ArenaMax+c.speed.Y+1e-5 {
		c.fail(frame, "ball escaped vertically: y %v", ball.CenterY())
	}

	if w.Score != c.lastSeen {
		if ball.Offset != (arena.Vec2{}) {
			c.fail(frame, "ball not reset after a point: %+v", ball.Offset)
		}
		c.lastSeen = w.Score
	}
}

// Violations returns the recorded failures, capped, in frame order.
func (c *Checker) Violations() []Violation {
	return c.found
}

// Total returns the number of failures, including those past the cap.
func (c *Checker) Total() int {
	return c.total
}

func (c *Checker) fail(frame int64, format string, args ...any) {
	c.total++
	if len(c.found) < maxViolations {
		c.found = append(c.found, Violation{Frame: frame, Message: fmt.Sprintf(format, args...)})
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
