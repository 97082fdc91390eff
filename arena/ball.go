package arena

import "fmt"

// Score is the outcome of a single ball step.
type Score int

const (
	ScoreNone Score = iota
	ScorePlayer
	ScoreEnemy
)

func (s Score) String() string {
	switch s {
	case ScoreNone:
		return "none"
	case ScorePlayer:
		return "player"
	case ScoreEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Ball is the physics-driven entity bouncing between the paddles.
type Ball struct {
	shape Shape
}

// NewBall creates a ball resting at the arena center and moving with
// velocity. Both velocity components must be non-zero.
func NewBall(halfWidth, halfHeight float32, velocity Vec2) *Ball {
	if velocity.X == 0 || velocity.Y == 0 {
		panic(fmt.Sprintf("arena: ball velocity must be non-zero on both axes, got %+v", velocity))
	}

	shape := NewShape(0, 0, halfWidth, halfHeight)
	shape.Velocity = velocity
	return &Ball{shape: shape}
}

// Shape exposes the ball's shape for collision queries and inspection.
func (b *Ball) Shape() *Shape {
	return &b.shape
}

// Update advances the ball by one frame against the two paddles.
// The horizontal move and score check run first; a frame that scores ends
// with the ball back at its start location and nothing else applied.
func (b *Ball) Update(player, enemy *Shape) Score {
	if score := b.moveX(); score != ScoreNone {
		return score
	}
	b.moveY()

	if InCollision(&b.shape, player) != CollisionNone {
		b.shape.SetCenterX(player.RightEdge() + b.shape.halfWidth)
		b.shape.Velocity.X = abs(b.shape.Velocity.X)
	}

	if InCollision(&b.shape, enemy) != CollisionNone {
		b.shape.SetCenterX(enemy.LeftEdge() - b.shape.halfWidth)
		b.shape.Velocity.X = -abs(b.shape.Velocity.X)
	}

	return ScoreNone
}

// Reset returns the ball to its start location. Velocity is kept, so the
// serve continues in the direction the ball was last travelling.
func (b *Ball) Reset() {
	b.shape.Offset = Vec2{}
}

func (b *Ball) Draw(canvas Canvas) {
	b.shape.Draw(canvas)
}

func (b *Ball) moveX() Score {
	b.shape.Offset.X += b.shape.Velocity.X

	switch {
	case b.shape.LeftEdge() < ArenaMin:
		b.Reset()
		return ScoreEnemy
	case b.shape.RightEdge() > ArenaMax:
		b.Reset()
		return ScorePlayer
	}
	return ScoreNone
}

func (b *Ball) moveY() {
	b.shape.Offset.Y += b.shape.Velocity.Y

	if y := b.shape.CenterY(); y < ArenaMin || y > ArenaMax {
		b.shape.Velocity.Y *= -1
	}
}
