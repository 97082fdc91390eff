package arena

import "fmt"

// Paddle is a shape that only moves vertically, one fixed step at a time,
// and never leaves the arena's vertical bounds.
type Paddle struct {
	shape Shape
	step  float32
}

func newPaddle(x, halfWidth, halfHeight, step float32) Paddle {
	if !(step > 0) {
		panic(fmt.Sprintf("arena: paddle step must be positive, got %v", step))
	}
	return Paddle{
		shape: NewShape(x, 0, halfWidth, halfHeight),
		step:  step,
	}
}

// Shape exposes the paddle's shape for collision queries and inspection.
func (p *Paddle) Shape() *Shape {
	return &p.shape
}

// Step returns the distance the paddle travels per frame.
func (p *Paddle) Step() float32 {
	return p.step
}

// MoveUp raises the paddle by one step, stopping at the top of the arena.
func (p *Paddle) MoveUp() {
	limit := ArenaMax - p.shape.halfHeight - p.shape.start.Y
	p.shape.Offset.Y = min(p.shape.Offset.Y+p.step, limit)
}

// MoveDown lowers the paddle by one step, stopping at the bottom of the arena.
func (p *Paddle) MoveDown() {
	limit := ArenaMin + p.shape.halfHeight - p.shape.start.Y
	p.shape.Offset.Y = max(p.shape.Offset.Y-p.step, limit)
}

func (p *Paddle) Draw(canvas Canvas) {
	p.shape.Draw(canvas)
}

// Player is the paddle driven by keyboard input.
type Player struct {
	Paddle
}

// NewPlayer creates the input-driven paddle anchored at x.
func NewPlayer(x, halfWidth, halfHeight, step float32) *Player {
	return &Player{Paddle: newPaddle(x, halfWidth, halfHeight, step)}
}

// Update moves the paddle for every held movement key. Holding both keys
// applies both moves.
func (p *Player) Update(in Input) {
	if in.Pressed(KeyMoveUp) {
		p.MoveUp()
	}
	if in.Pressed(KeyMoveDown) {
		p.MoveDown()
	}
}

// Enemy is the paddle that chases the ball's height.
type Enemy struct {
	Paddle
}

// NewEnemy creates the rule-driven paddle anchored at x.
func NewEnemy(x, halfWidth, halfHeight, step float32) *Enemy {
	return &Enemy{Paddle: newPaddle(x, halfWidth, halfHeight, step)}
}

// Update moves one step toward the ball's current height. There is no
// prediction, so the paddle overshoots by at most one step and jitters
// around a ball that moves slower than it does.
func (e *Enemy) Update(ball *Shape) {
	switch target := ball.CenterY(); {
	case target > e.shape.CenterY():
		e.MoveUp()
	case target < e.shape.CenterY():
		e.MoveDown()
	}
}
