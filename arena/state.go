package arena

import "fmt"

// State decides what a frame does. Exactly one state is active at a time;
// the driver calls Update and then Draw on it once per frame.
// Implementations keep no per-frame data of their own.
type State interface {
	Name() string
	Update(frame *Frame)
	Draw(world *World, canvas Canvas)
}

// Gameplay is the running game.
type Gameplay struct{}

func (Gameplay) Name() string {
	return "gameplay"
}

// Update moves the player from input, the enemy toward the ball and then the
// ball against both paddles.
func (g Gameplay) Update(frame *Frame) {
	w := frame.World

	w.Player.Update(frame.Input)
	w.Enemy.Update(w.Ball.Shape())
	w.Score.Record(w.Ball.Update(w.Player.Shape(), w.Enemy.Shape()))

	if frame.Input.Pressed(KeyPause) {
		frame.Commands.SwitchTo(Paused{Resume: g})
	}
}

// Draw paints player, enemy and ball in that order, then the score.
func (Gameplay) Draw(world *World, canvas Canvas) {
	drawScene(world, canvas)
}

// Paused freezes the scene until the pause key is pressed again.
type Paused struct {
	// Resume is the state restored when the pause ends.
	Resume State
}

func (Paused) Name() string {
	return "paused"
}

func (p Paused) Update(frame *Frame) {
	if !frame.Input.Pressed(KeyPause) {
		return
	}

	resume := p.Resume
	if resume == nil {
		resume = Gameplay{}
	}
	frame.Commands.SwitchTo(resume)
}

func (Paused) Draw(world *World, canvas Canvas) {
	drawScene(world, canvas)
	canvas.Text(-0.1, 0.1, "PAUSED")
}

func drawScene(world *World, canvas Canvas) {
	world.Player.Draw(canvas)
	world.Enemy.Draw(canvas)
	world.Ball.Draw(canvas)
	canvas.Text(-0.1, 0.95, fmt.Sprintf("%d : %d", world.Score.Player, world.Score.Enemy))
}
