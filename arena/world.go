package arena

// Setup holds the geometry and speeds every entity is built from.
type Setup struct {
	PaddleHalfWidth  float32
	PaddleHalfHeight float32
	PaddleStep       float32
	PlayerX          float32
	EnemyX           float32

	BallHalfWidth  float32
	BallHalfHeight float32
	BallVelocity   Vec2
}

// DefaultSetup returns the stock arena: paddles at the horizontal edges and
// a small ball served up and to the right.
func DefaultSetup() Setup {
	return Setup{
		PaddleHalfWidth:  0.04,
		PaddleHalfHeight: 0.25,
		PaddleStep:       0.01,
		PlayerX:          -0.9,
		EnemyX:           0.9,
		BallHalfWidth:    0.02,
		BallHalfHeight:   0.02,
		BallVelocity:     Vec2{X: 0.003, Y: 0.001},
	}
}

// Scoreboard tallies points for the current process.
type Scoreboard struct {
	Player int
	Enemy  int
}

// Record adds the point described by s, if any.
func (sb *Scoreboard) Record(s Score) {
	switch s {
	case ScorePlayer:
		sb.Player++
	case ScoreEnemy:
		sb.Enemy++
	}
}

// World is the full entity set. It is built once at startup and lives for
// the rest of the process.
type World struct {
	Player *Player
	Enemy  *Enemy
	Ball   *Ball
	Score  Scoreboard
}

// NewWorld builds the entities described by setup. It panics if the setup
// describes impossible geometry.
func NewWorld(setup Setup) *World {
	return &World{
		Player: NewPlayer(setup.PlayerX, setup.PaddleHalfWidth, setup.PaddleHalfHeight, setup.PaddleStep),
		Enemy:  NewEnemy(setup.EnemyX, setup.PaddleHalfWidth, setup.PaddleHalfHeight, setup.PaddleStep),
		Ball:   NewBall(setup.BallHalfWidth, setup.BallHalfHeight, setup.BallVelocity),
	}
}
