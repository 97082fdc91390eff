package debugui

import "github.com/plus3/pong/arena"

// EntityInfo names one of the world's fixed entities.
type EntityInfo struct {
	Name  string
	Shape *arena.Shape
}

// Entities lists the world's entities in draw order.
func Entities(world *arena.World) []EntityInfo {
	return []EntityInfo{
		{Name: "player", Shape: world.Player.Shape()},
		{Name: "enemy", Shape: world.Enemy.Shape()},
		{Name: "ball", Shape: world.Ball.Shape()},
	}
}

type EntityBrowser struct {
	selected string
}

type EntityInspector struct {
	// edits holds the in-progress widget value per field label, so a
	// value being typed survives until the deferred edit lands.
	edits map[string]float32
}

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type StatePanel struct {
	lastScore arena.Scoreboard
	lastPoint int64
}
