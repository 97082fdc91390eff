package arena

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DriverStats provides statistics about driver execution.
type DriverStats struct {
	Frames       int64
	StateSwitch  int64
	CurrentState string
	Phases       []PhaseStats
}

// PhaseStats provides execution statistics for one half of the frame.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (p *phaseStatsInternal) record(duration time.Duration) {
	p.executionCount++
	p.lastDuration = duration
	p.totalDuration += duration

	if duration < p.minDuration {
		p.minDuration = duration
	}
	if duration > p.maxDuration {
		p.maxDuration = duration
	}
}

type phase int

const (
	phaseIdle phase = iota
	phaseUpdating
	phaseUpdated
	phaseDrawing
)

// Driver runs the active state against the world, one update and one draw
// per frame. It is not safe for concurrent use; frontends call it from their
// own loop goroutine.
type Driver struct {
	world    *World
	state    State
	commands *Commands
	log      *slog.Logger

	phase    phase
	frames   int64
	switches int64
	update   *phaseStatsInternal
	draw     *phaseStatsInternal
}

// NewDriver creates a driver over world starting in the initial state.
// A nil logger discards driver logs.
func NewDriver(world *World, initial State, logger *slog.Logger) *Driver {
	if initial == nil {
		initial = Gameplay{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Driver{
		world:    world,
		state:    initial,
		commands: newCommands(),
		log:      logger,
		update:   &phaseStatsInternal{name: "update", minDuration: time.Duration(1<<63 - 1)},
		draw:     &phaseStatsInternal{name: "draw", minDuration: time.Duration(1<<63 - 1)},
	}
}

// World returns the entity set the driver updates.
func (d *Driver) World() *World {
	return d.world
}

// State returns the active state.
func (d *Driver) State() State {
	return d.state
}

// Commands returns the buffer flushed at the end of every frame. Callers
// outside the frame (debug tools) use it to defer their changes.
func (d *Driver) Commands() *Commands {
	return d.commands
}

// Frames returns the number of completed frames.
func (d *Driver) Frames() int64 {
	return d.frames
}

// Update runs the first half of a frame. It panics if the previous frame
// was not drawn or if called re-entrantly.
func (d *Driver) Update(in Input) {
	if d.phase != phaseIdle {
		panic("arena: Driver.Update called before the previous frame was drawn")
	}
	d.phase = phaseUpdating

	before := d.world.Score
	frame := &Frame{
		Number:   d.frames,
		World:    d.world,
		Input:    in,
		Commands: d.commands,
	}

	start := time.Now()
	d.state.Update(frame)
	d.update.record(time.Since(start))

	if after := d.world.Score; after != before {
		d.log.Info("point scored",
			"frame", d.frames,
			"player", after.Player,
			"enemy", after.Enemy,
		)
	}

	d.phase = phaseUpdated
}

// Draw runs the second half of a frame and then flushes deferred commands.
// It panics if Update has not run for this frame.
func (d *Driver) Draw(canvas Canvas) {
	if d.phase != phaseUpdated {
		panic("arena: Driver.Draw called without a preceding Update")
	}
	d.phase = phaseDrawing

	start := time.Now()
	canvas.Clear()
	d.state.Draw(d.world, canvas)
	d.draw.record(time.Since(start))

	d.frames++
	d.phase = phaseIdle

	if next := d.commands.Flush(); next != nil {
		d.switchTo(next)
	}
}

// Once runs a complete frame.
func (d *Driver) Once(in Input, canvas Canvas) {
	d.Update(in)
	d.Draw(canvas)
}

// Run executes frames at the given interval until the context is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration, source InputSource, canvas Canvas) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Once(source.Poll(), canvas)
		}
	}
}

// SwitchTo replaces the active state between frames. Inside a frame, use
// Commands().SwitchTo instead.
func (d *Driver) SwitchTo(state State) {
	if d.phase != phaseIdle {
		panic("arena: Driver.SwitchTo called mid-frame")
	}
	d.switchTo(state)
}

func (d *Driver) switchTo(state State) {
	d.log.Info("state switch", "from", d.state.Name(), "to", state.Name(), "frame", d.frames)
	d.state = state
	d.switches++
}

// Stats returns statistics about frame execution.
func (d *Driver) Stats() *DriverStats {
	return &DriverStats{
		Frames:       d.frames,
		StateSwitch:  d.switches,
		CurrentState: d.state.Name(),
		Phases:       []PhaseStats{d.update.snapshot(), d.draw.snapshot()},
	}
}

func (p *phaseStatsInternal) snapshot() PhaseStats {
	avgDuration := time.Duration(0)
	if p.executionCount > 0 {
		avgDuration = p.totalDuration / time.Duration(p.executionCount)
	}

	return PhaseStats{
		Name:           p.name,
		ExecutionCount: p.executionCount,
		MinDuration:    p.minDuration,
		MaxDuration:    p.maxDuration,
		AvgDuration:    avgDuration,
		LastDuration:   p.lastDuration,
		TotalDuration:  p.totalDuration,
	}
}
