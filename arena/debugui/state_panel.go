package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/arena"
)

func NewStatePanel() StatePanel {
	return StatePanel{}
}

// Observe remembers the frame at which the score last changed.
func (sp *StatePanel) Observe(score arena.Scoreboard, frame int64) {
	if score != sp.lastScore {
		sp.lastScore = score
		sp.lastPoint = frame
	}
}

func (sp *StatePanel) Render(driver *arena.Driver) {
	world := driver.World()
	sp.Observe(world.Score, driver.Frames())

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := driver.State()
	imgui.Text(fmt.Sprintf("State: %s", state.Name()))
	imgui.Text(fmt.Sprintf("Score: %d : %d", world.Score.Player, world.Score.Enemy))
	imgui.Text(fmt.Sprintf("Frame: %d (last point at %d)", driver.Frames(), sp.lastPoint))
	imgui.Separator()

	commands := driver.Commands()
	switch s := state.(type) {
	case arena.Paused:
		if imgui.Button("Resume") {
			resume := s.Resume
			if resume == nil {
				resume = arena.Gameplay{}
			}
			commands.SwitchTo(resume)
		}
	default:
		if imgui.Button("Pause") {
			commands.SwitchTo(arena.Paused{Resume: state})
		}
	}

	imgui.SameLine()
	if imgui.Button("Serve") {
		commands.Defer(world.Ball.Reset)
	}
	imgui.SameLine()
	if imgui.Button("Reset score") {
		commands.Defer(func() { world.Score = arena.Scoreboard{} })
	}

	imgui.End()
}
