package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/arena"
)

func NewPerformanceStats(historyFrames int) PerformanceStats {
	return PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds one frame time, in seconds, to the history ring.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the history in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(stats *arena.DriverStats, deltaTime float32) {
	ps.Record(deltaTime)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("State switches: %d", stats.StateSwitch))

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
