// Package debugui provides a Dear ImGui overlay for inspecting and editing a
// running game. The overlay reads the driver between frames; every edit it
// makes goes through the driver's command buffer so that it lands after the
// current frame has been drawn.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/arena"
)

// Item is an extra window rendered after the built-in panes.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before turning key presses into game input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the debug windows for one driver.
type Overlay struct {
	Visible bool
	Items   []Item
	Input   InputState

	driver    *arena.Driver
	timer     *FrameTimer
	browser   EntityBrowser
	inspector EntityInspector
	perf      PerformanceStats
	state     StatePanel
}

func NewOverlay(driver *arena.Driver) *Overlay {
	return &Overlay{
		Visible:   true,
		driver:    driver,
		timer:     NewFrameTimer(),
		browser:   NewEntityBrowser(),
		inspector: NewEntityInspector(),
		perf:      NewPerformanceStats(120),
		state:     NewStatePanel(),
	}
}

// Toggle shows or hides every overlay window.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Render draws the overlay windows. It must run between the backend's
// BeginFrame and EndFrame, outside the driver's Update and Draw.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	deltaTime := o.timer.GetDeltaTime()
	if !o.Visible {
		return
	}

	world := o.driver.World()
	commands := o.driver.Commands()

	o.browser.Render(world)
	o.inspector.Render(world, commands, o.browser.Selected())
	o.perf.Render(o.driver.Stats(), deltaTime)
	o.state.Render(o.driver)

	for _, item := range o.Items {
		item.Render()
	}
}
