// Package ebiten connects the debug overlay to the ebiten Dear ImGui backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/arena/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and renders an overlay in its frames.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend and attaches it to the ebiten window
// with the given title and size. The imgui.ini file is disabled.
func NewImguiBackend(overlay *debugui.Overlay, title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// Update builds this tick's overlay windows. Call it from the game's Update.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}

// DrawOver renders the overlay on top of screen. Call it last in the game's
// Draw.
func (b *ImguiBackend) DrawOver(screen *ebiten.Image) {
	b.Draw(screen)
}

// WantsKeyboard reports whether the overlay has keyboard focus, in which
// case game keys should be ignored.
func (b *ImguiBackend) WantsKeyboard() bool {
	return b.Overlay.Visible && b.Overlay.Input.WantCaptureKeyboard
}
