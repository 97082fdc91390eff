package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pong/arena"
	debugui_ebiten "github.com/plus3/pong/arena/debugui/ebiten"
	"github.com/plus3/pong/render/screen"
)

// App implements ebiten.Game: one driver update per tick and one driver
// draw per frame.
type App struct {
	driver  *arena.Driver
	canvas  *screen.Canvas
	keys    *KeyMap
	overlay *debugui_ebiten.ImguiBackend

	// pending is set between a driver update and its draw.
	pending bool
}

func (a *App) Update() error {
	if a.quitRequested(inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		return ebiten.Termination
	}

	if a.overlay != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			a.overlay.Overlay.Toggle()
		}
		a.overlay.Update()
	}

	// ebiten skipped the last Draw; finish that frame unseen
	if a.pending {
		a.driver.Draw(arena.NopCanvas{})
	}

	in := a.keys.Poll()
	if a.overlayFocused() {
		in = arena.Input{}
	}
	a.driver.Update(in)
	a.pending = true
	return nil
}

// quitRequested reports whether an Escape press ends the game. While the
// overlay has keyboard focus, Escape belongs to the field being edited.
func (a *App) quitRequested(escape bool) bool {
	return escape && !a.overlayFocused()
}

func (a *App) overlayFocused() bool {
	return a.overlay != nil && a.overlay.WantsKeyboard()
}

func (a *App) Draw(target *ebiten.Image) {
	if a.pending {
		a.canvas.Bind(target)
		a.driver.Draw(a.canvas)
		a.pending = false
	}

	if a.overlay != nil {
		a.overlay.DrawOver(target)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
