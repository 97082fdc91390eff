package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pong/arena"
)

// KeyMap turns physical ebiten keys into logical arena keys.
type KeyMap struct {
	bindings map[arena.Key][]ebiten.Key
}

// NewKeyMap resolves physical key names ("W", "ArrowUp", "Space") against
// ebiten's key names.
func NewKeyMap(names map[arena.Key][]string) (*KeyMap, error) {
	byName := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		byName[k.String()] = k
	}

	km := &KeyMap{bindings: make(map[arena.Key][]ebiten.Key, len(names))}
	for key, physical := range names {
		for _, name := range physical {
			k, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("unknown key name %q for %s", name, key)
			}
			km.bindings[key] = append(km.bindings[key], k)
		}
	}
	return km, nil
}

// Bound returns the physical keys mapped to key.
func (km *KeyMap) Bound(key arena.Key) []ebiten.Key {
	return km.bindings[key]
}

// Poll builds this tick's input. Movement keys count while held, the pause
// key only on the tick it went down.
func (km *KeyMap) Poll() arena.Input {
	var held []arena.Key
	for key, physical := range km.bindings {
		pressed := ebiten.IsKeyPressed
		if key == arena.KeyPause {
			pressed = inpututil.IsKeyJustPressed
		}
		for _, k := range physical {
			if pressed(k) {
				held = append(held, key)
				break
			}
		}
	}
	return arena.NewInput(held...)
}
