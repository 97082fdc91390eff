package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/arena"
	"github.com/plus3/pong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyMapDefaults(t *testing.T) {
	bindings, err := config.Default().Bindings()
	require.NoError(t, err)

	km, err := NewKeyMap(bindings)
	require.NoError(t, err)

	assert.Equal(t, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, km.Bound(arena.KeyMoveUp))
	assert.Equal(t, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, km.Bound(arena.KeyMoveDown))
	assert.Equal(t, []ebiten.Key{ebiten.KeyP, ebiten.KeySpace}, km.Bound(arena.KeyPause))
}

func TestNewKeyMapUnknownName(t *testing.T) {
	_, err := NewKeyMap(map[arena.Key][]string{arena.KeyPause: {"Pause Button"}})
	assert.ErrorContains(t, err, `unknown key name "Pause Button"`)
}
