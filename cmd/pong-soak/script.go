package main

import (
	"math/rand/v2"

	"github.com/plus3/pong/arena"
)

var combos = [][]arena.Key{
	nil,
	{arena.KeyMoveUp},
	{arena.KeyMoveDown},
	{arena.KeyMoveUp, arena.KeyMoveDown},
}

// Script plays the player's side: a random key combination held for a fixed
// number of frames, plus an optional periodic pause toggle.
type Script struct {
	rng        *rand.Rand
	hold       int
	pauseEvery int64
	current    []arena.Key
}

func NewScript(seed uint64, hold int, pauseEvery int64) *Script {
	return &Script{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		hold:       max(hold, 1),
		pauseEvery: pauseEvery,
	}
}

// Next returns the input for the given frame. Frames must be requested in
// order.
func (s *Script) Next(frame int64) arena.Input {
	if frame%int64(s.hold) == 0 {
		s.current = combos[s.rng.IntN(len(combos))]
	}

	keys := s.current
	if s.pauseEvery > 0 && frame > 0 && frame%s.pauseEvery == 0 {
		keys = append(append([]arena.Key{}, keys...), arena.KeyPause)
	}
	return arena.NewInput(keys...)
}
