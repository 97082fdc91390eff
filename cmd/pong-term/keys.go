package main

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/pong/arena"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held until no press has arrived for the hold window.
const defaultHoldWindow = 150 * time.Millisecond

type binding struct {
	key  tcell.Key
	char rune
}

var namedKeys = map[string]tcell.Key{
	"ArrowUp":    tcell.KeyUp,
	"ArrowDown":  tcell.KeyDown,
	"ArrowLeft":  tcell.KeyLeft,
	"ArrowRight": tcell.KeyRight,
	"Enter":      tcell.KeyEnter,
	"Tab":        tcell.KeyTab,
	"Backspace":  tcell.KeyBackspace2,
}

// parseBinding accepts the same physical key names as the window frontend.
// Letters and digits match either case.
func parseBinding(name string) (binding, error) {
	if k, ok := namedKeys[name]; ok {
		return binding{key: k}, nil
	}
	if name == "Space" {
		return binding{key: tcell.KeyRune, char: ' '}, nil
	}
	if name = strings.TrimPrefix(name, "Digit"); utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return binding{key: tcell.KeyRune, char: unicode.ToLower(r)}, nil
	}
	return binding{}, fmt.Errorf("unknown key name %q", name)
}

// Tracker turns tcell key events into per-frame input snapshots.
type Tracker struct {
	bindings   map[binding]arena.Key
	holdWindow time.Duration
	now        func() time.Time

	// lastPress holds the unix nano time of each movement key's last press.
	lastPress *intmap.Map[arena.Key, int64]
	pause     bool
}

func NewTracker(names map[arena.Key][]string) (*Tracker, error) {
	t := &Tracker{
		bindings:   make(map[binding]arena.Key),
		holdWindow: defaultHoldWindow,
		now:        time.Now,
		lastPress:  intmap.New[arena.Key, int64](4),
	}
	for key, physical := range names {
		for _, name := range physical {
			b, err := parseBinding(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			t.bindings[b] = key
		}
	}
	return t, nil
}

// Press records a key event. It reports whether the event was bound.
func (t *Tracker) Press(ev *tcell.EventKey) bool {
	b := binding{key: ev.Key()}
	if b.key == tcell.KeyRune {
		b.char = unicode.ToLower(ev.Rune())
	}

	key, ok := t.bindings[b]
	if !ok {
		return false
	}
	if key == arena.KeyPause {
		t.pause = true
		return true
	}
	t.lastPress.Put(key, t.now().UnixNano())
	return true
}

// Poll returns the keys held now and consumes any pending pause press.
func (t *Tracker) Poll() arena.Input {
	cutoff := t.now().Add(-t.holdWindow).UnixNano()

	var held []arena.Key
	t.lastPress.ForEach(func(key arena.Key, at int64) bool {
		if at >= cutoff {
			held = append(held, key)
		}
		return true
	})
	if t.pause {
		held = append(held, arena.KeyPause)
		t.pause = false
	}
	return arena.NewInput(held...)
}
