package arena

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Key identifies a logical key. Frontends map physical keys onto these.
type Key uint16

const (
	KeyMoveUp Key = iota + 1
	KeyMoveDown
	// KeyPause is edge-triggered: frontends report it only on the frame the
	// physical key went down.
	KeyPause
)

var keyNames = map[Key]string{
	KeyMoveUp:   "move_up",
	KeyMoveDown: "move_down",
	KeyPause:    "pause",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey returns the logical key with the given name.
func ParseKey(name string) (Key, bool) {
	for key, keyName := range keyNames {
		if keyName == name {
			return key, true
		}
	}
	return 0, false
}

// Input is the set of logical keys held during one frame. The zero value
// is an empty snapshot.
type Input struct {
	held *intmap.Set[Key]
}

// NewInput builds a snapshot holding the given keys.
func NewInput(keys ...Key) Input {
	held := intmap.NewSet[Key](len(keys))
	for _, key := range keys {
		held.Add(key)
	}
	return Input{held: held}
}

// Pressed reports whether key is held in this snapshot.
func (in Input) Pressed(key Key) bool {
	if in.held == nil {
		return false
	}
	return in.held.Has(key)
}

// Len returns the number of held keys.
func (in Input) Len() int {
	if in.held == nil {
		return 0
	}
	return in.held.Len()
}

// Keys returns the held keys in ascending order.
func (in Input) Keys() []Key {
	if in.held == nil {
		return nil
	}

	keys := make([]Key, 0, in.held.Len())
	in.held.ForEach(func(key Key) bool {
		keys = append(keys, key)
		return true
	})
	slices.Sort(keys)
	return keys
}

// InputSource produces a fresh input snapshot for each frame.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input {
	return f()
}
