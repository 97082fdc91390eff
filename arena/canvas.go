package arena

// Canvas is the drawing surface a frontend hands to the active state.
// Coordinates are in normalized device coordinates; implementations only
// read what they are given.
type Canvas interface {
	Clear()
	FillRect(r Rect)
	Text(x, y float32, msg string)
}

// NopCanvas discards everything drawn on it.
type NopCanvas struct{}

func (NopCanvas) Clear()                      {}
func (NopCanvas) FillRect(Rect)               {}
func (NopCanvas) Text(_, _ float32, _ string) {}
