package arena

// Arena bounds in normalized device coordinates.
const (
	ArenaMin float32 = -1.0
	ArenaMax float32 = 1.0
)

// Vec2 is a pair of per-axis values: a position, an offset or a velocity.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in normalized device coordinates.
// Top is always greater than Bottom.
type Rect struct {
	Left, Right, Top, Bottom float32
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Top - r.Bottom
}

// Viewport maps normalized device coordinates onto a surface measured in
// pixels or terminal cells, with the origin at the top-left corner.
type Viewport struct {
	Width  int
	Height int
}

// Point maps an NDC point to surface coordinates. NDC y grows upward,
// surface y grows downward.
func (v Viewport) Point(x, y float32) (float32, float32) {
	sx := (x - ArenaMin) / (ArenaMax - ArenaMin) * float32(v.Width)
	sy := (ArenaMax - y) / (ArenaMax - ArenaMin) * float32(v.Height)
	return sx, sy
}

// Project maps an NDC rectangle to its top-left surface corner and size.
func (v Viewport) Project(r Rect) (x, y, w, h float32) {
	x, y = v.Point(r.Left, r.Top)
	right, bottom := v.Point(r.Right, r.Bottom)
	return x, y, right - x, bottom - y
}
