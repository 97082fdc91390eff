package arena

import "fmt"

// Shape is the geometric and physical state of a rectangular entity.
// The start location and half-extents are fixed at creation; only Offset
// and Velocity change as the game runs.
type Shape struct {
	Offset   Vec2
	Velocity Vec2

	start      Vec2
	halfWidth  float32
	halfHeight float32
}

// NewShape creates a shape resting at (startX, startY) with the given
// half-extents. It panics if either half-extent is not strictly positive.
func NewShape(startX, startY, halfWidth, halfHeight float32) Shape {
	if !(halfWidth > 0) || !(halfHeight > 0) {
		panic(fmt.Sprintf("arena: shape half-extents must be positive, got %v x %v", halfWidth, halfHeight))
	}

	return Shape{
		start:      Vec2{X: startX, Y: startY},
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// Start returns the rest position the shape was created at.
func (s *Shape) Start() Vec2 {
	return s.start
}

func (s *Shape) HalfWidth() float32 {
	return s.halfWidth
}

func (s *Shape) HalfHeight() float32 {
	return s.halfHeight
}

func (s *Shape) CenterX() float32 {
	return s.start.X + s.Offset.X
}

func (s *Shape) CenterY() float32 {
	return s.start.Y + s.Offset.Y
}

func (s *Shape) LeftEdge() float32 {
	return s.CenterX() - s.halfWidth
}

func (s *Shape) RightEdge() float32 {
	return s.CenterX() + s.halfWidth
}

func (s *Shape) TopEdge() float32 {
	return s.CenterY() + s.halfHeight
}

func (s *Shape) BottomEdge() float32 {
	return s.CenterY() - s.halfHeight
}

// SetCenterX moves the shape horizontally so its center lands on x.
func (s *Shape) SetCenterX(x float32) {
	s.Offset.X = x - s.start.X
}

// Bounds returns the shape's current bounding box.
func (s *Shape) Bounds() Rect {
	return Rect{
		Left:   s.LeftEdge(),
		Right:  s.RightEdge(),
		Top:    s.TopEdge(),
		Bottom: s.BottomEdge(),
	}
}

// Draw fills the shape's bounding box on the canvas.
func (s *Shape) Draw(canvas Canvas) {
	canvas.FillRect(s.Bounds())
}
