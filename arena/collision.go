package arena

// Collision classifies how two shapes touch, seen from the first shape.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// InCollision reports whether a and b overlap and, if they do, which side
// of the contact a sits on. The side is taken from the axis with the smaller
// penetration; equal penetration resolves vertically. Shapes that merely
// touch count as colliding.
func InCollision(a, b *Shape) Collision {
	dx := a.CenterX() - b.CenterX()
	dy := a.CenterY() - b.CenterY()
	overlapX := (a.halfWidth + b.halfWidth) - abs(dx)
	overlapY := (a.halfHeight + b.halfHeight) - abs(dy)

	if overlapX < 0 || overlapY < 0 {
		return CollisionNone
	}

	if overlapX < overlapY {
		if dx > 0 {
			return CollisionLeft
		}
		return CollisionRight
	}

	if dy > 0 {
		return CollisionBottom
	}
	return CollisionTop
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
