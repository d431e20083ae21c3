package engine

import (
	"fmt"

	"github.com/vovakirdan/frameloop/internal/core"
)

// Kind tags an entity for the collision response table ("player", "bullet").
type Kind string

// Shape selects the collision test used for an entity.
type Shape uint8

const (
	ShapeRect   Shape = iota // X, Y is the top-left corner; W, H the size
	ShapeCircle              // X, Y is the center; R the radius
)

// Entity is any movable, drawable object taking part in a simulation.
type Entity struct {
	ID    int
	Kind  Kind
	Shape Shape

	X, Y   float64
	VX, VY float64
	W, H   float64 // rectangles
	R      float64 // circles

	Alive  bool
	Clamp  bool // held inside the world instead of culled when leaving it
	Hidden bool // takes part in collisions but is not drawn

	Color   core.Color
	Value   int // score value, damage, ... depending on the game
	Payload any
}

// NewRect creates a rectangular entity.
func NewRect(kind Kind, x, y, w, h float64) *Entity {
	return &Entity{Kind: kind, Shape: ShapeRect, X: x, Y: y, W: w, H: h}
}

// NewCircle creates a circular entity centered at (x, y).
func NewCircle(kind Kind, x, y, r float64) *Entity {
	return &Entity{Kind: kind, Shape: ShapeCircle, X: x, Y: y, R: r}
}

// Bounds returns the axis-aligned bounding box of the entity.
func (e *Entity) Bounds() core.Rect {
	if e.Shape == ShapeCircle {
		return e.Circle().Bounds()
	}
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Circle returns the circular shape of a circle entity.
func (e *Entity) Circle() core.Circle {
	return core.Circle{X: e.X, Y: e.Y, R: e.R}
}

// Overlaps reports whether two entities collide. Two circles use the
// center-distance test; every other pair compares bounding boxes.
func Overlaps(a, b *Entity) bool {
	if a.Shape == ShapeCircle && b.Shape == ShapeCircle {
		return a.Circle().Overlaps(b.Circle())
	}
	return a.Bounds().Intersects(b.Bounds())
}

func (e *Entity) validate() error {
	if !core.Finite(e.X) || !core.Finite(e.Y) {
		return fmt.Errorf("position (%v, %v) is not finite", e.X, e.Y)
	}
	if !core.Finite(e.VX) || !core.Finite(e.VY) {
		return fmt.Errorf("velocity (%v, %v) is not finite", e.VX, e.VY)
	}
	switch e.Shape {
	case ShapeRect:
		if !(e.W > 0) || !(e.H > 0) || !core.Finite(e.W) || !core.Finite(e.H) {
			return fmt.Errorf("size %vx%v must be positive", e.W, e.H)
		}
	case ShapeCircle:
		if !(e.R > 0) || !core.Finite(e.R) {
			return fmt.Errorf("radius %v must be positive", e.R)
		}
	default:
		return fmt.Errorf("unknown shape %d", e.Shape)
	}
	return nil
}
