package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned box anchored at its center.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X, Y: r.Y}
}

// Overlaps reports whether two center-anchored boxes intersect. Touching
// edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return math.Abs(r.X-o.X) < (r.Width+o.Width)/2 &&
		math.Abs(r.Y-o.Y) < (r.Height+o.Height)/2
}

// Distance is the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return cp.Vector{X: ax, Y: ay}.Distance(cp.Vector{X: bx, Y: by})
}

// StepToward moves from toward target by at most step. It never overshoots.
func StepToward(from, target cp.Vector, step float64) cp.Vector {
	delta := target.Sub(from)
	dist := delta.Length()
	if dist <= step || dist == 0 {
		return target
	}
	return from.Add(cp.ForAngle(math.Atan2(delta.Y, delta.X)).Mult(step))
}

// Heading returns a velocity of the given speed pointing from one point to
// another. A zero-length delta yields a zero vector.
func Heading(from, target cp.Vector, speed float64) cp.Vector {
	delta := target.Sub(from)
	if delta.Length() == 0 {
		return cp.Vector{}
	}
	return cp.ForAngle(math.Atan2(delta.Y, delta.X)).Mult(speed)
}
