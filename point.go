package sliderpath

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of coordinate types a [Point] can be instantiated with.
type Float interface {
	constraints.Float
}

// Point is a point in 2D space. It doubles as a vector, which is how the
// flattening algorithms treat differences of control points.
//
// Two points are equal if their coordinates compare equal as floats. The
// splitter relies on this to find join markers.
type Point[F Float] struct {
	X F
	Y F
}

// Point32 is the single-precision point used by slider geometry.
type Point32 = Point[float32]

// Point64 is a double-precision point.
type Point64 = Point[float64]

// Pt returns the point (x, y).
func Pt[F Float](x, y F) Point[F] {
	return Point[F]{X: x, Y: y}
}

// Pt32 returns the single-precision point (x, y).
func Pt32(x, y float32) Point32 {
	return Point32{X: x, Y: y}
}

func (pt Point[F]) Splat() (F, F) {
	return pt.X, pt.Y
}

func (pt Point[F]) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns pt+o.
func (pt Point[F]) Add(o Point[F]) Point[F] {
	return Point[F]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub returns pt−o.
func (pt Point[F]) Sub(o Point[F]) Point[F] {
	return Point[F]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

func (pt Point[F]) Mul(f F) Point[F] {
	return Point[F]{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

func (pt Point[F]) Div(f F) Point[F] {
	return Point[F]{
		X: pt.X / f,
		Y: pt.Y / f,
	}
}

// MulPt multiplies pt and o component-wise.
func (pt Point[F]) MulPt(o Point[F]) Point[F] {
	return Point[F]{
		X: pt.X * o.X,
		Y: pt.Y * o.Y,
	}
}

// DivPt divides pt by o component-wise.
func (pt Point[F]) DivPt(o Point[F]) Point[F] {
	return Point[F]{
		X: pt.X / o.X,
		Y: pt.Y / o.Y,
	}
}

// Dot returns the dot product of pt and o, both treated as vectors.
func (pt Point[F]) Dot(o Point[F]) F {
	return pt.X*o.X + pt.Y*o.Y
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (pt Point[F]) Hypot2() F {
	return pt.X*pt.X + pt.Y*pt.Y
}

// Hypot returns the magnitude of the vector.
func (pt Point[F]) Hypot() F {
	return F(math.Sqrt(float64(pt.Hypot2())))
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x).
func (pt Point[F]) Angle() F {
	return F(math.Atan2(float64(pt.Y), float64(pt.X)))
}

// Normal returns the vector rotated by a quarter turn, ⟨y, −x⟩.
func (pt Point[F]) Normal() Point[F] {
	return Point[F]{
		X: pt.Y,
		Y: -pt.X,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point[F]) Midpoint(o Point[F]) Point[F] {
	return Point[F]{
		X: (pt.X + o.X) / 2,
		Y: (pt.Y + o.Y) / 2,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point[F]) Lerp(o Point[F], t F) Point[F] {
	// pt + t * (o-pt)
	return pt.Add(o.Sub(pt).Mul(t))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point[F]) IsInf() bool {
	return math.IsInf(float64(pt.X), 0) || math.IsInf(float64(pt.Y), 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point[F]) IsNaN() bool {
	return math.IsNaN(float64(pt.X)) || math.IsNaN(float64(pt.Y))
}
