package sliderpath

// Rect is an axis-aligned rectangle, used to describe the area a slider
// covers.
type Rect[F Float] struct {
	X0, Y0 F
	X1, Y1 F
}

// BoundingBox returns the smallest rectangle containing all points of poly.
// It returns the zero rectangle for an empty polyline.
func BoundingBox[F Float](poly []Point[F]) Rect[F] {
	if len(poly) == 0 {
		return Rect[F]{}
	}
	r := Rect[F]{poly[0].X, poly[0].Y, poly[0].X, poly[0].Y}
	for _, pt := range poly[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Origin returns the top left corner of the rectangle, in a y-down space.
func (r Rect[F]) Origin() Point[F] {
	return Point[F]{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect[F]) Width() F {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be
// negative.
func (r Rect[F]) Height() F {
	return r.Y1 - r.Y0
}

func (r Rect[F]) Center() Point[F] {
	return Point[F]{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rect[F]) Contains(pt Point[F]) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect[F]) UnionPoint(pt Point[F]) Rect[F] {
	return Rect[F]{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions. Slider
// bodies cover their path's bounding box inflated by the circle radius.
func (r Rect[F]) Inflate(width, height F) Rect[F] {
	return Rect[F]{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}
