package sliderpath

import (
	"slices"
)

// Line represents a line segment.
type Line[F Float] struct {
	// The line's start point.
	P0 Point[F]
	// The line's end point.
	P1 Point[F]
}

// Length returns the length of the line.
func (l Line[F]) Length() F {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t. Values of t outside [0, 1] extend
// the line beyond its endpoints.
func (l Line[F]) Eval(t F) Point[F] {
	return l.P0.Lerp(l.P1, t)
}

// Offset returns the vector of length d perpendicular to the line, pointing to
// its left in a y-down coordinate system. It returns the zero vector for lines
// of zero length.
func (l Line[F]) Offset(d F) Point[F] {
	v := l.P1.Sub(l.P0)
	n := v.Hypot()
	if n == 0 {
		return Point[F]{}
	}
	return Pt(-v.Y, v.X).Mul(d / n)
}

// Lines returns the line segments between consecutive points of poly.
func Lines[F Float](poly []Point[F]) func(yield func(Line[F]) bool) {
	return func(yield func(Line[F]) bool) {
		for i := 1; i < len(poly); i++ {
			if !yield(Line[F]{poly[i-1], poly[i]}) {
				return
			}
		}
	}
}

// Length returns the length of the polyline.
func Length[F Float](poly []Point[F]) F {
	var sum F
	for l := range Lines(poly) {
		sum += l.Length()
	}
	return sum
}

// PositionAt returns the point at the given distance along the polyline.
// Distances beyond the end extend the last non-degenerate segment; negative
// distances return the first point. PositionAt returns the zero point for an
// empty polyline.
func PositionAt[F Float](poly []Point[F], distance F) Point[F] {
	switch len(poly) {
	case 0:
		return Point[F]{}
	case 1:
		return poly[0]
	}
	if distance <= 0 {
		return poly[0]
	}

	var last Line[F]
	var lastLen F
	for l := range Lines(poly) {
		n := l.Length()
		if n == 0 {
			continue
		}
		if distance <= n {
			return l.Eval(distance / n)
		}
		distance -= n
		last, lastLen = l, n
	}
	if lastLen == 0 {
		// All segments have zero length.
		return poly[len(poly)-1]
	}
	return last.Eval(1 + distance/lastLen)
}

// Truncate returns a copy of the polyline, cut off or extended so that its
// length is length. Extending continues along the last segment. A
// non-positive length results in just the first point.
func Truncate[F Float](poly []Point[F], length F) []Point[F] {
	if len(poly) < 2 {
		return slices.Clone(poly)
	}
	out := make([]Point[F], 0, len(poly))
	out = append(out, poly[0])
	if length <= 0 {
		return out
	}

	remaining := length
	for i := 1; i < len(poly); i++ {
		l := Line[F]{poly[i-1], poly[i]}
		n := l.Length()
		if remaining <= n || i == len(poly)-1 {
			if n == 0 {
				return append(out, l.P1)
			}
			return append(out, l.Eval(remaining/n))
		}
		out = append(out, l.P1)
		remaining -= n
	}
	return out
}

// Outline returns the closed outline of a band of the given half width
// around the polyline, as used for drawing slider bodies. The outline runs
// along the left side of the path, then back along its right side. Each
// vertex is offset along the normal of the segment it starts; the final
// vertex uses the normal of the last segment. Zero-length segments reuse the
// previous normal, or the first one if no segment precedes them.
//
// Outline returns nil for polylines of fewer than two points.
func Outline[F Float](poly []Point[F], halfWidth F) []Point[F] {
	if len(poly) < 2 {
		return nil
	}
	offsets := make([]Point[F], len(poly))
	var prev Point[F]
	for l := range Lines(poly) {
		if l.Length() != 0 {
			prev = l.Offset(halfWidth)
			break
		}
	}
	for i := range len(poly) - 1 {
		l := Line[F]{poly[i], poly[i+1]}
		if l.Length() == 0 {
			offsets[i] = prev
			continue
		}
		offsets[i] = l.Offset(halfWidth)
		prev = offsets[i]
	}
	offsets[len(poly)-1] = prev

	out := make([]Point[F], 0, 2*len(poly))
	for i, p := range poly {
		out = append(out, p.Add(offsets[i]))
	}
	for i := len(poly) - 1; i >= 0; i-- {
		out = append(out, poly[i].Sub(offsets[i]))
	}
	return out
}
