package sliderpath

import (
	"math"
)

// maxArcPoints caps the number of points of a single arc. It is only reached
// for tolerances so small relative to the radius that the angular step
// underflows.
const maxArcPoints = 1 << 16

// Arc is a circular arc, as described by three points on it.
type Arc[F Float] struct {
	Center Point[F]
	Radius F
	// StartAngle is the angle of the first point, as seen from the center.
	StartAngle F
	// Range is the non-negative angle the arc sweeps.
	Range F
	// Direction is 1 if the arc sweeps towards increasing angles and -1
	// otherwise.
	Direction F
}

// CircleThrough returns the arc that starts at a, passes through b and ends at
// c. It reports false if the three points don't determine a circle, because
// two of them are identical or all three are collinear.
//
// Degeneracy is detected with exact comparisons against zero. Nearly collinear
// points produce arcs with very large radii.
func CircleThrough[F Float](a, b, c Point[F]) (Arc[F], bool) {
	aSq := b.Sub(c).Hypot2()
	bSq := a.Sub(c).Hypot2()
	cSq := a.Sub(b).Hypot2()

	if aSq == 0 || bSq == 0 || cSq == 0 {
		return Arc[F]{}, false
	}

	// Barycentric coordinates of the circumcenter.
	s := aSq * (bSq + cSq - aSq)
	t := bSq * (aSq + cSq - bSq)
	u := cSq * (aSq + bSq - cSq)

	sum := s + t + u
	if sum == 0 {
		return Arc[F]{}, false
	}

	center := a.Mul(s).Add(b.Mul(t)).Add(c.Mul(u)).Div(sum)
	dA := a.Sub(center)
	dC := c.Sub(center)

	const tau = 2 * math.Pi
	thetaStart := dA.Angle()
	thetaEnd := dC.Angle()
	for thetaEnd < thetaStart {
		thetaEnd += tau
	}

	dir := F(1)
	thetaRange := thetaEnd - thetaStart

	// Sweep the other way around if b lies on the other side of ac.
	if c.Sub(a).Normal().Dot(b.Sub(a)) < 0 {
		dir = -dir
		thetaRange = tau - thetaRange
	}

	return Arc[F]{
		Center:     center,
		Radius:     dA.Hypot(),
		StartAngle: thetaStart,
		Range:      thetaRange,
		Direction:  dir,
	}, true
}

// Points returns the number of points [Arc.AppendPoints] emits for the given
// tolerance. It is the arc's range divided by the angle of a chord whose
// distance from the circle is tolerance, rounded up, but at least 2.
func (a Arc[F]) Points(tolerance F) int {
	checkTolerance(tolerance)
	// Radii smaller than the tolerance are a pathological rather than a
	// realistic case.
	if 2*a.Radius <= tolerance {
		return 2
	}
	// A chord spanning angle θ deviates from the arc by r(1 - cos(θ/2)).
	step := F(math.Acos(float64(1-tolerance/a.Radius))) * 2
	n := float64(a.Range / step)
	if math.IsInf(n, 1) {
		return maxArcPoints
	}
	n = math.Ceil(n)
	if !(n >= 2) {
		// Also catches NaN.
		return 2
	}
	return int(min(n, maxArcPoints))
}

// AppendPoints appends points evenly spaced along the arc to dst and returns
// the extended slice. See [Arc.Points] for the number of points.
func (a Arc[F]) AppendPoints(dst []Point[F], tolerance F) []Point[F] {
	n := a.Points(tolerance)
	dst = growPoints(dst, n)
	for i := range n {
		fract := F(i) / F(n-1)
		theta := a.StartAngle + a.Direction*fract*a.Range
		sin, cos := math.Sincos(float64(theta))
		o := Pt(F(cos), F(sin)).Mul(a.Radius)
		dst = append(dst, a.Center.Add(o))
	}
	return dst
}

// ApproximateCircle appends the polyline approximation of the circular arc
// through the three points to dst and returns the extended slice.
//
// If the points don't determine a circle (see [CircleThrough]), nothing is
// appended. Callers should treat that as a request to flatten the points as a
// Bézier curve instead.
func ApproximateCircle[F Float](dst []Point[F], pts [3]Point[F], tolerance F) []Point[F] {
	arc, ok := CircleThrough(pts[0], pts[1], pts[2])
	if !ok {
		return dst
	}
	return arc.AppendPoints(dst, tolerance)
}

func growPoints[F Float](dst []Point[F], n int) []Point[F] {
	if n -= cap(dst) - len(dst); n > 0 {
		dst = append(dst[:cap(dst)], make([]Point[F], n)...)[:len(dst)]
	}
	return dst
}
