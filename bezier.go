package sliderpath

import (
	"fmt"

	"honnef.co/go/sliderpath/internal/mem"
)

// maxSubdivisionDepth limits how often a single segment gets halved. Beyond
// this depth, halving no longer changes float32 coordinates in any meaningful
// way, and a segment that still isn't flat (because of huge coordinates or a
// tiny tolerance) is emitted as is.
const maxSubdivisionDepth = 32

// FlattenBezier appends to dst a polyline approximating the Bézier curve with
// the given control points and returns the extended slice. Curves of any
// degree are supported.
//
// The curve is halved recursively until every piece is flat enough, meaning
// that no second difference of its control points has a length greater than
// tolerance. Each flat piece contributes its first control point and one
// smoothed point per interior control point. The curve's last control point
// ends the polyline, so the first and last emitted points are exactly the first
// and last control points.
//
// Zero control points append nothing. A single control point is appended as
// is. Two control points describe a line, not a curve, and result in
// [ErrLinearSegment]; see [FlattenComposite] for a way of completing those.
//
// pts is not modified. FlattenBezier panics if tolerance isn't a positive,
// finite number.
func FlattenBezier[F Float](dst []Point[F], pts []Point[F], tolerance F) ([]Point[F], error) {
	checkTolerance(tolerance)
	switch len(pts) {
	case 0:
		return dst, nil
	case 1:
		return append(dst, pts[0]), nil
	case 2:
		return dst, ErrLinearSegment
	}
	f := newFlattener[F](len(pts))
	dst = f.flatten(dst, pts, tolerance*tolerance)
	if l, ok := debugEnabled(); ok {
		l.Debug("flattened Bézier segment",
			"controlPoints", len(pts),
			"subdivisions", f.subdivisions,
			"buffers", f.buffers.Allocs())
	}
	return dst, nil
}

// IsFlatEnough reports whether no second difference of pts exceeds tolerance
// in length. This is the criterion [FlattenBezier] uses to stop subdividing.
// A polyline that is flat enough is considered a faithful approximation of
// itself.
func IsFlatEnough[F Float](pts []Point[F], tolerance F) bool {
	return isFlatEnough(pts, tolerance*tolerance)
}

// EvalBezier evaluates the Bézier curve with the given control points at
// parameter t, using de Casteljau's algorithm. It returns the zero point if pts
// is empty.
func EvalBezier[F Float](pts []Point[F], t F) Point[F] {
	if len(pts) == 0 {
		return Point[F]{}
	}
	scratch := make([]Point[F], len(pts))
	copy(scratch, pts)
	for n := len(scratch) - 1; n > 0; n-- {
		for i := range n {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[0]
}

// workItem is a node of the subdivision tree that still needs to be looked at.
type workItem[F Float] struct {
	pts   []Point[F]
	depth int
}

// flattener holds the scratch memory of one FlattenBezier call. All of its
// buffers are sized for curves of n control points.
type flattener[F Float] struct {
	n       int
	buffers *mem.Buffers[Point[F]]
	stack   mem.Stack[workItem[F]]

	// Subdivision output. left is 2n-1 points long so that approximate can
	// append the right half to it.
	left  []Point[F]
	right []Point[F]
	// Scratch row for de Casteljau's algorithm.
	midpoints []Point[F]

	subdivisions int
}

func newFlattener[F Float](n int) *flattener[F] {
	return &flattener[F]{
		n:         n,
		buffers:   mem.NewBuffers[Point[F]](n),
		left:      make([]Point[F], 2*n-1),
		right:     make([]Point[F], n),
		midpoints: make([]Point[F], n),
	}
}

func (f *flattener[F]) flatten(dst []Point[F], pts []Point[F], toleranceSq F) []Point[F] {
	if len(pts) != f.n {
		panic(fmt.Sprintf("sliderpath: flattener for %d points used with %d points", f.n, len(pts)))
	}

	root := f.buffers.Get()
	copy(root, pts)
	f.stack.Push(workItem[F]{pts: root})

	for {
		parent, ok := f.stack.Pop()
		if !ok {
			break
		}
		if parent.depth >= maxSubdivisionDepth || isFlatEnough(parent.pts, toleranceSq) {
			dst = f.approximate(dst, parent.pts)
			f.buffers.Put(parent.pts)
			continue
		}

		rightChild := f.buffers.Get()
		f.subdivide(parent.pts, f.left, rightChild)
		// The parent's buffer becomes the left child, saving one allocation
		// per iteration.
		copy(parent.pts, f.left[:f.n])
		f.subdivisions++

		// The left child is pushed last so that it is processed first, which
		// keeps the output in curve order.
		f.stack.Push(workItem[F]{pts: rightChild, depth: parent.depth + 1})
		f.stack.Push(workItem[F]{pts: parent.pts, depth: parent.depth + 1})
	}

	return append(dst, pts[len(pts)-1])
}

// subdivide splits the curve at t = 0.5 using de Casteljau's algorithm. The
// first n entries of l receive the left half, r receives the right half. Both
// halves share the curve's midpoint, l[n-1] == r[0].
func (f *flattener[F]) subdivide(pts []Point[F], l, r []Point[F]) {
	n := len(pts)
	mid := f.midpoints[:n]
	copy(mid, pts)

	for i := range n {
		l[i] = mid[0]
		r[n-i-1] = mid[n-i-1]

		for j := range n - i - 1 {
			mid[j] = mid[j].Add(mid[j+1]).Div(2)
		}
	}
}

// approximate emits the points of a curve that is flat enough, except for its
// last control point, which is the first point of the following piece.
//
// Instead of emitting the control points themselves, the curve is subdivided
// once more and each interior control point is replaced by a 1-2-1 weighted
// average of the subdivided control polygon, which lies much closer to the
// curve.
func (f *flattener[F]) approximate(dst []Point[F], pts []Point[F]) []Point[F] {
	n := len(pts)
	l := f.left
	f.subdivide(pts, l, f.right)

	// l[n-1] already equals r[0].
	copy(l[n:2*n-1], f.right[1:n])

	dst = append(dst, pts[0])
	for i := 1; i < n-1; i++ {
		idx := 2 * i
		p := l[idx].Mul(2).Add(l[idx-1]).Add(l[idx+1]).Mul(0.25)
		dst = append(dst, p)
	}
	return dst
}

func isFlatEnough[F Float](pts []Point[F], toleranceSq F) bool {
	for i := 1; i < len(pts)-1; i++ {
		d := pts[i-1].Sub(pts[i].Mul(2)).Add(pts[i+1])
		if d.Hypot2() > toleranceSq {
			return false
		}
	}
	return true
}
