package sliderpath

import (
	"fmt"
	"iter"
)

// Segments splits a composite control point sequence into the Bézier segments
// it consists of. Two consecutive, exactly equal points mark the end of one
// segment and the start of the next, so every segment after the first starts
// with the point the previous segment ended on. A duplicate in the last two
// positions does not start a new segment.
//
// The yielded slices alias pts and have their capacity limited to their
// length.
func Segments[F Float](pts []Point[F]) iter.Seq[[]Point[F]] {
	return func(yield func([]Point[F]) bool) {
		last := 0
		for i := 0; i < len(pts); i++ {
			join := i < len(pts)-2 && pts[i] == pts[i+1]
			if !join && i != len(pts)-1 {
				continue
			}
			if !yield(pts[last : i+1 : i+1]) {
				return
			}
			if join {
				// Skip the duplicate; it starts the next segment.
				i++
			}
			last = i
		}
	}
}

// FlattenComposite flattens every segment of pts (see [Segments]) with
// [FlattenBezier] and appends the results to dst, in order.
//
// The segments are flattened independently. Consecutive segments share an
// endpoint, which therefore appears twice in the output.
//
// A segment of two points fails with [ErrLinearSegment] unless
// opts.CompleteLinear is set, in which case both points are appended. On
// error, dst is returned with its original length.
func FlattenComposite[F Float](dst []Point[F], pts []Point[F], opts Options) ([]Point[F], error) {
	tolerance := F(opts.bezierTolerance())
	checkTolerance(tolerance)

	n0 := len(dst)
	var count int
	for seg := range Segments(pts) {
		var err error
		if len(seg) == 2 && opts.CompleteLinear {
			dst = append(dst, seg...)
		} else {
			dst, err = FlattenBezier(dst, seg, tolerance)
		}
		if err != nil {
			return dst[:n0], fmt.Errorf("segment %d: %w", count, err)
		}
		count++
	}
	if l, ok := debugEnabled(); ok {
		l.Debug("flattened composite path",
			"controlPoints", len(pts),
			"segments", count,
			"points", len(dst)-n0)
	}
	return dst, nil
}
