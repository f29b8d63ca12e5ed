package sliderpath

import (
	"fmt"
)

// Flatten returns the polyline for a slider path of the given kind.
//
// Bézier paths are flattened with [FlattenComposite]. Perfect paths of exactly
// three points are approximated by a circular arc; if the points don't
// determine a circle, or if there aren't exactly three of them, they are
// flattened like a Bézier path instead. Other kinds fail with
// [ErrUnsupportedKind].
func Flatten[F Float](kind CurveKind, pts []Point[F], opts Options) ([]Point[F], error) {
	return AppendFlatten(nil, kind, pts, opts)
}

// AppendFlatten is like [Flatten] but appends to dst. On error, dst is
// returned with its original length.
func AppendFlatten[F Float](dst []Point[F], kind CurveKind, pts []Point[F], opts Options) ([]Point[F], error) {
	switch kind {
	case BezierKind:
		return FlattenComposite(dst, pts, opts)
	case PerfectKind:
		if len(pts) != 3 {
			return FlattenComposite(dst, pts, opts)
		}
		n0 := len(dst)
		dst = ApproximateCircle(dst, [3]Point[F](pts), F(opts.arcTolerance()))
		if len(dst) > n0 {
			return dst, nil
		}
		if l, ok := debugEnabled(); ok {
			l.Debug("degenerate perfect curve, falling back to Bézier",
				"a", pts[0], "b", pts[1], "c", pts[2])
		}
		return FlattenComposite(dst, pts, opts)
	default:
		return dst, fmt.Errorf("%s: %w", kind, ErrUnsupportedKind)
	}
}
