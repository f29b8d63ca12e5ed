package sliderpath

import (
	"fmt"
)

// CurveKind describes how a slider's control points are to be interpreted.
type CurveKind int

const (
	// A composite Bézier curve, see [FlattenComposite].
	BezierKind CurveKind = iota + 1
	// A circular arc through three points, see [ApproximateCircle].
	PerfectKind
	// A polyline. Not flattened by this package.
	LinearKind
	// A Catmull-Rom spline. Not flattened by this package.
	CatmullKind
)

func (k CurveKind) String() string {
	switch k {
	case BezierKind:
		return "Bezier"
	case PerfectKind:
		return "Perfect"
	case LinearKind:
		return "Linear"
	case CatmullKind:
		return "Catmull"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// ParseCurveKind returns the curve kind for the single-letter tag used by
// beatmaps: B, P, L, or C.
func ParseCurveKind(tag byte) (CurveKind, error) {
	switch tag {
	case 'B':
		return BezierKind, nil
	case 'P':
		return PerfectKind, nil
	case 'L':
		return LinearKind, nil
	case 'C':
		return CatmullKind, nil
	default:
		return 0, fmt.Errorf("curve tag %q: %w", tag, ErrUnsupportedKind)
	}
}
