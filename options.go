package sliderpath

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultBezierTolerance is the default flatness tolerance for Bézier
	// segments. It bounds the second differences of a segment's control
	// points and was chosen as a trade-off between smoothness and the number
	// of emitted points.
	DefaultBezierTolerance = 0.5

	// DefaultArcTolerance is the default maximum distance between a circular
	// arc and the chords approximating it.
	DefaultArcTolerance = 0.1
)

var (
	// ErrLinearSegment is returned when a segment of exactly two control
	// points reaches the Bézier flattener and Options.CompleteLinear isn't
	// set.
	ErrLinearSegment = errors.New("linear segments are not supported")

	// ErrUnsupportedKind is returned for curve kinds the engine doesn't
	// flatten.
	ErrUnsupportedKind = errors.New("unsupported curve kind")
)

// Options configures [Flatten] and [FlattenComposite]. The zero value is
// valid and is equivalent to [DefaultOptions].
type Options struct {
	// BezierTolerance is the flatness tolerance for Bézier segments. Zero
	// means DefaultBezierTolerance.
	BezierTolerance float64
	// ArcTolerance is the chord tolerance for perfect circle curves. Zero
	// means DefaultArcTolerance.
	ArcTolerance float64
	// CompleteLinear makes segments of two control points flatten to their
	// two endpoints instead of failing with ErrLinearSegment.
	CompleteLinear bool
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		BezierTolerance: DefaultBezierTolerance,
		ArcTolerance:    DefaultArcTolerance,
	}
}

func (opts Options) bezierTolerance() float64 {
	if opts.BezierTolerance == 0 {
		return DefaultBezierTolerance
	}
	return opts.BezierTolerance
}

func (opts Options) arcTolerance() float64 {
	if opts.ArcTolerance == 0 {
		return DefaultArcTolerance
	}
	return opts.ArcTolerance
}

func checkTolerance[F Float](tolerance F) {
	if !(tolerance > 0) || math.IsInf(float64(tolerance), 0) {
		panic(fmt.Sprintf("sliderpath: invalid tolerance %v", tolerance))
	}
}
