// Package sliderpath turns the control points of rhythm game sliders into
// polylines that can be measured, sampled, and drawn.
//
// # Curve kinds
//
// A slider's control points are interpreted according to its [CurveKind]:
//
//   - [BezierKind] describes a composite Bézier curve. Two consecutive,
//     identical control points end one segment and start the next, see
//     [Segments]. Each segment can have any degree and is flattened by
//     adaptive subdivision, see [FlattenBezier].
//   - [PerfectKind] describes a circular arc through exactly three points,
//     see [CircleThrough] and [ApproximateCircle]. Points that don't determine
//     a circle are flattened as a Bézier curve instead.
//
// [Flatten] dispatches on the kind. Linear and Catmull-Rom paths are
// recognized by [ParseCurveKind] but not flattened.
//
// # Tolerances
//
// Bézier segments are subdivided until no second difference of a piece's
// control points is longer than the Bézier tolerance. Arcs are split into
// chords that stray no further than the arc tolerance from the circle. Both
// are configured with [Options]; the zero value uses
// [DefaultBezierTolerance] and [DefaultArcTolerance].
//
// # Polylines
//
// The flattened polylines are plain slices of points. [Length], [PositionAt],
// and [Truncate] measure and cut them to a slider's pixel length, [Outline]
// computes the body of a slider of a given width, and [SVG] renders them.
//
// # Precision
//
// All functions are generic over the coordinate type. Slider geometry is
// usually single precision, see [Point32]. Points compare exactly, which is
// what join markers in composite curves rely on.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [De Casteljau's algorithm]
//   - [Circumscribed circle]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [De Casteljau's algorithm]: https://en.wikipedia.org/wiki/De_Casteljau%27s_algorithm
// [Circumscribed circle]: https://en.wikipedia.org/wiki/Circumscribed_circle#Barycentric_coordinates
package sliderpath
