package sliderpath

import (
	"math"
	"testing"
)

func TestCircleThrough(t *testing.T) {
	arc, ok := CircleThrough(Pt32(0, 0), Pt32(1, 1), Pt32(2, 0))
	if !ok {
		t.Fatal("no circle through (0, 0), (1, 1), (2, 0)")
	}
	want := Arc[float32]{
		Center:     Pt32(1, 0),
		Radius:     1,
		StartAngle: math.Pi,
		Range:      math.Pi,
		Direction:  -1,
	}
	diff(t, want, arc, approx)
}

func TestCircleThroughMajorArc(t *testing.T) {
	// Starting at (1, 0) and ending at (0, 1), passing through (0, -1), sweeps
	// three quarters of the circle.
	arc, ok := CircleThrough(Pt32(1, 0), Pt32(0, -1), Pt32(0, 1))
	if !ok {
		t.Fatal("no circle")
	}
	want := Arc[float32]{
		Center:     Pt32(0, 0),
		Radius:     1,
		StartAngle: 0,
		Range:      3 * math.Pi / 2,
		Direction:  -1,
	}
	diff(t, want, arc, approx)

	pts := arc.AppendPoints(nil, 0.1)
	diff(t, Pt32(1, 0), pts[0], approx)
	diff(t, Pt32(0, 1), pts[len(pts)-1], approx)
	for i, p := range pts {
		if d := p.Hypot(); math.Abs(float64(d-1)) > 1e-5 {
			t.Errorf("point %d %v is %v away from the center, want 1", i, p, d)
		}
	}
}

func TestCircleThroughDegenerate(t *testing.T) {
	tests := [][3]Point32{
		{Pt32(0, 0), Pt32(0, 0), Pt32(1, 0)},
		{Pt32(0, 0), Pt32(1, 0), Pt32(1, 0)},
		{Pt32(1, 0), Pt32(0, 0), Pt32(1, 0)},
		{Pt32(0, 0), Pt32(1, 0), Pt32(2, 0)},
		{Pt32(0, 0), Pt32(2, 2), Pt32(4, 4)},
	}
	for _, tt := range tests {
		if arc, ok := CircleThrough(tt[0], tt[1], tt[2]); ok {
			t.Errorf("CircleThrough(%v) = %+v, want no circle", tt, arc)
		}
		if got := ApproximateCircle(nil, tt, 0.1); len(got) != 0 {
			t.Errorf("ApproximateCircle(%v) = %v, want no points", tt, got)
		}
	}
}

func TestApproximateCircle(t *testing.T) {
	got := ApproximateCircle(nil, [3]Point32{Pt32(0, 0), Pt32(1, 1), Pt32(2, 0)}, DefaultArcTolerance)
	want := []Point32{
		Pt32(0, 0),
		Pt32(0.5, float32(math.Sqrt(3)/2)),
		Pt32(1.5, float32(math.Sqrt(3)/2)),
		Pt32(2, 0),
	}
	diff(t, want, got, approx)
}

func TestApproximateCircleSide(t *testing.T) {
	// The arc has to pass on the same side of the chord as the middle point.
	for _, y := range []float32{1, -1} {
		got := ApproximateCircle(nil, [3]Point32{Pt32(0, 0), Pt32(1, y), Pt32(2, 0)}, 0.01)
		for _, p := range got[1 : len(got)-1] {
			if p.Y*y <= 0 {
				t.Errorf("middle point at y=%v: arc point %v is on the wrong side", y, p)
			}
		}
	}
}

func TestApproximateCircleAppends(t *testing.T) {
	dst := []Point32{Pt32(9, 9)}
	got := ApproximateCircle(dst, [3]Point32{Pt32(0, 0), Pt32(1, 1), Pt32(2, 0)}, 0.1)
	if len(got) != 5 || got[0] != Pt32(9, 9) {
		t.Errorf("got %v, want (9, 9) followed by 4 arc points", got)
	}
}

func TestArcPoints(t *testing.T) {
	unit := Arc[float32]{Radius: 1, Range: math.Pi, Direction: 1}
	tests := []struct {
		arc  Arc[float32]
		tol  float32
		want int
	}{
		{unit, 0.1, 4},
		// Radius too small for the tolerance.
		{Arc[float32]{Radius: 0.01, Range: math.Pi, Direction: 1}, 0.1, 2},
		{Arc[float32]{Radius: 0.05, Range: math.Pi, Direction: 1}, 0.1, 2},
		// Tiny ranges still need both endpoints.
		{Arc[float32]{Radius: 100, Range: 1e-6, Direction: 1}, 0.1, 2},
		{Arc[float32]{Radius: 1, Range: 0, Direction: 1}, 0.1, 2},
	}
	for _, tt := range tests {
		if got := tt.arc.Points(tt.tol); got != tt.want {
			t.Errorf("%+v.Points(%v) = %d, want %d", tt.arc, tt.tol, got, tt.want)
		}
	}
}

func TestArcPointsMonotonicTolerance(t *testing.T) {
	arc, _ := CircleThrough(Pt32(0, 0), Pt32(100, 30), Pt32(200, 0))
	prev := 0
	for _, tol := range []float32{1, 0.5, 0.1, 0.01} {
		n := arc.Points(tol)
		if n < prev {
			t.Errorf("tolerance %v produced %d points, fewer than %d", tol, n, prev)
		}
		prev = n
	}
}

func TestArcPointsNearlyCollinear(t *testing.T) {
	a, b, c := Pt32(0, 0), Pt32(100, 1), Pt32(200, 0)
	got := ApproximateCircle(nil, [3]Point32{a, b, c}, 0.1)
	if len(got) < 2 {
		t.Fatalf("got %d points, want at least 2", len(got))
	}
	for _, p := range got {
		if p.IsNaN() || p.IsInf() {
			t.Fatalf("got non-finite point %v", p)
		}
	}
	if d := got[0].Sub(a).Hypot(); d > 1e-1 {
		t.Errorf("first point %v is %v away from %v", got[0], d, a)
	}
}

func TestArcPointsInvalidTolerance(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("zero tolerance didn't panic")
		}
	}()
	arc := Arc[float32]{Radius: 1, Range: 1, Direction: 1}
	arc.Points(0)
}

func BenchmarkApproximateCircle(b *testing.B) {
	pts := [3]Point32{Pt32(0, 0), Pt32(100, 100), Pt32(200, 0)}
	b.ReportAllocs()
	dst := make([]Point32, 0, 1024)
	for range b.N {
		dst = ApproximateCircle(dst[:0], pts, DefaultArcTolerance)
	}
}
