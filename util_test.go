package sliderpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares float32 coordinates with a small absolute margin.
var approx = cmpopts.EquateApprox(0, 1e-4)

// sampleBezier evaluates the curve at n+1 evenly spaced parameters.
func sampleBezier(pts []Point32, n int) []Point32 {
	out := make([]Point32, 0, n+1)
	for i := range n + 1 {
		out = append(out, EvalBezier(pts, float32(i)/float32(n)))
	}
	return out
}

// distanceToPolyline returns the distance from p to the nearest vertex of
// samples.
func distanceToPolyline(p Point32, samples []Point32) float32 {
	best := float32(-1)
	for _, s := range samples {
		if d := p.Sub(s).Hypot(); best < 0 || d < best {
			best = d
		}
	}
	return best
}
