package sliderpath

import (
	"testing"
)

func TestBoundingBox(t *testing.T) {
	diff(t, Rect[float32]{}, BoundingBox[float32](nil))
	diff(t, Rect[float32]{1, 2, 1, 2}, BoundingBox([]Point32{Pt32(1, 2)}))

	r := BoundingBox([]Point32{Pt32(3, 4), Pt32(-1, 10), Pt32(5, -2)})
	diff(t, Rect[float32]{-1, -2, 5, 10}, r)
	if r.Width() != 6 || r.Height() != 12 {
		t.Errorf("got size %vx%v, want 6x12", r.Width(), r.Height())
	}
	diff(t, Pt32(2, 4), r.Center())
	diff(t, Pt32(-1, -2), r.Origin())
}

func TestRectContains(t *testing.T) {
	r := Rect[float32]{0, 0, 10, 10}
	tests := []struct {
		pt   Point32
		want bool
	}{
		{Pt32(0, 0), true},
		{Pt32(5, 5), true},
		{Pt32(10, 5), false},
		{Pt32(5, 10), false},
		{Pt32(-1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%v.Contains(%v) = %t, want %t", r, tt.pt, got, tt.want)
		}
	}
}

func TestRectInflate(t *testing.T) {
	// The outline of a body lies within the path's bounds inflated by its
	// half width.
	poly := []Point32{Pt32(0, 0), Pt32(10, 0), Pt32(10, 10)}
	bounds := BoundingBox(poly).Inflate(2, 2)
	diff(t, Rect[float32]{-2, -2, 12, 12}, bounds)
	for _, p := range Outline(poly, 2) {
		if p.X < bounds.X0 || p.X > bounds.X1 || p.Y < bounds.Y0 || p.Y > bounds.Y1 {
			t.Errorf("outline point %v lies outside %v", p, bounds)
		}
	}
}
