package sliderpath_test

import (
	"fmt"
	"math"

	"honnef.co/go/sliderpath"
)

func ExampleFlatten() {
	kind, err := sliderpath.ParseCurveKind('B')
	if err != nil {
		panic(err)
	}
	pts := []sliderpath.Point32{
		sliderpath.Pt32(0, 0),
		sliderpath.Pt32(1, 0),
		sliderpath.Pt32(2, 0),
	}
	poly, err := sliderpath.Flatten(kind, pts, sliderpath.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Println(poly)
	// Output:
	// [(0, 0) (1, 0) (2, 0)]
}

// round rounds to three decimals and avoids printing negative zero.
func round(v float32) float64 {
	r := math.Round(float64(v)*1000) / 1000
	if r == 0 {
		return 0
	}
	return r
}

func ExampleApproximateCircle() {
	pts := [3]sliderpath.Point32{
		sliderpath.Pt32(0, 0),
		sliderpath.Pt32(1, 1),
		sliderpath.Pt32(2, 0),
	}
	poly := sliderpath.ApproximateCircle(nil, pts, sliderpath.DefaultArcTolerance)
	fmt.Println(len(poly))
	for _, p := range poly {
		fmt.Printf("(%.3f, %.3f)\n", round(p.X), round(p.Y))
	}
	// Output:
	// 4
	// (0.000, 0.000)
	// (0.500, 0.866)
	// (1.500, 0.866)
	// (2.000, 0.000)
}

func ExampleOutline() {
	body := sliderpath.Outline([]sliderpath.Point32{
		sliderpath.Pt32(0, 0),
		sliderpath.Pt32(10, 0),
	}, 2)
	fmt.Println(sliderpath.SVG(body, sliderpath.SVGOptions{Close: true}))
	// Output:
	// M0,2 L10,2 L10,-2 L0,-2 Z
}

func ExampleTruncate() {
	poly := []sliderpath.Point32{
		sliderpath.Pt32(0, 0),
		sliderpath.Pt32(3, 4),
		sliderpath.Pt32(3, 10),
	}
	fmt.Println(sliderpath.Length(poly))
	fmt.Println(sliderpath.Truncate(poly, 8))
	fmt.Println(sliderpath.PositionAt(poly, 2.5))
	// Output:
	// 11
	// [(0, 0) (3, 4) (3, 7)]
	// (1.5, 2)
}
