package sliderpath

import (
	"io"
	"strconv"
	"strings"
	"unsafe"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Close ends the path with a ClosePath command, for outlines such as the
	// ones returned by [Outline].
	Close bool
}

// SVG converts a polyline to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG[F Float](poly []Point[F], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, poly, opts)
	return sb.String()
}

// WriteSVG converts a polyline to a string of SVG path commands and writes it
// to w. The first point becomes a MoveTo, every following point a LineTo.
// Nothing is written for an empty polyline.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG[F Float](w io.Writer, poly []Point[F], opts SVGOptions) error {
	if len(poly) == 0 {
		return nil
	}
	bitSize := 64
	if unsafe.Sizeof(F(0)) == 4 {
		bitSize = 32
	}
	format := func(b []byte, n F) []byte {
		if opts.MaxPrecision <= 0 {
			return strconv.AppendFloat(b, float64(n), 'f', -1, bitSize)
		}
		s := strconv.FormatFloat(float64(n), 'f', opts.MaxPrecision, bitSize)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
		return append(b, s...)
	}

	var buf []byte
	for i, pt := range poly {
		switch i {
		case 0:
			buf = append(buf, 'M')
		default:
			buf = append(buf, " L"...)
		}
		buf = format(buf, pt.X)
		buf = append(buf, ',')
		buf = format(buf, pt.Y)
	}
	if opts.Close {
		buf = append(buf, " Z"...)
	}
	_, err := w.Write(buf)
	return err
}
