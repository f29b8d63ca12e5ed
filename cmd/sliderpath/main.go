// Command sliderpath flattens slider control points into polylines.
//
// Control points are passed in the beatmap notation, separated by pipes. An
// optional leading curve tag overrides --kind:
//
//	sliderpath 'B|0:0|50:100|100:0'
//	sliderpath --kind P '0:0|1:1|2:0'
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	"honnef.co/go/sliderpath"
)

type Flatten struct {
	Kind         string  `short:"k" default:"B" desc:"Curve kind: B(ezier) or P(erfect)"`
	Tolerance    float64 `default:"0.5" desc:"Bézier flatness tolerance"`
	ArcTolerance float64 `default:"0.1" desc:"Maximum distance between arcs and their chords"`
	Linear       bool    `desc:"Draw two-point segments as straight lines"`
	Length       float64 `short:"l" desc:"Truncate or extend the path to this length"`
	HalfWidth    float64 `desc:"Print the outline of a body of this half width"`
	CS           float64 `name:"cs" desc:"Print the outline of a body for this circle size"`
	SVG          bool    `name:"svg" desc:"Print an SVG path instead of one point per line"`
	Document     bool    `desc:"Wrap the SVG path in an SVG document"`
	Minify       bool    `desc:"Minify the SVG document"`
	Precision    int     `short:"p" desc:"Maximum number of decimals in SVG output"`
	Verbose      bool    `short:"v" desc:"Log debug information to stderr"`
	Points       string  `index:"0" desc:"Control points, x:y|x:y|..."`
}

func main() {
	root := argp.NewCmd(&Flatten{}, "Slider path flattener")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Flatten) Run() error {
	if cmd.Points == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		sliderpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return cmd.run(os.Stdout)
}

func (cmd *Flatten) run(w io.Writer) error {
	if cmd.Tolerance <= 0 || cmd.ArcTolerance <= 0 {
		return fmt.Errorf("tolerances must be positive")
	}
	tag, pts, err := parsePoints(cmd.Points)
	if err != nil {
		return err
	}
	if tag == "" {
		tag = cmd.Kind
	}
	if len(tag) != 1 {
		return fmt.Errorf("invalid curve kind %q", tag)
	}
	kind, err := sliderpath.ParseCurveKind(tag[0])
	if err != nil {
		return err
	}

	opts := sliderpath.Options{
		BezierTolerance: cmd.Tolerance,
		ArcTolerance:    cmd.ArcTolerance,
		CompleteLinear:  cmd.Linear,
	}
	poly, err := sliderpath.Flatten(kind, pts, opts)
	if err != nil {
		return err
	}
	if cmd.Length > 0 {
		poly = sliderpath.Truncate(poly, float32(cmd.Length))
	}

	halfWidth := float32(cmd.HalfWidth)
	if halfWidth == 0 && cmd.CS != 0 {
		halfWidth = sliderpath.CircleRadius(float32(cmd.CS))
	}
	closed := false
	if halfWidth > 0 {
		poly = sliderpath.Outline(poly, halfWidth)
		closed = true
	}

	if cmd.SVG || cmd.Document {
		svgOpts := sliderpath.SVGOptions{
			MaxPrecision: cmd.Precision,
			Close:        closed,
		}
		if !cmd.Document {
			if err := sliderpath.WriteSVG(w, poly, svgOpts); err != nil {
				return err
			}
			_, err := io.WriteString(w, "\n")
			return err
		}
		if !cmd.Minify {
			return writeDocument(w, poly, svgOpts)
		}
		var buf bytes.Buffer
		if err := writeDocument(&buf, poly, svgOpts); err != nil {
			return err
		}
		m := minify.New()
		m.AddFunc(svgMediaType, svg.Minify)
		return m.Minify(svgMediaType, w, &buf)
	}
	for _, p := range poly {
		if _, err := fmt.Fprintf(w, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

const svgMediaType = "image/svg+xml"

// writeDocument writes poly as the only path of an SVG document whose view
// box covers it.
func writeDocument(w io.Writer, poly []sliderpath.Point32, opts sliderpath.SVGOptions) error {
	const margin = 1
	r := sliderpath.BoundingBox(poly).Inflate(margin, margin)
	fill := "none"
	if opts.Close {
		fill = "black"
	}
	_, err := fmt.Fprintf(w, `<svg viewBox="%g %g %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n",
		r.X0, r.Y0, r.Width(), r.Height())
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<path fill=%q stroke="black" stroke-width="0.1" d="`, fill); err != nil {
		return err
	}
	if err := sliderpath.WriteSVG(w, poly, opts); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\" />\n</svg>\n")
	return err
}

// parsePoints parses control points in the form x:y|x:y|... An optional
// leading field consisting of a single letter is returned as the curve tag.
func parsePoints(s string) (string, []sliderpath.Point32, error) {
	fields := strings.Split(s, "|")
	var tag string
	if len(fields[0]) == 1 && !strings.ContainsAny(fields[0], "0123456789") {
		tag = fields[0]
		fields = fields[1:]
	}

	pts := make([]sliderpath.Point32, 0, len(fields))
	for i, f := range fields {
		xs, ys, ok := strings.Cut(f, ":")
		if !ok {
			return "", nil, fmt.Errorf("point %d: %q isn't of the form x:y", i, f)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
		if err != nil {
			return "", nil, fmt.Errorf("point %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
		if err != nil {
			return "", nil, fmt.Errorf("point %d: %w", i, err)
		}
		pts = append(pts, sliderpath.Pt32(float32(x), float32(y)))
	}
	return tag, pts, nil
}
