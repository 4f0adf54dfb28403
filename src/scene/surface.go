// Package scene draws the vehicle scatterplot, its legends and the detail panel.
//
// All drawing goes through Surface, a handful of primitives in logical canvas units with the
// origin top-left. ChartSurface implements it on top of go-chart's PNG and SVG renderers;
// tests use a recording fake. All scene state (layout, scales, marks, selection) lives on a
// *Chart so several charts can coexist.
package scene

import "github.com/wcharczuk/go-chart/v2/drawing"

// Rect is an axis-aligned box in canvas units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Style describes fill and outline of a shape. A zero StrokeWidth draws no outline.
type Style struct {
	Fill        drawing.Color
	Stroke      drawing.Color
	StrokeWidth float64
}

// Anchor is the horizontal alignment of text relative to its x coordinate.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// TextStyle describes a text run. y is the baseline.
type TextStyle struct {
	Size     float64
	Color    drawing.Color
	Anchor   Anchor
	Rotation float64 // radians, counter-clockwise is negative
}

// Surface is the drawing-primitive boundary the scene renders through.
type Surface interface {
	Size() (w, h float64)
	// Clear paints r with fill, discarding anything drawn there before.
	Clear(r Rect, fill drawing.Color)
	Rect(r Rect, st Style)
	Circle(cx, cy, radius float64, st Style)
	Line(x1, y1, x2, y2 float64, st Style)
	Text(x, y float64, body string, ts TextStyle)
}
