package scene

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bebeshannu/datavis-a2/src/scales"
	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

// Logical canvas size of the plot.
const (
	CanvasWidth  = 900
	CanvasHeight = 520
)

// Margins around the plot area.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Options configures layout.
type Options struct {
	Width, Height float64
	Margins       Margins
}

// DefaultOptions returns the 900×520 layout.
func DefaultOptions() Options {
	return Options{
		Width:   CanvasWidth,
		Height:  CanvasHeight,
		Margins: Margins{Top: 20, Right: 30, Bottom: 50, Left: 70},
	}
}

var (
	background     = drawing.ColorWhite
	axisColor      = drawing.ColorFromHex("333333")
	gridColor      = drawing.ColorFromHex("e6e6e6")
	labelColor     = drawing.ColorFromHex("333333")
	markStroke     = drawing.ColorWhite
	selectedStroke = drawing.ColorFromHex("222222")
)

const (
	markAlpha           = 217 // 0.85 opacity
	markStrokeWidth     = 1.0
	selectedStrokeWidth = 2.5
	hitSlop             = 2.0
)

// Mark is the computed geometry of one record's glyph in canvas units.
type Mark struct {
	Index int
	X, Y  float64
	R     float64
	Fill  drawing.Color
}

// Chart owns everything one scatterplot needs: the dataset, layout, scales, marks and the
// current selection. Marks are computed once in New.
type Chart struct {
	ds       vehicles.Dataset
	opts     Options
	scales   scales.Set
	marks    []Mark
	selected int

	// OnSelect, when set, receives the record of every successful Select.
	OnSelect func(vehicles.Vehicle)
}

// New lays out a chart for ds. The first record, if any, starts selected.
func New(ds vehicles.Dataset, opts Options) *Chart {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultOptions()
	}
	c := &Chart{ds: ds, opts: opts, selected: -1}
	inner := c.Inner()
	c.scales = scales.Build(ds, inner.W, inner.H)
	c.marks = make([]Mark, len(ds))
	for i, v := range ds {
		c.marks[i] = Mark{
			Index: i,
			X:     inner.X + c.scales.X.Map(v.RetailPrice),
			Y:     inner.Y + c.scales.Y.Map(v.Horsepower),
			R:     c.scales.RadiusFor(v.EngineSize),
			Fill:  c.scales.ColorFor(v.CityMPG),
		}
	}
	if len(ds) > 0 {
		c.selected = 0
	}
	return c
}

// Dataset returns the records the chart was built from.
func (c *Chart) Dataset() vehicles.Dataset { return c.ds }

// Scales returns the scales in use.
func (c *Chart) Scales() scales.Set { return c.scales }

// Size returns the logical canvas size.
func (c *Chart) Size() (float64, float64) { return c.opts.Width, c.opts.Height }

// Inner returns the plot area in canvas units.
func (c *Chart) Inner() Rect {
	m := c.opts.Margins
	return Rect{
		X: m.Left,
		Y: m.Top,
		W: math.Max(1, c.opts.Width-m.Left-m.Right),
		H: math.Max(1, c.opts.Height-m.Top-m.Bottom),
	}
}

// Marks returns the geometry of all marks in drawing order.
func (c *Chart) Marks() []Mark { return c.marks }

// Selected returns the selected index, or false when nothing is selected.
func (c *Chart) Selected() (int, bool) { return c.selected, c.selected >= 0 }

// Select makes record i the selection and notifies OnSelect. An out-of-range index
// changes nothing.
func (c *Chart) Select(i int) (vehicles.Vehicle, bool) {
	if i < 0 || i >= len(c.ds) {
		return vehicles.Vehicle{}, false
	}
	c.selected = i
	if c.OnSelect != nil {
		c.OnSelect(c.ds[i])
	}
	return c.ds[i], true
}

// HitTest returns the topmost mark under (x,y). The selected mark is drawn above all
// others and later marks above earlier ones, so the selection is checked first and the
// rest are searched backwards.
func (c *Chart) HitTest(x, y float64) (int, bool) {
	if c.selected >= 0 && c.marks[c.selected].hit(x, y) {
		return c.selected, true
	}
	for i := len(c.marks) - 1; i >= 0; i-- {
		if c.marks[i].hit(x, y) {
			return i, true
		}
	}
	return -1, false
}

func (m Mark) hit(x, y float64) bool {
	dx, dy := x-m.X, y-m.Y
	r := m.R + hitSlop
	return dx*dx+dy*dy <= r*r
}

// Tooltip returns the hover text for record i: name, price and horsepower.
func (c *Chart) Tooltip(i int) string {
	if i < 0 || i >= len(c.ds) {
		return ""
	}
	v := c.ds[i]
	return fmt.Sprintf("%s\n%s\n%s hp", v.Name, FormatCurrency(v.RetailPrice), FormatInteger(v.Horsepower))
}

// markStyle returns the distinguished style for the selected mark and the normal style
// for every other one.
func (c *Chart) markStyle(m Mark) Style {
	if m.Index == c.selected {
		return Style{Fill: m.Fill, Stroke: selectedStroke, StrokeWidth: selectedStrokeWidth}
	}
	return Style{Fill: m.Fill.WithAlpha(markAlpha), Stroke: markStroke, StrokeWidth: markStrokeWidth}
}

// Render draws background, axes and one mark per record onto s.
func (c *Chart) Render(s Surface) {
	s.Clear(Rect{W: c.opts.Width, H: c.opts.Height}, background)
	c.renderAxes(s)
	inner := c.Inner()
	if len(c.marks) == 0 {
		s.Text(inner.X+inner.W/2, inner.Y+inner.H/2, "No vehicles with price and horsepower",
			TextStyle{Size: 12, Color: labelColor, Anchor: AnchorMiddle})
		return
	}
	// the selected mark goes last so nothing overlaps it
	for _, m := range c.marks {
		if m.Index != c.selected {
			s.Circle(m.X, m.Y, m.R, c.markStyle(m))
		}
	}
	if c.selected >= 0 {
		m := c.marks[c.selected]
		s.Circle(m.X, m.Y, m.R, c.markStyle(m))
	}
}

// wholeTicks keeps the ticks that land on whole dollars, so narrow price domains never
// repeat a rounded currency label.
func wholeTicks(ticks []float64) []float64 {
	out := ticks[:0:0]
	for _, v := range ticks {
		if v == math.Trunc(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c *Chart) renderAxes(s Surface) {
	inner := c.Inner()
	axis := Style{Stroke: axisColor, StrokeWidth: 1}
	grid := Style{Stroke: gridColor, StrokeWidth: 1}
	tick := TextStyle{Size: 10, Color: labelColor}
	bottom := inner.Y + inner.H

	for _, v := range wholeTicks(c.scales.X.Ticks(scales.XTicks)) {
		x := inner.X + c.scales.X.Map(v)
		s.Line(x, inner.Y, x, bottom, grid)
		s.Line(x, bottom, x, bottom+6, axis)
		ts := tick
		ts.Anchor = AnchorMiddle
		s.Text(x, bottom+18, FormatCurrency(v), ts)
	}
	for _, v := range c.scales.Y.Ticks(scales.YTicks) {
		y := inner.Y + c.scales.Y.Map(v)
		s.Line(inner.X, y, inner.X+inner.W, y, grid)
		s.Line(inner.X-6, y, inner.X, y, axis)
		ts := tick
		ts.Anchor = AnchorEnd
		s.Text(inner.X-9, y+4, formatTick(v), ts)
	}
	s.Line(inner.X, bottom, inner.X+inner.W, bottom, axis)
	s.Line(inner.X, inner.Y, inner.X, bottom, axis)

	title := TextStyle{Size: 12, Color: labelColor, Anchor: AnchorMiddle}
	s.Text(inner.X+inner.W/2, c.opts.Height-8, "Retail Price", title)
	title.Rotation = -math.Pi / 2
	s.Text(16, inner.Y+inner.H/2, "Horsepower", title)
}
