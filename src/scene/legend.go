package scene

import (
	"fmt"
	"math"

	"github.com/bebeshannu/datavis-a2/src/scales"
	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

// Legend surface size used by RenderLegends callers.
const (
	LegendWidth  = 320
	LegendHeight = 90
)

const (
	colorCaption = "City MPG"
	sizeCaption  = "Engine size"
)

var legendStroke = axisColor

// ColorLegend draws a gradient bar sampling c once per pixel column across its full
// domain, with the domain bounds rounded to integers beneath. Anything previously drawn
// in box is cleared first.
func ColorLegend(s Surface, c scales.Sequential, box Rect) {
	s.Clear(box, background)
	s.Text(box.X+10, box.Y+14, colorCaption, TextStyle{Size: 11, Color: labelColor})
	bar := Rect{X: box.X + 10, Y: box.Y + 24, W: box.W - 20, H: 12}
	cols := int(math.Floor(bar.W))
	for i := 0; i < cols; i++ {
		t := (float64(i) + 0.5) / float64(cols)
		v := c.D0 + t*(c.D1-c.D0)
		s.Rect(Rect{X: bar.X + float64(i), Y: bar.Y, W: 1, H: bar.H}, Style{Fill: c.Map(v)})
	}
	s.Rect(bar, Style{Fill: background.WithAlpha(0), Stroke: legendStroke, StrokeWidth: 0.5})
	lbl := TextStyle{Size: 10, Color: labelColor}
	s.Text(bar.X, bar.Y+bar.H+14, fmt.Sprintf("%.0f", c.D0), lbl)
	lbl.Anchor = AnchorEnd
	s.Text(bar.X+bar.W, bar.Y+bar.H+14, fmt.Sprintf("%.0f", c.D1), lbl)
}

// SizeLegend draws three reference circles (domain minimum, mean and maximum) at their
// true scaled radius with the engine size beneath each. Anything previously drawn in box
// is cleared first.
func SizeLegend(s Surface, r scales.Sqrt, mean float64, box Rect) {
	s.Clear(box, background)
	s.Text(box.X+10, box.Y+14, sizeCaption, TextStyle{Size: 11, Color: labelColor})
	if !finite(mean) {
		mean = (r.D0 + r.D1) / 2
	}
	values := [3]float64{r.D0, mean, r.D1}
	cy := box.Y + 24 + scales.MaxRadius
	lbl := TextStyle{Size: 10, Color: labelColor, Anchor: AnchorMiddle}
	for i, v := range values {
		cx := box.X + box.W*float64(2*i+1)/6
		s.Circle(cx, cy, r.Map(v), Style{Fill: gridColor, Stroke: legendStroke, StrokeWidth: 1})
		s.Text(cx, cy+scales.MaxRadius+14, FormatLitres(v), lbl)
	}
}

// NoDataLegend clears box and leaves only the caption and a note that no record carries
// the value, so the legend never describes a mapping no mark uses.
func NoDataLegend(s Surface, caption string, box Rect) {
	s.Clear(box, background)
	s.Text(box.X+10, box.Y+14, caption, TextStyle{Size: 11, Color: labelColor})
	s.Text(box.X+10, box.Y+40, "no data", TextStyle{Size: 10, Color: labelColor})
}

// LegendBoxes splits a legend surface into the color (left) and size (right) halves.
func LegendBoxes(w, h float64) (color, size Rect) {
	return Rect{W: w / 2, H: h}, Rect{X: w / 2, W: w / 2, H: h}
}

// RenderLegends draws both legends side by side onto s. With an empty dataset the
// surface is only cleared.
func (c *Chart) RenderLegends(s Surface) {
	w, h := s.Size()
	colorBox, sizeBox := LegendBoxes(w, h)
	if len(c.ds) == 0 {
		s.Clear(Rect{W: w, H: h}, background)
		return
	}
	if c.scales.HasColor {
		ColorLegend(s, c.scales.Color, colorBox)
	} else {
		NoDataLegend(s, colorCaption, colorBox)
	}
	if c.scales.HasRadius {
		SizeLegend(s, c.scales.Radius, c.ds.Mean(vehicles.EngineSize), sizeBox)
	} else {
		NoDataLegend(s, sizeCaption, sizeBox)
	}
}
