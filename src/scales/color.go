package scales

import (
	"image/color"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/palette/moreland"
)

// FallbackColor fills marks whose color value is missing.
var FallbackColor = drawing.ColorFromHex("999999")

const paletteSamples = 256

// Sequential maps [D0,D1] onto a perceptually uniform palette running from dark (low) to
// light (high). Values outside the domain are clamped.
type Sequential struct {
	D0, D1 float64
	ramp   []drawing.Color
}

// NewSequential samples the extended Kindlmann palette once and returns a color scale over
// [d0,d1]. A NaN domain is replaced by [0,1].
func NewSequential(d0, d1 float64) Sequential {
	if math.IsNaN(d0) || math.IsNaN(d1) {
		d0, d1 = 0, 1
	}
	if d1 < d0 {
		d0, d1 = d1, d0
	}
	return Sequential{D0: d0, D1: d1, ramp: sampleRamp()}
}

func sampleRamp() []drawing.Color {
	cm := moreland.ExtendedKindlmann()
	cm.SetMin(0)
	cm.SetMax(1)
	ramp := make([]drawing.Color, paletteSamples)
	for i := range ramp {
		c, err := cm.At(float64(i) / float64(paletteSamples-1))
		if err != nil {
			ramp[i] = FallbackColor
			continue
		}
		ramp[i] = toDrawing(c)
	}
	return ramp
}

func toDrawing(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Map returns the color for v. NaN maps to FallbackColor.
func (s Sequential) Map(v float64) drawing.Color {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FallbackColor
	}
	t := 0.5
	if s.D1 != s.D0 {
		t = (clamp(v, s.D0, s.D1) - s.D0) / (s.D1 - s.D0)
	}
	return s.At(t)
}

// At returns the palette color at fraction t in [0,1].
func (s Sequential) At(t float64) drawing.Color {
	ramp := s.ramp
	if len(ramp) == 0 {
		ramp = sampleRamp()
	}
	pos := clamp(t, 0, 1) * float64(len(ramp)-1)
	i := int(math.Floor(pos))
	if i >= len(ramp)-1 {
		return ramp[len(ramp)-1]
	}
	return lerpColor(ramp[i], ramp[i+1], pos-float64(i))
}

func lerpColor(a, b drawing.Color, f float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
