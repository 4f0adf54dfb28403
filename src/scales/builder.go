package scales

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

// Tick counts the position domains are rounded for.
const (
	XTicks = 8
	YTicks = 6
)

// Set holds the four scales derived from one Dataset. HasRadius and HasColor are false
// when no record carries a finite engine size or city MPG; every mark then uses the
// fallback and the corresponding scale describes nothing.
type Set struct {
	X      Linear
	Y      Linear
	Radius Sqrt
	Color  Sequential

	HasRadius bool
	HasColor  bool
}

// Build derives all scales from the filtered dataset. X spans [0,innerW], Y spans
// [innerH,0] so larger horsepower plots higher. Position domains are extended to nice
// bounds; radius and color domains are the raw extents of the finite values.
func Build(ds vehicles.Dataset, innerW, innerH float64) Set {
	xlo, xhi, _ := ds.Extent(vehicles.RetailPrice)
	ylo, yhi, _ := ds.Extent(vehicles.Horsepower)
	elo, ehi, en := ds.Extent(vehicles.EngineSize)
	clo, chi, cn := ds.Extent(vehicles.CityMPG)
	return Set{
		X:         NewLinear(xlo, xhi, 0, innerW).Nice(XTicks),
		Y:         NewLinear(ylo, yhi, innerH, 0).Nice(YTicks),
		Radius:    NewSqrt(elo, ehi, MinRadius, MaxRadius),
		Color:     NewSequential(clo, chi),
		HasRadius: en > 0,
		HasColor:  cn > 0,
	}
}

// RadiusFor returns the mark radius for an engine size, FallbackRadius when unknown.
func (s Set) RadiusFor(engine float64) float64 {
	return s.Radius.MapOr(engine, FallbackRadius)
}

// ColorFor returns the mark fill for a city MPG value, FallbackColor when unknown.
func (s Set) ColorFor(mpg float64) drawing.Color {
	if math.IsNaN(mpg) || math.IsInf(mpg, 0) {
		return FallbackColor
	}
	return s.Color.Map(mpg)
}
