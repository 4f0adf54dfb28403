// Package scales maps data values onto visual values: positions, radii and colors.
//
// Every scale survives a degenerate domain (min == max): position and radius scales answer
// with the middle of their range, the color scale with the middle of its palette.
package scales

import "math"

// Linear maps [D0,D1] onto [R0,R1] linearly. R0 may exceed R1 (inverted y axis).
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a linear scale. A NaN domain is replaced by [0,1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	if math.IsNaN(d0) || math.IsNaN(d1) {
		d0, d1 = 0, 1
	}
	if d1 < d0 {
		d0, d1 = d1, d0
	}
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map returns the range value for v.
func (s Linear) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	t := (v - s.D0) / (s.D1 - s.D0)
	return s.R0 + t*(s.R1-s.R0)
}

// Nice extends the domain outward to round numbers suited to about n ticks.
func (s Linear) Nice(n int) Linear {
	s.D0, s.D1 = NiceBounds(s.D0, s.D1, n)
	return s
}

// Ticks returns about n round tick values within the domain.
func (s Linear) Ticks(n int) []float64 { return NiceTicks(s.D0, s.D1, n) }
