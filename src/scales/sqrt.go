package scales

import "math"

// Radius bounds for marks, in logical canvas units.
const (
	MinRadius      = 3.0
	MaxRadius      = 14.0
	FallbackRadius = 4.0
)

// Sqrt maps [D0,D1] onto radii [R0,R1] so that the circle area, not the radius, grows
// linearly with the value: r(v)² = R0² + t·(R1² − R0²) with t the position of v in the
// domain. Values outside the domain are clamped.
type Sqrt struct {
	D0, D1 float64
	R0, R1 float64
}

// NewSqrt returns an area-linear radius scale. A NaN domain is replaced by [0,1].
func NewSqrt(d0, d1, r0, r1 float64) Sqrt {
	if math.IsNaN(d0) || math.IsNaN(d1) {
		d0, d1 = 0, 1
	}
	if d1 < d0 {
		d0, d1 = d1, d0
	}
	return Sqrt{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map returns the radius for v. NaN maps to NaN; see MapOr.
func (s Sqrt) Map(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	if s.D1 == s.D0 {
		return math.Sqrt((s.R0*s.R0 + s.R1*s.R1) / 2)
	}
	t := (clamp(v, s.D0, s.D1) - s.D0) / (s.D1 - s.D0)
	a0, a1 := s.R0*s.R0, s.R1*s.R1
	return math.Sqrt(a0 + t*(a1-a0))
}

// MapOr returns Map(v), or fallback when v is not finite.
func (s Sqrt) MapOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return s.Map(v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
