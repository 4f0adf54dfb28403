package scales

import "math"

// tickStep picks a step of 1, 2, 2.5, 5 or 10 × 10^k that splits [lo,hi] into roughly n
// intervals.
func tickStep(lo, hi float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	span := hi - lo
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 2.5:
		return 2.5 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// NiceBounds rounds [lo,hi] outward to multiples of the tick step for n intervals. A
// degenerate or non-finite interval is returned unchanged.
func NiceBounds(lo, hi float64, n int) (float64, float64) {
	step := tickStep(lo, hi, n)
	if step == 0 {
		return lo, hi
	}
	nlo := math.Floor(lo/step) * step
	nhi := math.Ceil(hi/step) * step
	// The rounded interval may call for a coarser step; one more pass settles it.
	if s2 := tickStep(nlo, nhi, n); s2 != step && s2 > 0 {
		nlo = math.Floor(nlo/s2) * s2
		nhi = math.Ceil(nhi/s2) * s2
	}
	return math.Min(round6(nlo), lo), math.Max(round6(nhi), hi)
}

// NiceTicks returns tick values at multiples of the nice step that fall inside [lo,hi]. A
// degenerate interval yields its single value; a non-finite one yields nil.
func NiceTicks(lo, hi float64, n int) []float64 {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return []float64{lo}
	}
	step := tickStep(lo, hi, n)
	start := math.Ceil(lo/step - 1e-9)
	end := math.Floor(hi/step + 1e-9)
	out := make([]float64, 0, int(end-start)+1)
	for i := start; i <= end; i++ {
		out = append(out, round6(i*step))
	}
	return out
}

// round6 rounds to 6 decimal places so labels do not show float noise.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
