package vehicles

import "math"

// Dataset is the ordered set of records that passed Filter. Scales and rendering only ever
// look at a Dataset, never at raw input.
type Dataset []Vehicle

// Filter keeps records whose retail price and horsepower are both finite and whose price is
// not negative, preserving order.
// Engine size and city MPG are not checked; the renderer draws fallbacks for those.
func Filter(records []Vehicle) Dataset {
	out := make(Dataset, 0, len(records))
	for _, v := range records {
		if v.Valid() {
			out = append(out, v)
		}
	}
	return out
}

// Extent returns min and max of the finite values selected by value, and how many finite
// values there were. With n == 0 both bounds are NaN.
func (d Dataset) Extent(value func(Vehicle) float64) (lo, hi float64, n int) {
	lo, hi = math.NaN(), math.NaN()
	for _, v := range d {
		x := value(v)
		if !isFinite(x) {
			continue
		}
		if n == 0 || x < lo {
			lo = x
		}
		if n == 0 || x > hi {
			hi = x
		}
		n++
	}
	return lo, hi, n
}

// Mean returns the arithmetic mean of the finite values selected by value (NaN if none).
func (d Dataset) Mean(value func(Vehicle) float64) float64 {
	sum, n := 0.0, 0
	for _, v := range d {
		x := value(v)
		if !isFinite(x) {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Field accessors for Extent and Mean.
func RetailPrice(v Vehicle) float64 { return v.RetailPrice }
func Horsepower(v Vehicle) float64  { return v.Horsepower }
func EngineSize(v Vehicle) float64  { return v.EngineSize }
func CityMPG(v Vehicle) float64     { return v.CityMPG }
