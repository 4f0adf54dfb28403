// Package vehicles turns loosely structured tabular rows into validated vehicle records.
//
// Column headers are matched by their canonical form (see NormalizeKey) against a fixed
// field table, so "Retail Price", "RetailPrice" and "retail-price" all land on the same field.
// Numeric cells are coerced permissively; anything unparsable becomes NaN and is dealt with
// by Filter (required fields) or by the renderer's fallbacks (optional fields).
package vehicles

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Defaults used when a string field is absent or blank.
const (
	UnknownName = "Unknown"
	UnknownType = "-"
)

// RawRecord is one input row keyed by its original header spelling.
type RawRecord map[string]string

// Vehicle is a typed, immutable record built from one input row.
type Vehicle struct {
	Name        string
	Type        string
	RetailPrice float64 // required finite
	DealerCost  float64 // 0 when absent
	EngineSize  float64 // litres, NaN when absent
	Horsepower  float64 // required finite
	CityMPG     float64 // NaN when absent
	AWD         string
	RWD         string
	// Row is the 1-based data row the record came from (0 when unknown).
	Row int
}

// Valid reports whether the required numeric fields are finite and the retail price is
// not negative.
func (v Vehicle) Valid() bool {
	return isFinite(v.RetailPrice) && v.RetailPrice >= 0 && isFinite(v.Horsepower)
}

type field int

const (
	fieldName field = iota
	fieldType
	fieldRetailPrice
	fieldDealerCost
	fieldEngineSize
	fieldHorsepower
	fieldCityMPG
	fieldAWD
	fieldRWD
	numFields
)

// fieldKeys lists the canonical keys per field in priority order. The first entry is the
// exact name; later entries are aliases seen in the wild ("Engine Size" without the unit).
var fieldKeys = [numFields][]string{
	fieldName:        {"name"},
	fieldType:        {"type"},
	fieldRetailPrice: {"retailprice"},
	fieldDealerCost:  {"dealercost"},
	fieldEngineSize:  {"enginesizel", "enginesize"},
	fieldHorsepower:  {"horsepowerhp", "horsepower"},
	fieldCityMPG:     {"citymilespergallon", "citympg"},
	fieldAWD:         {"awd"},
	fieldRWD:         {"rwd"},
}

// canonical maps canonical keys to cell values.
type canonical map[string]string

func (c canonical) lookup(f field) (string, bool) {
	for _, k := range fieldKeys[f] {
		if v, ok := c[k]; ok {
			return v, true
		}
	}
	return "", false
}

func (c canonical) text(f field, def string) string {
	v, ok := c.lookup(f)
	if !ok {
		return def
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

func (c canonical) number(f field) float64 {
	v, ok := c.lookup(f)
	if !ok {
		return math.NaN()
	}
	return ParseNumber(v)
}

func (c canonical) vehicle() Vehicle {
	dealer := c.number(fieldDealerCost)
	if !isFinite(dealer) {
		dealer = 0
	}
	return Vehicle{
		Name:        c.text(fieldName, UnknownName),
		Type:        c.text(fieldType, UnknownType),
		RetailPrice: c.number(fieldRetailPrice),
		DealerCost:  dealer,
		EngineSize:  c.number(fieldEngineSize),
		Horsepower:  c.number(fieldHorsepower),
		CityMPG:     c.number(fieldCityMPG),
		AWD:         c.text(fieldAWD, ""),
		RWD:         c.text(fieldRWD, ""),
	}
}

// ParseRecord builds a Vehicle from a header-keyed row. Headers that normalize to the same
// key collide; they are applied in sorted header order and the last one wins, which keeps
// the result independent of map iteration order.
func ParseRecord(raw RawRecord) Vehicle {
	headers := make([]string, 0, len(raw))
	for h := range raw {
		headers = append(headers, h)
	}
	sort.Strings(headers)
	c := make(canonical, len(raw))
	for _, h := range headers {
		c[NormalizeKey(h)] = raw[h]
	}
	return c.vehicle()
}

// ParseRow builds a Vehicle from a positional row. Columns are applied left to right, so on
// a canonical-key collision the rightmost column wins. Cells missing from a short row are
// treated as absent.
func ParseRow(header, row []string) Vehicle {
	c := make(canonical, len(header))
	for i, h := range header {
		if i >= len(row) {
			break
		}
		c[NormalizeKey(h)] = row[i]
	}
	return c.vehicle()
}

// ParseNumber is a permissive numeric cast: every rune other than digits, sign and decimal
// point is dropped before parsing, so "$12,345" yields 12345. Empty or unparsable input
// yields NaN.
func ParseNumber(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
