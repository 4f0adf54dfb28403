package scene

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder replaces values that are missing or not finite.
const Placeholder = "-"

var printer = message.NewPrinter(language.English)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// FormatCurrency renders whole dollars with thousands separators: 21000 -> "$21,000".
func FormatCurrency(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	n := int64(math.Round(v))
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

// FormatInteger renders v rounded to a whole number without grouping.
func FormatInteger(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return strconv.FormatInt(int64(math.Round(v)), 10)
}

// FormatLitres renders an engine displacement with one decimal: 2.4 -> "2.4 L".
func FormatLitres(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f L", v)
}

// formatTick renders a plain axis number, dropping float noise.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}
