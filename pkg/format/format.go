// Package format renders metric values for display. Aggregates over empty or
// fully-missing columns surface as NaN; every formatter here renders that
// sentinel as "n/a" instead of leaking "NaN" into a report.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Missing is the rendering used for undefined aggregate values.
const Missing = "n/a"

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if math.IsNaN(amount) {
		return Missing
	}
	formatted := groupDigits(fmt.Sprintf("%.2f", math.Abs(amount)))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeCurrency returns a currency string rounded to whole dollars (e.g., "$15,127").
func WholeCurrency(amount float64) string {
	if math.IsNaN(amount) {
		return Missing
	}
	formatted := groupDigits(fmt.Sprintf("%.0f", math.Abs(amount)))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Millions returns a compact currency string in millions (e.g., "$612.3M").
func Millions(amount float64) string {
	if math.IsNaN(amount) {
		return Missing
	}
	return fmt.Sprintf("$%.1fM", amount/1e6)
}

// Percent returns a percentage string with one decimal (e.g., "13.1%").
func Percent(value float64) string {
	if math.IsNaN(value) {
		return Missing
	}
	return fmt.Sprintf("%.1f%%", value)
}

// Cell renders a numeric table cell. Missing values become the empty string,
// matching how absent cells appear in the source data and in exports.
func Cell(value float64) string {
	if math.IsNaN(value) {
		return ""
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

// groupDigits inserts comma separators into the integer part of an unsigned
// decimal string.
func groupDigits(value string) string {
	parts := strings.SplitN(value, ".", 2)
	intPart := parts[0]

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if len(parts) == 2 {
		return intPart + "." + parts[1]
	}
	return intPart
}
