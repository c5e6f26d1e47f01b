// Package format renders currency and rate values for the text output
// surfaces.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency formats an amount with a dollar sign, two decimals, and
// thousands separators (e.g. "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + groupDigits(fmt.Sprintf("%.2f", math.Abs(amount)))
	}
	return "$" + groupDigits(fmt.Sprintf("%.2f", amount))
}

// Percent formats a value already expressed in percent with two decimals
// (e.g., "10.00%").
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// Rate formats a fractional annual rate as a percentage with three
// decimals (e.g., 0.0489 renders as "4.890%").
func Rate(fraction float64) string {
	return fmt.Sprintf("%.3f%%", fraction*100)
}

// groupDigits inserts thousands separators into a "%.2f"-formatted
// non-negative value.
func groupDigits(formatted string) string {
	dot := strings.IndexByte(formatted, '.')
	intPart, decPart := formatted[:dot], formatted[dot:]
	if len(intPart) <= 3 {
		return formatted
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + decPart
}
