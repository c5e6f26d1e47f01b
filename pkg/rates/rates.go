// Package rates defines payment cadences and converts nominal annual rates
// into effective per-period rates under Canadian semi-annual compounding.
package rates

import (
	"fmt"
	"math"
)

// Cadence is the payment frequency for a mortgage.
type Cadence string

const (
	Monthly             Cadence = "monthly"
	Weekly              Cadence = "weekly"
	Biweekly            Cadence = "biweekly"
	AcceleratedBiweekly Cadence = "acceleratedBiweekly"
)

// ParseCadence validates a cadence string from configuration or API input.
func ParseCadence(value string) (Cadence, error) {
	switch Cadence(value) {
	case Monthly, Weekly, Biweekly, AcceleratedBiweekly:
		return Cadence(value), nil
	}
	return "", fmt.Errorf("expected cadence of %s, %s, %s, or %s, got %q",
		Monthly, Weekly, Biweekly, AcceleratedBiweekly, value)
}

// PaymentsPerYear returns the number of payments per year for a cadence.
// Accelerated biweekly uses the same count as plain biweekly; the two
// cadences differ in labeling only.
func PaymentsPerYear(cadence Cadence) int {
	switch cadence {
	case Weekly:
		return 52
	case Biweekly, AcceleratedBiweekly:
		return 26
	default:
		return 12
	}
}

// PeriodicRate converts a nominal annual rate (a fraction, e.g. 0.05) into
// the effective rate for one payment period. Canadian fixed mortgage rates
// compound semi-annually, so the conversion goes through the semi-annual
// rate rather than dividing the annual rate by the payment count.
func PeriodicRate(annualRate float64, cadence Cadence) float64 {
	if annualRate == 0 {
		return 0
	}
	semiAnnualRate := annualRate / 2
	paymentsPerYear := float64(PaymentsPerYear(cadence))
	return math.Pow(1+semiAnnualRate, 2/paymentsPerYear) - 1
}
