// Package datetime provides date and time utility functions.
package datetime

import (
	"math"
	"time"

	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/rates"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// PaymentDate returns the calendar date of the payment with the given 1-based
// index. Index 1 falls on the start date. Weekly and biweekly cadences step
// exact 7- and 14-day intervals; monthly steps an average 30.44 days rounded
// to the nearest whole day per index rather than using calendar-month
// arithmetic, which keeps dates stable against prior output at the cost of
// drift over long horizons.
func PaymentDate(startDate time.Time, cadence rates.Cadence, index int) time.Time {
	var offsetDays int
	switch cadence {
	case rates.Weekly:
		offsetDays = 7 * (index - 1)
	case rates.Biweekly, rates.AcceleratedBiweekly:
		offsetDays = 14 * (index - 1)
	default:
		offsetDays = int(math.Round(constants.AverageDaysPerMonth * float64(index-1)))
	}
	return startDate.AddDate(0, 0, offsetDays)
}
