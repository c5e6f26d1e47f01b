package prepay

import (
	"strconv"
	"time"

	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/mathutil"
)

// Reset policies for the lump-sum limit period.
const (
	ResetCalendarYear = "calendarYear"
	ResetAnniversary  = "anniversary"
)

// Limits holds the contractual prepayment ceilings. PaymentIncreaseLimitPercent
// is accepted from configuration but the simulation loop does not evaluate
// it; only the lump-sum limit is enforced.
type Limits struct {
	LumpSumLimitPercent         float64 `json:"lumpSumLimitPercent" yaml:"lumpSumLimitPercent"`
	PaymentIncreaseLimitPercent float64 `json:"paymentIncreaseLimitPercent,omitempty" yaml:"paymentIncreaseLimitPercent,omitempty"`
	ResetPolicy                 string  `json:"resetPolicy" yaml:"resetPolicy"`
}

// PeriodKey identifies the limit period a payment date falls in. Calendar
// year periods are keyed by the date's year; anniversary periods by the
// number of whole 12-month anniversaries since the mortgage start, computed
// from the year and month only so the period boundary tracks the month the
// mortgage started regardless of day-of-month.
func PeriodKey(date, mortgageStart time.Time, resetPolicy string) string {
	if resetPolicy == ResetCalendarYear {
		return strconv.Itoa(date.Year())
	}
	months := (date.Year()-mortgageStart.Year())*constants.MonthsPerYear +
		int(date.Month()) - int(mortgageStart.Month())
	return strconv.Itoa(months / constants.MonthsPerYear)
}

// LimitState is the running per-period accumulator for one amortization run.
// It persists across payments within a run and is discarded when the run
// returns.
type LimitState struct {
	CurrentKey   string
	CurrentTotal float64
}

// CheckAndAccumulate adds an extra payment to the running period total,
// resetting the total when the period key changes, and reports whether the
// cumulative total for the period now breaches the lump-sum ceiling. The
// comparison uses the cumulative total, so a small payment can be flagged
// when earlier payments in the same period already consumed the allowance.
func (s *LimitState) CheckAndAccumulate(extraAmount float64, key string, originalPrincipal, limitPercent float64) bool {
	if key != s.CurrentKey {
		s.CurrentKey = key
		s.CurrentTotal = 0
	}
	s.CurrentTotal += extraAmount
	return s.CurrentTotal > mathutil.ApplyPercentage(originalPrincipal, limitPercent)
}
