// Package engine computes full amortization schedules for Canadian
// mortgages: per-payment principal/interest splits across a sequence of rate
// terms, additional-payment application, prepayment-limit tracking, and the
// summary aggregates derived from a no-prepayment shadow run.
package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/datetime"
	"github.com/canamort/mortgage-schedule/pkg/insurance"
	"github.com/canamort/mortgage-schedule/pkg/mathutil"
	"github.com/canamort/mortgage-schedule/pkg/payments"
	"github.com/canamort/mortgage-schedule/pkg/prepay"
	"github.com/canamort/mortgage-schedule/pkg/rates"
	"github.com/canamort/mortgage-schedule/pkg/validation"
	"go.uber.org/zap"
)

// Term is one renewal period: a contiguous span of payments at a fixed
// annual rate. A sorted sequence of terms partitions the payment count; each
// term ends where the next begins, and the last term runs to the final
// payment.
type Term struct {
	StartPaymentIndex int     `json:"startPaymentIndex" yaml:"startPaymentIndex"`
	AnnualRate        float64 `json:"annualRate" yaml:"annualRate"`
	TermYears         float64 `json:"termYears" yaml:"termYears"`
}

// Parameters is the full input for one schedule computation. All fields are
// read-only to the engine; a run holds no state beyond its own locals, so
// identical parameters always produce identical schedules.
type Parameters struct {
	PurchasePrice      float64                    `json:"purchasePrice" yaml:"purchasePrice"`
	DownPaymentPercent float64                    `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	ExtraFinancing     float64                    `json:"extraFinancing,omitempty" yaml:"extraFinancing,omitempty"`
	SurtaxRate         float64                    `json:"surtaxRate,omitempty" yaml:"surtaxRate,omitempty"`
	AmortizationYears  float64                    `json:"amortizationYears" yaml:"amortizationYears"`
	Cadence            rates.Cadence              `json:"cadence" yaml:"cadence"`
	StartDate          string                     `json:"startDate" yaml:"startDate"`
	Terms              []Term                     `json:"terms" yaml:"terms"`
	ExtraPayments      []prepay.AdditionalPayment `json:"extraPayments,omitempty" yaml:"extraPayments,omitempty"`
	Limits             *prepay.Limits             `json:"limits,omitempty" yaml:"limits,omitempty"`
}

// Entry is one row of the payment ledger. TotalPayment always equals
// PrincipalPortion plus InterestPortion; ExtraPayment is applied to the
// balance after and separately from the scheduled payment.
type Entry struct {
	Index            int     `json:"index"`
	Date             string  `json:"date"`
	TotalPayment     float64 `json:"totalPayment"`
	PrincipalPortion float64 `json:"principalPortion"`
	InterestPortion  float64 `json:"interestPortion"`
	ExtraPayment     float64 `json:"extraPayment"`
	RemainingBalance float64 `json:"remainingBalance"`
	AnnualRate       float64 `json:"appliedAnnualRate"`
	TermIndex        int     `json:"termIndex"`
	ExceedsLimit     bool    `json:"exceedsLimit,omitempty"`
}

// Summary aggregates one computed schedule.
type Summary struct {
	OriginalPrincipal   float64             `json:"originalPrincipal"`
	Financing           insurance.Financing `json:"financing"`
	TotalInterest       float64             `json:"totalInterest"`
	TotalPaid           float64             `json:"totalPaid"`
	TotalExtraPayments  float64             `json:"totalExtraPayments"`
	InterestSaved       float64             `json:"interestSaved"`
	TimeSavedMonths     int                 `json:"timeSavedMonths"`
	LimitViolations     int                 `json:"limitViolations"`
	PaymentCount        int                 `json:"paymentCount"`
	NominalPaymentCount int                 `json:"nominalPaymentCount"`
	PayoffDate          string              `json:"payoffDate"`
}

// Schedule is the engine's output: the ordered ledger plus its summary.
type Schedule struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// Run computes the amortization schedule for the given parameters. It fails
// with an invalid-input error when the term list is empty or the financing
// cannot be computed; otherwise it is a pure function of its inputs.
func Run(logger *zap.Logger, params Parameters) (*Schedule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(params.Terms) == 0 {
		return nil, validation.InvalidInput("at least one renewal period is required")
	}

	startDate, err := time.Parse(constants.DateTimeLayout, params.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date %q: %w", params.StartDate, err)
	}

	financing, err := insurance.ComputeFinancing(params.PurchasePrice, params.DownPaymentPercent,
		params.ExtraFinancing, params.SurtaxRate)
	if err != nil {
		return nil, err
	}

	paymentsPerYear := rates.PaymentsPerYear(params.Cadence)
	nominalCount := int(math.Round(params.AmortizationYears * float64(paymentsPerYear)))

	logger.Debug("starting amortization run",
		zap.String("op", "engine.Run"),
		zap.Float64("totalPrincipal", financing.TotalPrincipal),
		zap.Int("nominalPaymentCount", nominalCount),
		zap.String("cadence", string(params.Cadence)),
	)

	result := simulate(logger, params, startDate, financing.TotalPrincipal, nominalCount,
		params.ExtraPayments, params.Limits)

	summary := Summary{
		OriginalPrincipal:   financing.TotalPrincipal,
		Financing:           financing,
		TotalInterest:       result.totalInterest,
		TotalPaid:           result.totalPaid,
		TotalExtraPayments:  result.totalExtra,
		LimitViolations:     result.violations,
		PaymentCount:        len(result.entries),
		NominalPaymentCount: nominalCount,
	}
	if len(result.entries) > 0 {
		summary.PayoffDate = result.entries[len(result.entries)-1].Date
	}

	// Savings figures come from a second run with prepayments stripped out;
	// without prepayments both figures are zero and the shadow run is skipped.
	if result.totalExtra > 0 {
		shadow := simulate(logger, params, startDate, financing.TotalPrincipal, nominalCount, nil, nil)
		summary.InterestSaved = mathutil.Max(0, shadow.totalInterest-result.totalInterest)

		nominalMonths := int(math.Round(params.AmortizationYears * constants.MonthsPerYear))
		actualMonths := int(math.Round(float64(len(result.entries)) / float64(paymentsPerYear) * constants.MonthsPerYear))
		summary.TimeSavedMonths = nominalMonths - actualMonths

		logger.Debug("computed prepayment savings",
			zap.String("op", "engine.Run"),
			zap.Float64("interestSaved", summary.InterestSaved),
			zap.Int("timeSavedMonths", summary.TimeSavedMonths),
		)
	}

	return &Schedule{Entries: result.entries, Summary: summary}, nil
}

// runResult holds the loop-local accumulators for one simulation pass.
type runResult struct {
	entries       []Entry
	totalInterest float64
	totalPaid     float64
	totalExtra    float64
	violations    int
}

// simulate walks the payment sequence term by term. The level payment is
// re-sized at every term entry from the then-current balance and the
// payments remaining through the end of the full amortization horizon, which
// reproduces renewal behavior: a new rate mid-amortization changes the
// payment even though the horizon is unchanged.
func simulate(logger *zap.Logger, params Parameters, startDate time.Time, totalPrincipal float64,
	nominalCount int, extras []prepay.AdditionalPayment, limits *prepay.Limits) runResult {

	terms := make([]Term, len(params.Terms))
	copy(terms, params.Terms)
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].StartPaymentIndex < terms[j].StartPaymentIndex
	})

	var result runResult
	balance := totalPrincipal
	index := 1
	limitState := prepay.LimitState{}
	paidOff := false

	for termIdx, term := range terms {
		if paidOff || mathutil.IsZero(balance) {
			break
		}

		termEnd := nominalCount
		if termIdx+1 < len(terms) && terms[termIdx+1].StartPaymentIndex-1 < termEnd {
			termEnd = terms[termIdx+1].StartPaymentIndex - 1
		}
		if term.StartPaymentIndex > nominalCount {
			// Starts beyond the amortization horizon; contributes no payments.
			continue
		}

		periodicRate := rates.PeriodicRate(term.AnnualRate, params.Cadence)
		levelPayment := payments.LevelPayment(balance, periodicRate, nominalCount-index+1)

		logger.Debug("entering rate term",
			zap.String("op", "engine.simulate"),
			zap.Int("termIndex", termIdx+1),
			zap.Float64("annualRate", term.AnnualRate),
			zap.Float64("levelPayment", levelPayment),
			zap.Float64("balance", balance),
		)

		for ; index <= termEnd; index++ {
			interest := balance * periodicRate
			principal := mathutil.Min(levelPayment-interest, balance)
			actualPayment := principal + interest
			balance -= principal

			extra := mathutil.Min(prepay.ExtraAmountAt(index, extras), balance)
			balance -= extra

			date := datetime.PaymentDate(startDate, params.Cadence, index)

			exceeds := false
			if limits != nil && extra > 0 {
				key := prepay.PeriodKey(date, startDate, limits.ResetPolicy)
				exceeds = limitState.CheckAndAccumulate(extra, key, totalPrincipal, limits.LumpSumLimitPercent)
				if exceeds {
					result.violations++
				}
			}

			result.totalInterest += interest
			result.totalPaid += actualPayment
			result.totalExtra += extra
			result.entries = append(result.entries, Entry{
				Index:            index,
				Date:             date.Format(constants.DateTimeLayout),
				TotalPayment:     actualPayment,
				PrincipalPortion: principal,
				InterestPortion:  interest,
				ExtraPayment:     extra,
				RemainingBalance: mathutil.Max(balance, 0),
				AnnualRate:       term.AnnualRate,
				TermIndex:        termIdx + 1,
				ExceedsLimit:     exceeds,
			})

			if mathutil.IsZero(balance) {
				paidOff = true
				index++
				break
			}
		}
	}

	return result
}
