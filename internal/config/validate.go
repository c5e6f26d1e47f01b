package config

import (
	"fmt"
	"math"

	"github.com/canamort/mortgage-schedule/pkg/prepay"
	"github.com/canamort/mortgage-schedule/pkg/rates"
)

// ValidateConfiguration checks the mortgage configuration for conditions
// that will not fail the computation but likely indicate mistakes, and
// returns them as human-readable warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	m := conf.Mortgage

	if len(m.Terms) == 0 {
		warnings = append(warnings, "no renewal periods configured; the schedule computation will fail")
	}

	if m.AmortizationYears <= 0 {
		warnings = append(warnings, "amortizationYears is not positive; the schedule will be empty")
	}

	cadence, err := rates.ParseCadence(m.Cadence)
	if err != nil {
		warnings = append(warnings, err.Error())
		return warnings
	}

	nominalCount := int(math.Round(m.AmortizationYears * float64(rates.PaymentsPerYear(cadence))))
	for i, term := range m.Terms {
		if term.StartPaymentIndex > nominalCount {
			warnings = append(warnings, fmt.Sprintf(
				"term %d starts at payment %d, beyond the %d-payment horizon; it will yield no payments",
				i+1, term.StartPaymentIndex, nominalCount))
		}
	}

	for i, extra := range m.ExtraPayments {
		if !extra.IsActive() {
			warnings = append(warnings, fmt.Sprintf("extra payment %d is inactive and will be ignored", i+1))
		}
		if extra.EndPaymentIndex > 0 && extra.EndPaymentIndex < extra.StartPaymentIndex {
			warnings = append(warnings, fmt.Sprintf(
				"extra payment %d ends at payment %d, before it starts at payment %d; it will never fire",
				i+1, extra.EndPaymentIndex, extra.StartPaymentIndex))
		}
		if extra.Kind != prepay.KindSingle && extra.Kind != prepay.KindRecurring {
			warnings = append(warnings, fmt.Sprintf(
				"extra payment %d has unknown kind %q and will be ignored", i+1, extra.Kind))
		}
	}

	if m.Limits != nil {
		if m.Limits.ResetPolicy != prepay.ResetCalendarYear && m.Limits.ResetPolicy != prepay.ResetAnniversary {
			warnings = append(warnings, fmt.Sprintf(
				"limits.resetPolicy %q is not %q or %q; it will be treated as %q",
				m.Limits.ResetPolicy, prepay.ResetCalendarYear, prepay.ResetAnniversary, prepay.ResetAnniversary))
		}
		if m.Limits.PaymentIncreaseLimitPercent > 0 {
			warnings = append(warnings,
				"limits.paymentIncreaseLimitPercent is declared but not enforced by the simulation; only the lump-sum limit is tracked")
		}
	}

	return warnings
}
