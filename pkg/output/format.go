// Package output provides utilities for formatting and displaying computed
// schedules.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/canamort/mortgage-schedule/internal/engine"
	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TableFormat writes a human-readable table, one row per ledger entry.
func TableFormat(w io.Writer, schedule *engine.Schedule) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "  # | Date       | Payment     | Principal   | Interest    | Extra       | Balance       | Rate   | Term\n")
	fmt.Fprintf(w, "___ | __________ | ___________ | ___________ | ___________ | ___________ | _____________ | ______ | ____\n")
	for _, entry := range schedule.Entries {
		flag := ""
		if entry.ExceedsLimit {
			flag = " *"
		}
		_, _ = p.Fprintf(w, "%3d | %s | $%10.2f | $%10.2f | $%10.2f | $%10.2f | $%12.2f | %s | %d%s\n",
			entry.Index, entry.Date, entry.TotalPayment, entry.PrincipalPortion,
			entry.InterestPortion, entry.ExtraPayment, entry.RemainingBalance,
			format.Rate(entry.AnnualRate), entry.TermIndex, flag)
	}
	if schedule.Summary.LimitViolations > 0 {
		fmt.Fprintf(w, "\n* exceeds the lump-sum prepayment limit (%d payments)\n",
			schedule.Summary.LimitViolations)
	}
}

// CsvFormat writes the ledger in comma-separated value format.
func CsvFormat(w io.Writer, schedule *engine.Schedule) {
	fmt.Fprintf(w, `"index","date","payment","principal","interest","extra","balance","rate","term","exceedsLimit"`)
	fmt.Fprintf(w, "\n")
	for _, entry := range schedule.Entries {
		fmt.Fprintf(w, `"%d","%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.3f","%d","%t"`,
			entry.Index, entry.Date, entry.TotalPayment, entry.PrincipalPortion,
			entry.InterestPortion, entry.ExtraPayment, entry.RemainingBalance,
			entry.AnnualRate*constants.PercentageMultiplier, entry.TermIndex, entry.ExceedsLimit)
		fmt.Fprintf(w, "\n")
	}
}

// ReportFormat writes a human-readable report: purchase details, payment
// summary, savings from prepayments when any occurred, then the full table.
func ReportFormat(w io.Writer, params engine.Parameters, schedule *engine.Schedule) {
	summary := schedule.Summary
	financing := summary.Financing

	fmt.Fprintf(w, "--- Mortgage details ---\n")
	fmt.Fprintf(w, "Purchase price:     %s\n", format.Currency(params.PurchasePrice))
	fmt.Fprintf(w, "Down payment:       %s (%s)\n", format.Currency(financing.DownPayment), format.Percent(params.DownPaymentPercent))
	fmt.Fprintf(w, "Mortgage amount:    %s\n", format.Currency(financing.LoanAmount))
	if financing.PremiumAmount > 0 {
		fmt.Fprintf(w, "Insurance premium:  %s (%s)\n", format.Currency(financing.PremiumAmount), format.Percent(financing.PremiumRate*constants.PercentageMultiplier))
		if financing.SurtaxAmount > 0 {
			fmt.Fprintf(w, "Insurance surtax:   %s\n", format.Currency(financing.SurtaxAmount))
		}
	}
	if params.ExtraFinancing > 0 {
		fmt.Fprintf(w, "Extra financing:    %s\n", format.Currency(params.ExtraFinancing))
	}
	fmt.Fprintf(w, "Total principal:    %s\n", format.Currency(summary.OriginalPrincipal))

	fmt.Fprintf(w, "\n--- Payment summary ---\n")
	fmt.Fprintf(w, "Payments made:      %d of %d\n", summary.PaymentCount, summary.NominalPaymentCount)
	fmt.Fprintf(w, "Payoff date:        %s\n", summary.PayoffDate)
	fmt.Fprintf(w, "Total paid:         %s\n", format.Currency(summary.TotalPaid))
	fmt.Fprintf(w, "Total interest:     %s\n", format.Currency(summary.TotalInterest))

	if summary.TotalExtraPayments > 0 {
		fmt.Fprintf(w, "\n--- Savings from prepayments ---\n")
		fmt.Fprintf(w, "Extra payments:     %s\n", format.Currency(summary.TotalExtraPayments))
		fmt.Fprintf(w, "Interest saved:     %s\n", format.Currency(summary.InterestSaved))
		fmt.Fprintf(w, "Time saved:         %d months\n", summary.TimeSavedMonths)
		if summary.LimitViolations > 0 {
			fmt.Fprintf(w, "Limit violations:   %d\n", summary.LimitViolations)
		}
	}

	fmt.Fprintf(w, "\n")
	TableFormat(w, schedule)
}

// JSONFormat writes the schedule verbatim as indented JSON.
func JSONFormat(w io.Writer, schedule *engine.Schedule) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schedule)
}
