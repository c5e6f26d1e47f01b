package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/canamort/mortgage-schedule/internal/engine"
	"github.com/canamort/mortgage-schedule/pkg/insurance"
	"github.com/canamort/mortgage-schedule/pkg/rates"
)

func sampleSchedule() (*engine.Schedule, engine.Parameters) {
	params := engine.Parameters{
		PurchasePrice:      625000,
		DownPaymentPercent: 10,
		AmortizationYears:  25,
		Cadence:            rates.Monthly,
		StartDate:          "2026-01-01",
		Terms: []engine.Term{
			{StartPaymentIndex: 1, AnnualRate: 0.05, TermYears: 25},
		},
	}
	schedule := &engine.Schedule{
		Entries: []engine.Entry{
			{
				Index:            1,
				Date:             "2026-01-01",
				TotalPayment:     3373.22,
				PrincipalPortion: 981.57,
				InterestPortion:  2391.65,
				ExtraPayment:     0,
				RemainingBalance: 578955.93,
				AnnualRate:       0.05,
				TermIndex:        1,
			},
			{
				Index:            2,
				Date:             "2026-01-31",
				TotalPayment:     3373.22,
				PrincipalPortion: 985.62,
				InterestPortion:  2387.60,
				ExtraPayment:     10000,
				RemainingBalance: 567970.31,
				AnnualRate:       0.05,
				TermIndex:        1,
				ExceedsLimit:     true,
			},
		},
		Summary: engine.Summary{
			OriginalPrincipal: 579937.50,
			Financing: insurance.Financing{
				DownPayment:    62500,
				LoanAmount:     562500,
				PremiumRate:    0.031,
				PremiumAmount:  17437.50,
				TotalPrincipal: 579937.50,
			},
			TotalInterest:       4779.25,
			TotalPaid:           6746.44,
			TotalExtraPayments:  10000,
			InterestSaved:       1234.56,
			TimeSavedMonths:     5,
			LimitViolations:     1,
			PaymentCount:        2,
			NominalPaymentCount: 300,
			PayoffDate:          "2026-01-31",
		},
	}
	return schedule, params
}

func TestTableFormat(t *testing.T) {
	schedule, _ := sampleSchedule()
	var buf bytes.Buffer
	TableFormat(&buf, schedule)
	got := buf.String()

	for _, want := range []string{"2026-01-01", "5.000%", "10,000.00", "578,955.93", "*"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	schedule, _ := sampleSchedule()
	var buf bytes.Buffer
	CsvFormat(&buf, schedule)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, expected header plus 2 rows", len(lines))
	}
	if lines[0] != `"index","date","payment","principal","interest","extra","balance","rate","term","exceedsLimit"` {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"1","2026-01-01","3373.22"`) {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"true"`) {
		t.Errorf("second row missing exceedsLimit flag: %s", lines[2])
	}
}

func TestReportFormat(t *testing.T) {
	schedule, params := sampleSchedule()
	var buf bytes.Buffer
	ReportFormat(&buf, params, schedule)
	got := buf.String()

	for _, want := range []string{
		"Mortgage details",
		"$625,000.00",
		"(10.00%)",
		"Insurance premium:  $17,437.50 (3.10%)",
		"Total principal:    $579,937.50",
		"Savings from prepayments",
		"Interest saved:     $1,234.56",
		"Time saved:         5 months",
		"Limit violations:   1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report output missing %q", want)
		}
	}
}

func TestReportFormatOmitsConditionalSections(t *testing.T) {
	schedule, params := sampleSchedule()
	schedule.Summary.TotalExtraPayments = 0
	schedule.Summary.Financing.PremiumAmount = 0
	var buf bytes.Buffer
	ReportFormat(&buf, params, schedule)
	got := buf.String()

	if strings.Contains(got, "Savings from prepayments") {
		t.Error("savings section present without extra payments")
	}
	if strings.Contains(got, "Insurance premium") {
		t.Error("insurance line present without a premium")
	}
}

func TestJSONFormatRoundTrips(t *testing.T) {
	schedule, _ := sampleSchedule()
	var buf bytes.Buffer
	if err := JSONFormat(&buf, schedule); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded engine.Schedule
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode serialized schedule: %v", err)
	}
	if len(decoded.Entries) != 2 || decoded.Summary.OriginalPrincipal != 579937.50 {
		t.Errorf("round-tripped schedule mismatch: %+v", decoded.Summary)
	}
	if !decoded.Entries[1].ExceedsLimit || decoded.Entries[0].ExceedsLimit {
		t.Error("exceedsLimit flags lost in serialization")
	}
}
