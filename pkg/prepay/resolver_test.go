package prepay

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestExtraAmountAtSingle(t *testing.T) {
	rules := []AdditionalPayment{
		{Kind: KindSingle, Amount: 10000, StartPaymentIndex: 12},
	}

	tests := []struct {
		index    int
		expected float64
	}{
		{1, 0},
		{11, 0},
		{12, 10000},
		{13, 0},
		{24, 0},
	}

	for _, tt := range tests {
		if got := ExtraAmountAt(tt.index, rules); got != tt.expected {
			t.Errorf("ExtraAmountAt(%d) = %.2f, expected %.2f", tt.index, got, tt.expected)
		}
	}
}

func TestExtraAmountAtRecurring(t *testing.T) {
	rules := []AdditionalPayment{
		{Kind: KindRecurring, Amount: 500, StartPaymentIndex: 6, EndPaymentIndex: 18, IntervalPayments: 6},
	}

	tests := []struct {
		index    int
		expected float64
	}{
		{5, 0},
		{6, 500},  // fires at the start index
		{7, 0},
		{12, 500}, // every interval thereafter
		{18, 500}, // end bound is inclusive
		{24, 0},   // past the end
	}

	for _, tt := range tests {
		if got := ExtraAmountAt(tt.index, rules); got != tt.expected {
			t.Errorf("ExtraAmountAt(%d) = %.2f, expected %.2f", tt.index, got, tt.expected)
		}
	}
}

func TestExtraAmountAtDefaultInterval(t *testing.T) {
	// An omitted interval means every payment.
	rules := []AdditionalPayment{
		{Kind: KindRecurring, Amount: 100, StartPaymentIndex: 3},
	}
	for index := 3; index <= 6; index++ {
		if got := ExtraAmountAt(index, rules); got != 100 {
			t.Errorf("ExtraAmountAt(%d) = %.2f, expected 100", index, got)
		}
	}
	if got := ExtraAmountAt(2, rules); got != 0 {
		t.Errorf("ExtraAmountAt(2) = %.2f, expected 0", got)
	}
}

func TestExtraAmountAtInactiveAndStacked(t *testing.T) {
	rules := []AdditionalPayment{
		{Kind: KindSingle, Amount: 10000, StartPaymentIndex: 12, Active: boolPtr(false)},
		{Kind: KindRecurring, Amount: 250, StartPaymentIndex: 12, IntervalPayments: 12},
		{Kind: KindSingle, Amount: 1000, StartPaymentIndex: 12},
	}

	// Inactive rule contributes nothing; the two active rules stack.
	if got := ExtraAmountAt(12, rules); got != 1250 {
		t.Errorf("ExtraAmountAt(12) = %.2f, expected 1250", got)
	}
	if got := ExtraAmountAt(24, rules); got != 250 {
		t.Errorf("ExtraAmountAt(24) = %.2f, expected 250", got)
	}
}

func TestIsActiveDefaultsTrue(t *testing.T) {
	if !(AdditionalPayment{}).IsActive() {
		t.Error("IsActive() with nil Active = false, expected true")
	}
	if (AdditionalPayment{Active: boolPtr(false)}).IsActive() {
		t.Error("IsActive() with explicit false = true, expected false")
	}
}
