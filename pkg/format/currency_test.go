package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"small amount", 12.3, "$12.30"},
		{"thousands grouping", 1234.56, "$1,234.56"},
		{"millions grouping", 1234567.89, "$1,234,567.89"},
		{"negative", -1234.56, "-$1,234.56"},
		{"zero", 0, "$0.00"},
		{"exact thousand", 1000, "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(10); got != "10.00%" {
		t.Errorf("Percent(10) = %q, expected 10.00%%", got)
	}
	if got := Percent(3.1); got != "3.10%" {
		t.Errorf("Percent(3.1) = %q, expected 3.10%%", got)
	}
}

func TestRate(t *testing.T) {
	if got := Rate(0.0489); got != "4.890%" {
		t.Errorf("Rate(0.0489) = %q, expected 4.890%%", got)
	}
	if got := Rate(0); got != "0.000%" {
		t.Errorf("Rate(0) = %q, expected 0.000%%", got)
	}
}
