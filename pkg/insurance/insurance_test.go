package insurance

import (
	"math"
	"testing"

	"github.com/canamort/mortgage-schedule/pkg/validation"
)

func TestComputeFinancing(t *testing.T) {
	tests := []struct {
		name               string
		purchasePrice      float64
		downPaymentPercent float64
		extraFinancing     float64
		surtaxRate         float64
		expectedPremium    float64
		expectedPrincipal  float64
	}{
		{
			name:               "20 percent down needs no insurance",
			purchasePrice:      500000,
			downPaymentPercent: 20,
			expectedPremium:    0,
			expectedPrincipal:  400000,
		},
		{
			name:               "10 percent down pays 3.1 percent premium",
			purchasePrice:      625000,
			downPaymentPercent: 10,
			expectedPremium:    17437.50, // 562500 * 0.031
			expectedPrincipal:  579937.50,
		},
		{
			name:               "15 percent down pays 2.8 percent premium",
			purchasePrice:      400000,
			downPaymentPercent: 15,
			expectedPremium:    9520, // 340000 * 0.028
			expectedPrincipal:  349520,
		},
		{
			name:               "5 percent down pays 4 percent premium",
			purchasePrice:      300000,
			downPaymentPercent: 5,
			expectedPremium:    11400, // 285000 * 0.04
			expectedPrincipal:  296400,
		},
		{
			name:               "surtax applies to the premium only",
			purchasePrice:      625000,
			downPaymentPercent: 10,
			surtaxRate:         0.08,
			expectedPremium:    17437.50,
			expectedPrincipal:  579937.50 + 17437.50*0.08,
		},
		{
			name:               "extra financing is added after insurance",
			purchasePrice:      500000,
			downPaymentPercent: 20,
			extraFinancing:     25000,
			expectedPremium:    0,
			expectedPrincipal:  425000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			financing, err := ComputeFinancing(tt.purchasePrice, tt.downPaymentPercent, tt.extraFinancing, tt.surtaxRate)
			if err != nil {
				t.Fatalf("ComputeFinancing() error = %v", err)
			}
			if math.Abs(financing.PremiumAmount-tt.expectedPremium) > 0.001 {
				t.Errorf("PremiumAmount = %.2f, expected %.2f", financing.PremiumAmount, tt.expectedPremium)
			}
			if math.Abs(financing.TotalPrincipal-tt.expectedPrincipal) > 0.001 {
				t.Errorf("TotalPrincipal = %.2f, expected %.2f", financing.TotalPrincipal, tt.expectedPrincipal)
			}
			if tt.downPaymentPercent >= 20 && financing.SurtaxAmount != 0 {
				t.Errorf("SurtaxAmount = %.2f, expected 0 with no premium", financing.SurtaxAmount)
			}
		})
	}
}

func TestComputeFinancingDownPaymentAgainstPriceOnly(t *testing.T) {
	// Extra financing must never change the down payment or the premium rate.
	base, err := ComputeFinancing(625000, 10, 0, 0)
	if err != nil {
		t.Fatalf("ComputeFinancing() error = %v", err)
	}
	withExtra, err := ComputeFinancing(625000, 10, 100000, 0)
	if err != nil {
		t.Fatalf("ComputeFinancing() error = %v", err)
	}
	if base.DownPayment != withExtra.DownPayment {
		t.Errorf("DownPayment changed with extra financing: %.2f vs %.2f", base.DownPayment, withExtra.DownPayment)
	}
	if base.PremiumRate != withExtra.PremiumRate {
		t.Errorf("PremiumRate changed with extra financing: %.4f vs %.4f", base.PremiumRate, withExtra.PremiumRate)
	}
	if withExtra.TotalPrincipal-base.TotalPrincipal != 100000 {
		t.Errorf("extra financing added %.2f to principal, expected 100000", withExtra.TotalPrincipal-base.TotalPrincipal)
	}
}

func TestComputeFinancingInvalidInput(t *testing.T) {
	tests := []struct {
		name               string
		purchasePrice      float64
		downPaymentPercent float64
	}{
		{name: "below minimum down payment", purchasePrice: 500000, downPaymentPercent: 4.99},
		{name: "zero down payment", purchasePrice: 500000, downPaymentPercent: 0},
		{name: "zero purchase price", purchasePrice: 0, downPaymentPercent: 20},
		{name: "negative purchase price", purchasePrice: -1, downPaymentPercent: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeFinancing(tt.purchasePrice, tt.downPaymentPercent, 0, 0)
			if err == nil {
				t.Fatal("ComputeFinancing() expected error, got nil")
			}
			if !validation.IsInvalidInput(err) {
				t.Errorf("expected invalid-input error, got %v", err)
			}
		})
	}
}
