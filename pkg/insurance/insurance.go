// Package insurance derives the financed principal of a purchase, including
// the mortgage default insurance premium and the provincial surtax on it.
package insurance

import (
	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/mathutil"
	"github.com/canamort/mortgage-schedule/pkg/validation"
)

// Financing is the breakdown of how a purchase is funded.
type Financing struct {
	DownPayment    float64 `json:"downPayment"`
	LoanAmount     float64 `json:"loanAmount"`
	PremiumRate    float64 `json:"premiumRate"`
	PremiumAmount  float64 `json:"premiumAmount"`
	SurtaxAmount   float64 `json:"surtaxAmount"`
	TotalPrincipal float64 `json:"totalPrincipal"`
}

// premiumRateFor returns the default-insurance premium rate for a down
// payment percentage. Rates follow the standard insurer table; at or above
// 20% down no insurance is required.
func premiumRateFor(downPaymentPercent float64) (float64, error) {
	switch {
	case downPaymentPercent >= constants.UninsuredDownPaymentPercent:
		return 0, nil
	case downPaymentPercent >= 15:
		return 0.028, nil
	case downPaymentPercent >= 10:
		return 0.031, nil
	case downPaymentPercent >= constants.MinimumDownPaymentPercent:
		return 0.04, nil
	}
	return 0, validation.InvalidInput("down payment below minimum: %.2f%% is less than %.0f%%",
		downPaymentPercent, constants.MinimumDownPaymentPercent)
}

// ComputeFinancing derives the down payment, base loan, insurance premium,
// surtax, and total financed principal for a purchase. The down payment
// percentage applies to the purchase price only; extra approved financing is
// added on top of the insured amounts and never affects the premium rate.
func ComputeFinancing(purchasePrice, downPaymentPercent, extraFinancing, surtaxRate float64) (Financing, error) {
	if purchasePrice <= 0 {
		return Financing{}, validation.InvalidInput("purchase price must be positive, got %.2f", purchasePrice)
	}

	premiumRate, err := premiumRateFor(downPaymentPercent)
	if err != nil {
		return Financing{}, err
	}

	downPayment := mathutil.ApplyPercentage(purchasePrice, downPaymentPercent)
	loanAmount := purchasePrice - downPayment
	premiumAmount := loanAmount * premiumRate
	surtaxAmount := premiumAmount * surtaxRate

	return Financing{
		DownPayment:    downPayment,
		LoanAmount:     loanAmount,
		PremiumRate:    premiumRate,
		PremiumAmount:  premiumAmount,
		SurtaxAmount:   surtaxAmount,
		TotalPrincipal: loanAmount + premiumAmount + surtaxAmount + extraFinancing,
	}, nil
}
