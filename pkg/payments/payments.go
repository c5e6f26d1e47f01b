// Package payments sizes the level payment that amortizes a balance.
package payments

import "math"

// LevelPayment computes the fixed per-period payment that fully amortizes
// balance over remainingCount payments at the given periodic rate, using the
// standard annuity formula. A zero rate falls back to straight-line division
// so the closed form never divides by zero.
//
// Callers must re-invoke this at every rate-term boundary with the
// then-current balance and the payments remaining through the end of the
// full amortization horizon; that is what makes a renewal at a new rate
// change the payment mid-amortization.
func LevelPayment(balance, periodicRate float64, remainingCount int) float64 {
	if remainingCount <= 0 {
		return 0
	}
	if periodicRate == 0 {
		return balance / float64(remainingCount)
	}
	power := math.Pow(1+periodicRate, float64(remainingCount))
	return balance * periodicRate * power / (power - 1)
}
