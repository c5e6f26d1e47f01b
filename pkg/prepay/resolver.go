// Package prepay resolves configured additional payments against payment
// indexes and tracks contractual lump-sum prepayment limits.
package prepay

// Kinds of additional payments.
const (
	KindSingle    = "single"
	KindRecurring = "recurring"
)

// AdditionalPayment is one configured extra-principal rule.
type AdditionalPayment struct {
	Kind              string  `json:"kind" yaml:"kind"`
	Amount            float64 `json:"amount" yaml:"amount"`
	StartPaymentIndex int     `json:"startPaymentIndex" yaml:"startPaymentIndex"`
	EndPaymentIndex   int     `json:"endPaymentIndex,omitempty" yaml:"endPaymentIndex,omitempty"`
	IntervalPayments  int     `json:"intervalPayments,omitempty" yaml:"intervalPayments,omitempty"`
	// Active defaults to true when omitted, so the wire shape is a pointer.
	Active *bool `json:"active,omitempty" yaml:"active,omitempty"`
}

// IsActive resolves the Active field's omitted-means-true default.
func (p AdditionalPayment) IsActive() bool {
	return p.Active == nil || *p.Active
}

// ExtraAmountAt sums the extra principal due at the given 1-based payment
// index across all active rules. Single rules fire exactly once at their
// start index; recurring rules fire at the start index and every interval
// thereafter, inclusive of the end bound. Rules with no end bound run to the
// end of the schedule.
func ExtraAmountAt(paymentIndex int, rules []AdditionalPayment) float64 {
	var total float64
	for _, rule := range rules {
		if !rule.IsActive() || paymentIndex < rule.StartPaymentIndex {
			continue
		}
		if rule.EndPaymentIndex > 0 && paymentIndex > rule.EndPaymentIndex {
			continue
		}
		switch rule.Kind {
		case KindSingle:
			if paymentIndex == rule.StartPaymentIndex {
				total += rule.Amount
			}
		case KindRecurring:
			interval := rule.IntervalPayments
			if interval <= 0 {
				interval = 1
			}
			if (paymentIndex-rule.StartPaymentIndex)%interval == 0 {
				total += rule.Amount
			}
		}
	}
	return total
}
