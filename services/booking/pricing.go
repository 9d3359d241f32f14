package booking

import "stagelink/config"

// PricingPolicy converts a booking's credit cost into artist earnings.
// The conversion rate belongs to the payment domain, so the orchestrator
// only ever sees this interface.
type PricingPolicy interface {
	EarningsForCredits(credits int64) int64
}

// FixedRatePolicy multiplies credits by a flat per-credit rate.
type FixedRatePolicy struct {
	Rate int64
}

func (p FixedRatePolicy) EarningsForCredits(credits int64) int64 {
	return credits * p.Rate
}

// NewPricingPolicyFromConfig builds the configured fixed-rate policy.
func NewPricingPolicyFromConfig() PricingPolicy {
	rate := config.AppConfig.CreditEarningsRate
	if rate <= 0 {
		rate = 50
	}
	return FixedRatePolicy{Rate: rate}
}
