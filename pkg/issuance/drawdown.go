package issuance

import (
	"Bakehouse-Backend/domain"
)

// Drawdown consumes requested base units from an issuance's remaining
// compound quantity, principal first, then complementary. A request larger
// than the remaining total is rejected outright so the record is never
// silently zeroed.
func Drawdown(principal, complementary, requested float64) (float64, float64, error) {
	if requested < 0 {
		return principal, complementary, domain.ErrNegativeQuantity
	}

	total := principal + complementary
	if requested > total {
		return principal, complementary, domain.ErrOverconsumption
	}

	if requested <= principal {
		return principal - requested, complementary, nil
	}
	return 0, total - requested, nil
}
