package service

import (
	"math"

	"mortgage-strategy/domain"
)

// rentalPayment is the rent paid instead of the mortgage payment.
func rentalPayment(d DerivedConstants, discountPercent float64) float64 {
	return d.FixedMonthlyPayment * (1 - discountPercent/100)
}

// CompareRental prices renting for the given number of months. The renter
// invests the leftover plus what the cheaper rent saves over the mortgage
// payment, compounded the same way as the investment strategy.
func CompareRental(d DerivedConstants, c domain.SafeConfig, months int) domain.RentalComparison {
	rent := rentalPayment(d, c.RentalDiscountPercent)
	contribution := d.Leftover + (d.FixedMonthlyPayment - rent)
	balance := CalculateInvestmentBalance(contribution, months, c.InvestmentReturn)
	gain := balance - contribution*float64(months)
	totalRent := rent * float64(months)

	return domain.RentalComparison{
		Months:         months,
		Contribution:   contribution,
		InvestmentGain: gain,
		TotalRent:      totalRent,
		Total:          gain - totalRent,
	}
}

// attachRental gives every strategy its own rental comparison over its own
// payoff horizon and builds the summary.
func attachRental(d DerivedConstants, c domain.SafeConfig, results []*domain.StrategyResult) *domain.RentalSummary {
	rent := rentalPayment(d, c.RentalDiscountPercent)
	summary := &domain.RentalSummary{
		RentalCost:    rent,
		RentalPayment: rent,
	}

	maxGain := math.Inf(-1)
	minMonths := math.MaxInt
	for _, r := range results {
		cmp := CompareRental(d, c, r.Months)
		r.Rental = &cmp

		switch r.Strategy {
		case domain.StrategyTraditional:
			summary.Traditional = cmp
		case domain.StrategyExtraPayment:
			summary.ExtraPayment = cmp
		case domain.StrategyAccelerated:
			summary.Accelerated = cmp
		case domain.StrategyInvestment:
			summary.Investment = cmp
		}

		summary.RentalMonths = max(summary.RentalMonths, r.Months)
		minMonths = min(minMonths, r.Months)
		maxGain = math.Max(maxGain, cmp.InvestmentGain)
	}

	if len(results) > 0 {
		summary.ComparisonValue = maxGain - rent*float64(minMonths)
	}
	return summary
}
