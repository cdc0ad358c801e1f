package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-strategy/domain"
)

func rentalScenario() domain.SafeConfig {
	cfg := baseScenario()
	cfg.EnableRentalComparison = true
	cfg.RentalDiscountPercent = 20
	return cfg
}

func TestCompareRental(t *testing.T) {
	cfg := rentalScenario()
	d := Derive(cfg)

	got := CompareRental(d, cfg, 360)

	assert.Equal(t, 360, got.Months)
	assert.InDelta(t, 411.43, got.Contribution, 0.01)
	assert.InDelta(t, 465063.10, got.InvestmentGain, 0.5)
	assert.InDelta(t, 436885.42, got.TotalRent, 0.5)
	assert.InDelta(t, 28177.69, got.Total, 0.5)
}

func TestCompareRental_ZeroMonths(t *testing.T) {
	cfg := rentalScenario()

	got := CompareRental(Derive(cfg), cfg, 0)

	assert.Zero(t, got.InvestmentGain)
	assert.Zero(t, got.TotalRent)
	assert.Zero(t, got.Total)
}

func TestSimulate_RentalUsesEachStrategyHorizon(t *testing.T) {
	result := Simulate(rentalScenario())

	require.NotNil(t, result.Rental)
	for _, kind := range domain.RankedStrategies {
		r := result.Strategy(kind)
		require.NotNil(t, r.Rental, kind)
		assert.Equal(t, r.Months, r.Rental.Months, kind)
	}

	summary := result.Rental
	assert.InDelta(t, 1213.57, summary.RentalPayment, 0.01)
	assert.Equal(t, summary.RentalPayment, summary.RentalCost)
	assert.Equal(t, 360, summary.RentalMonths)
	assert.Equal(t, 298, summary.ExtraPayment.Months)
	assert.InDelta(t, -98949.85, summary.ExtraPayment.Total, 0.5)
	assert.InDelta(t, 1041.56, summary.Accelerated.Total, 0.5)
	assert.Equal(t, *result.Traditional.Rental, summary.Traditional)

	// Largest gain, less rent over the shortest horizon.
	want := summary.Traditional.InvestmentGain - summary.RentalPayment*298
	assert.InDelta(t, want, summary.ComparisonValue, 1e-6)
}

func TestSimulate_RentalDoesNotChangeRanking(t *testing.T) {
	with := Simulate(rentalScenario())

	cfg := rentalScenario()
	cfg.EnableRentalComparison = false
	without := Simulate(cfg)

	assert.Nil(t, without.Rental)
	assert.Nil(t, without.Traditional.Rental)
	assert.Equal(t, without.BestStrategy, with.BestStrategy)
}
