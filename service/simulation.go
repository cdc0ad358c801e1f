package service

import "mortgage-strategy/domain"

// RunStrategySimulation normalizes cfg and runs every strategy. It is a pure
// function of its input.
func RunStrategySimulation(cfg domain.SimulationConfig) domain.SimulationResult {
	return Simulate(Normalize(cfg))
}

// Simulate runs the four strategies on an already normalized config, adds
// the rental comparison when enabled, ranks the strategies and builds the
// yearly chart series.
func Simulate(c domain.SafeConfig) domain.SimulationResult {
	return simulateStrategies(c, true)
}

// simulateStrategies is Simulate with the LOC debug trace optional.
func simulateStrategies(c domain.SafeConfig, traced bool) domain.SimulationResult {
	d := Derive(c)

	traditional := runPolicy(PolicyFor(domain.StrategyTraditional), d, false)
	extra := runPolicy(PolicyFor(domain.StrategyExtraPayment), d, false)
	accelerated := runPolicy(PolicyFor(domain.StrategyAccelerated), d, traced)
	investment := runPolicy(PolicyFor(domain.StrategyInvestment), d, false)

	result := domain.SimulationResult{
		Traditional:  traditional.result(d),
		ExtraPayment: extra.result(d),
		Accelerated:  accelerated.result(d),
		Investment:   investment.result(d),

		Leftover:           d.Leftover,
		CostExceedsIncome:  d.CostExceedsIncome,
		MortgagePayment:    d.FixedMonthlyPayment,
		HomeValue:          d.HomeValue,
		MonthlyMaintenance: d.MonthlyMaintenance,
		CapMonths:          d.CapMonths,
	}

	if c.EnableRentalComparison {
		result.Rental = attachRental(d, c, []*domain.StrategyResult{
			&result.Traditional,
			&result.ExtraPayment,
			&result.Accelerated,
			&result.Investment,
		})
	}

	result.BestStrategy = SelectBest([]domain.StrategyResult{
		result.Traditional,
		result.ExtraPayment,
		result.Accelerated,
		result.Investment,
	})

	result.ChartData = ProjectYearly(
		d.StartingBalance,
		traditional.yearlyDebt,
		extra.yearlyDebt,
		accelerated.yearlyDebt,
		investment.yearlyInvestment,
	)

	return result
}
