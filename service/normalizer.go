package service

import "mortgage-strategy/domain"

// Normalize turns raw form input into computable numbers. Blank and
// non-numeric fields become 0; negative values are kept as given.
func Normalize(cfg domain.SimulationConfig) domain.SafeConfig {
	return domain.SafeConfig{
		MortgageBalance:        cfg.MortgageBalance.Float(),
		MortgageRate:           cfg.MortgageRate.Float(),
		MortgageYears:          cfg.MortgageYears.Float(),
		MonthlyIncome:          cfg.MonthlyIncome.Float(),
		MonthlyExpenses:        cfg.MonthlyExpenses.Float(),
		LocLimit:               cfg.LocLimit.Float(),
		LocRate:                cfg.LocRate.Float(),
		TaxRate:                cfg.TaxRate.Float(),
		InvestmentReturn:       cfg.InvestmentReturn.Float(),
		MaintenanceRate:        cfg.MaintenanceRate.Float(),
		HomeAppreciationRate:   cfg.HomeAppreciationRate.Float(),
		RentalDiscountPercent:  cfg.RentalDiscountPercent.Float(),
		InflationRate:          cfg.InflationRate.Float(),
		EnableRentalComparison: cfg.EnableRentalComparison,
	}
}
