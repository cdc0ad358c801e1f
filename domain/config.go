package domain

import "fmt"

// SimulationConfig is the raw input of one simulation run as the user
// supplied it. Rates are annual percentages.
type SimulationConfig struct {
	MortgageBalance        Input `json:"mortgageBalance" yaml:"mortgageBalance"`
	MortgageRate           Input `json:"mortgageRate" yaml:"mortgageRate"`
	MortgageYears          Input `json:"mortgageYears" yaml:"mortgageYears"`
	MonthlyIncome          Input `json:"monthlyIncome" yaml:"monthlyIncome"`
	MonthlyExpenses        Input `json:"monthlyExpenses" yaml:"monthlyExpenses"`
	LocLimit               Input `json:"locLimit" yaml:"locLimit"`
	LocRate                Input `json:"locRate" yaml:"locRate"`
	TaxRate                Input `json:"taxRate" yaml:"taxRate"`
	InvestmentReturn       Input `json:"investmentReturn" yaml:"investmentReturn"`
	MaintenanceRate        Input `json:"maintenanceRate" yaml:"maintenanceRate"`
	HomeAppreciationRate   Input `json:"homeAppreciationRate" yaml:"homeAppreciationRate"`
	RentalDiscountPercent  Input `json:"rentalDiscountPercent" yaml:"rentalDiscountPercent"`
	InflationRate          Input `json:"inflationRate" yaml:"inflationRate"`
	EnableRentalComparison bool  `json:"enableRentalComparison" yaml:"enableRentalComparison"`
}

// SafeConfig is SimulationConfig after normalization: every field is a
// finite number.
type SafeConfig struct {
	MortgageBalance        float64 `json:"mortgageBalance"`
	MortgageRate           float64 `json:"mortgageRate"`
	MortgageYears          float64 `json:"mortgageYears"`
	MonthlyIncome          float64 `json:"monthlyIncome"`
	MonthlyExpenses        float64 `json:"monthlyExpenses"`
	LocLimit               float64 `json:"locLimit"`
	LocRate                float64 `json:"locRate"`
	TaxRate                float64 `json:"taxRate"`
	InvestmentReturn       float64 `json:"investmentReturn"`
	MaintenanceRate        float64 `json:"maintenanceRate"`
	HomeAppreciationRate   float64 `json:"homeAppreciationRate"`
	RentalDiscountPercent  float64 `json:"rentalDiscountPercent"`
	InflationRate          float64 `json:"inflationRate"`
	EnableRentalComparison bool    `json:"enableRentalComparison"`
}

// NamedInput pairs a field with its JSON name.
type NamedInput struct {
	Name  string
	Input Input
}

// Fields lists the numeric fields in form order.
func (c SimulationConfig) Fields() []NamedInput {
	return []NamedInput{
		{"mortgageBalance", c.MortgageBalance},
		{"mortgageRate", c.MortgageRate},
		{"mortgageYears", c.MortgageYears},
		{"monthlyIncome", c.MonthlyIncome},
		{"monthlyExpenses", c.MonthlyExpenses},
		{"locLimit", c.LocLimit},
		{"locRate", c.LocRate},
		{"taxRate", c.TaxRate},
		{"investmentReturn", c.InvestmentReturn},
		{"maintenanceRate", c.MaintenanceRate},
		{"homeAppreciationRate", c.HomeAppreciationRate},
		{"rentalDiscountPercent", c.RentalDiscountPercent},
		{"inflationRate", c.InflationRate},
	}
}

// WithField returns a copy of c with the named field set to v.
func (c SimulationConfig) WithField(name string, v float64) (SimulationConfig, error) {
	in := Num(v)
	switch name {
	case "mortgageBalance":
		c.MortgageBalance = in
	case "mortgageRate":
		c.MortgageRate = in
	case "mortgageYears":
		c.MortgageYears = in
	case "monthlyIncome":
		c.MonthlyIncome = in
	case "monthlyExpenses":
		c.MonthlyExpenses = in
	case "locLimit":
		c.LocLimit = in
	case "locRate":
		c.LocRate = in
	case "taxRate":
		c.TaxRate = in
	case "investmentReturn":
		c.InvestmentReturn = in
	case "maintenanceRate":
		c.MaintenanceRate = in
	case "homeAppreciationRate":
		c.HomeAppreciationRate = in
	case "rentalDiscountPercent":
		c.RentalDiscountPercent = in
	case "inflationRate":
		c.InflationRate = in
	default:
		return c, fmt.Errorf("unknown field %q", name)
	}
	return c, nil
}
