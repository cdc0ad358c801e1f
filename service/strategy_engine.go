package service

import (
	"math"

	"mortgage-strategy/domain"
)

// DerivedConstants are computed once per run and shared by every strategy.
type DerivedConstants struct {
	StartingBalance     float64
	HomeValue           float64
	FixedMonthlyPayment float64
	MonthlyMaintenance  float64
	// Leftover may be negative: a budget shortfall is carried, not clamped.
	Leftover          float64
	CostExceedsIncome bool

	TotalMonths float64
	CapMonths   int

	MortgageMonthlyRate     float64
	LocMonthlyRate          float64
	InvestmentMonthlyRate   float64
	MaintenanceMonthlyRate  float64
	AppreciationMonthlyRate float64
	InflationMonthlyRate    float64
	TaxFraction             float64
	LocLimit                float64
}

func Derive(c domain.SafeConfig) DerivedConstants {
	homeValue := c.MortgageBalance / LoanToValue
	payment := ComputeMonthlyPayment(c.MortgageBalance, c.MortgageRate, c.MortgageYears)
	maintenanceRate := c.MaintenanceRate / 100 / 12
	maintenance := homeValue * maintenanceRate
	totalMonths := c.MortgageYears * 12

	capMonths := 0
	if totalMonths > 0 {
		capMonths = int(math.Ceil(totalMonths * CapMultiplier))
	}

	return DerivedConstants{
		StartingBalance:     c.MortgageBalance,
		HomeValue:           homeValue,
		FixedMonthlyPayment: payment,
		MonthlyMaintenance:  maintenance,
		Leftover:            c.MonthlyIncome - c.MonthlyExpenses - payment - maintenance,
		CostExceedsIncome:   c.MonthlyExpenses+payment+maintenance > c.MonthlyIncome,

		TotalMonths: totalMonths,
		CapMonths:   capMonths,

		MortgageMonthlyRate:     c.MortgageRate / 100 / 12,
		LocMonthlyRate:          c.LocRate / 100 / 12,
		InvestmentMonthlyRate:   c.InvestmentReturn / 100 / 12,
		MaintenanceMonthlyRate:  maintenanceRate,
		AppreciationMonthlyRate: c.HomeAppreciationRate / 100 / 12,
		InflationMonthlyRate:    c.InflationRate / 100 / 12,
		TaxFraction:             c.TaxRate / 100,
		LocLimit:                c.LocLimit,
	}
}

// MonthlyState is the running state of one strategy.
type MonthlyState struct {
	MortgageBalance       float64
	LocBalance            float64
	InvestmentBalance     float64
	CumulativeInterest    float64
	CumulativeLocInterest float64
	CumulativeTaxSavings  float64
	CumulativeMaintenance float64
	CurrentHomeValue      float64
	MonthIndex            int
}

// Tick records the money that moved during one simulated month.
type Tick struct {
	MortgageInterest float64
	PrincipalPayment float64
	ExtraPrincipal   float64
	LocDraw          float64
	LocPayment       float64
	LocInterest      float64
}

// StrategyPolicy is the strategy-specific part of a simulated month.
// Allocate runs after interest has accrued and the regular payment has
// reduced the mortgage balance, and before the home appreciates.
type StrategyPolicy interface {
	Kind() domain.StrategyKind
	Allocate(s *MonthlyState, d DerivedConstants, t *Tick)
	PaidOff(s MonthlyState) bool
}

func PolicyFor(kind domain.StrategyKind) StrategyPolicy {
	switch kind {
	case domain.StrategyExtraPayment:
		return extraPrincipalPolicy{}
	case domain.StrategyAccelerated:
		return locPolicy{}
	case domain.StrategyInvestment:
		return investmentPolicy{}
	}
	return traditionalPolicy{}
}

type traditionalPolicy struct{}

func (traditionalPolicy) Kind() domain.StrategyKind { return domain.StrategyTraditional }

func (traditionalPolicy) Allocate(*MonthlyState, DerivedConstants, *Tick) {}

func (traditionalPolicy) PaidOff(s MonthlyState) bool {
	return s.MortgageBalance <= BalanceTolerance
}

type extraPrincipalPolicy struct{ traditionalPolicy }

func (extraPrincipalPolicy) Kind() domain.StrategyKind { return domain.StrategyExtraPayment }

func (extraPrincipalPolicy) Allocate(s *MonthlyState, d DerivedConstants, t *Tick) {
	if d.Leftover <= 0 {
		return
	}
	t.ExtraPrincipal = math.Min(d.Leftover, s.MortgageBalance)
	s.MortgageBalance -= t.ExtraPrincipal
}

// locPolicy moves a chunk of principal onto the line of credit whenever the
// line is empty, pays the line down with the leftover, then capitalizes the
// line's interest. The draw, pay down, accrue order is part of the result.
type locPolicy struct{}

func (locPolicy) Kind() domain.StrategyKind { return domain.StrategyAccelerated }

func (locPolicy) Allocate(s *MonthlyState, d DerivedConstants, t *Tick) {
	if d.Leftover > 0 {
		if s.LocBalance == 0 && s.MortgageBalance > 0 {
			chunk := math.Min(d.LocLimit, s.MortgageBalance)
			if chunk > 0 {
				s.LocBalance = chunk
				s.MortgageBalance -= chunk
				t.LocDraw = chunk
			}
		}

		if s.LocBalance > 0 {
			t.LocPayment = math.Min(d.Leftover, s.LocBalance)
			s.LocBalance = math.Max(0, s.LocBalance-t.LocPayment)
		}
	}

	if s.LocBalance > 0 {
		t.LocInterest = s.LocBalance * d.LocMonthlyRate
		s.CumulativeLocInterest += t.LocInterest
		s.LocBalance += t.LocInterest
	}
}

func (locPolicy) PaidOff(s MonthlyState) bool {
	return s.MortgageBalance <= BalanceTolerance && s.LocBalance <= BalanceTolerance
}

type investmentPolicy struct{ traditionalPolicy }

func (investmentPolicy) Kind() domain.StrategyKind { return domain.StrategyInvestment }

func (investmentPolicy) Allocate(s *MonthlyState, d DerivedConstants, _ *Tick) {
	s.InvestmentBalance = s.InvestmentBalance*(1+d.InvestmentMonthlyRate) + d.Leftover
}

// simulation is the outcome of stepping one policy to payoff or the cap.
type simulation struct {
	policy StrategyPolicy
	state  MonthlyState
	capped bool
	// yearlyDebt and yearlyInvestment hold the end-of-year values, index 0
	// being the end of year 1.
	yearlyDebt       []float64
	yearlyInvestment []float64
	trace            []domain.DebugMonth
}

func runPolicy(p StrategyPolicy, d DerivedConstants, traced bool) simulation {
	sim := simulation{
		policy: p,
		state: MonthlyState{
			MortgageBalance:  d.StartingBalance,
			CurrentHomeValue: d.HomeValue,
		},
	}
	s := &sim.state

	for !p.PaidOff(*s) && s.MonthIndex < d.CapMonths {
		var t Tick

		t.MortgageInterest = s.MortgageBalance * d.MortgageMonthlyRate
		s.CumulativeInterest += t.MortgageInterest
		s.CumulativeTaxSavings += t.MortgageInterest * d.TaxFraction
		s.CumulativeMaintenance += s.CurrentHomeValue * d.MaintenanceMonthlyRate

		// A payment below the interest makes principal negative and the
		// balance grows until the cap stops the run.
		t.PrincipalPayment = d.FixedMonthlyPayment - t.MortgageInterest
		s.MortgageBalance = math.Max(0, s.MortgageBalance-t.PrincipalPayment)

		p.Allocate(s, d, &t)

		s.CurrentHomeValue *= 1 + d.AppreciationMonthlyRate
		s.MonthIndex++

		if traced {
			sim.trace = append(sim.trace, domain.DebugMonth{
				Month:            s.MonthIndex,
				MortgageBalance:  s.MortgageBalance,
				LocBalance:       s.LocBalance,
				MortgageInterest: t.MortgageInterest,
				LocInterest:      t.LocInterest,
				PrincipalPayment: t.PrincipalPayment,
				LocDraw:          t.LocDraw,
				LocPayment:       t.LocPayment,
				Leftover:         d.Leftover,
				TotalBalance:     s.MortgageBalance + s.LocBalance,
			})
		}

		if s.MonthIndex%12 == 0 {
			sim.yearlyDebt = append(sim.yearlyDebt, math.Max(0, s.MortgageBalance+s.LocBalance))
			sim.yearlyInvestment = append(sim.yearlyInvestment, s.InvestmentBalance)
		}
	}

	sim.capped = !p.PaidOff(*s)
	return sim
}

func (sim simulation) result(d DerivedConstants) domain.StrategyResult {
	s := sim.state
	netInterest := s.CumulativeInterest + s.CumulativeLocInterest - s.CumulativeTaxSavings

	r := domain.StrategyResult{
		Strategy:         sim.policy.Kind(),
		TotalInterest:    s.CumulativeInterest,
		TotalLocInterest: s.CumulativeLocInterest,
		TotalTaxSavings:  s.CumulativeTaxSavings,
		TotalMaintenance: s.CumulativeMaintenance,
		NetInterest:      netInterest,
		NetCost:          netInterest,
		Months:           s.MonthIndex,
		Capped:           sim.capped,
		FinalHomeValue:   s.CurrentHomeValue,
		NetPosition:      s.CurrentHomeValue - d.StartingBalance - netInterest - s.CumulativeMaintenance,
	}

	switch r.Strategy {
	case domain.StrategyExtraPayment:
		r.EffectiveMonthlyPayment = d.FixedMonthlyPayment + d.Leftover
	case domain.StrategyAccelerated:
		r.DebugTrace = sim.trace
	case domain.StrategyInvestment:
		gain := s.InvestmentBalance - d.Leftover*float64(s.MonthIndex)
		r.InvestmentBalance = s.InvestmentBalance
		r.InvestmentGain = gain
		r.NetCost -= gain
		r.NetPosition += gain
	}

	if d.InflationMonthlyRate > 0 {
		r.Real = realValues(r, d.InflationMonthlyRate)
	}

	return r
}

func realValues(r domain.StrategyResult, inflationMonthlyRate float64) *domain.RealValues {
	deflator := math.Pow(1+inflationMonthlyRate, float64(r.Months))
	return &domain.RealValues{
		Deflator:              deflator,
		RealTotalInterest:     (r.TotalInterest + r.TotalLocInterest) / deflator,
		RealTotalTaxSavings:   r.TotalTaxSavings / deflator,
		RealNetInterest:       r.NetInterest / deflator,
		RealNetPosition:       r.NetPosition / deflator,
		RealInvestmentBalance: r.InvestmentBalance / deflator,
		RealFinalHomeValue:    r.FinalHomeValue / deflator,
	}
}
