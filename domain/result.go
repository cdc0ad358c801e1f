package domain

type StrategyKind string

const (
	StrategyTraditional  StrategyKind = "traditional"
	StrategyExtraPayment StrategyKind = "extraPayment"
	StrategyAccelerated  StrategyKind = "accelerated"
	StrategyInvestment   StrategyKind = "investment"
)

// RankedStrategies is the candidate set of the ranker, in tie-break order.
var RankedStrategies = []StrategyKind{
	StrategyTraditional,
	StrategyExtraPayment,
	StrategyAccelerated,
	StrategyInvestment,
}

func (k StrategyKind) DisplayName() string {
	switch k {
	case StrategyTraditional:
		return "Traditional"
	case StrategyExtraPayment:
		return "Extra Principal"
	case StrategyAccelerated:
		return "LOC Strategy"
	case StrategyInvestment:
		return "Invest & Pay"
	}
	return string(k)
}

type StrategyResult struct {
	Strategy         StrategyKind `json:"strategy"`
	TotalInterest    float64      `json:"totalInterest"`
	TotalLocInterest float64      `json:"totalLocInterest"`
	TotalTaxSavings  float64      `json:"totalTaxSavings"`
	TotalMaintenance float64      `json:"totalMaintenance"`
	NetInterest      float64      `json:"netInterest"`
	NetCost          float64      `json:"netCost"`
	Months           int          `json:"months"`
	// Capped is set when the run stopped at the iteration cap instead of
	// paying off; Months is then not a payoff time.
	Capped         bool    `json:"capped"`
	FinalHomeValue float64 `json:"finalHomeValue"`
	NetPosition    float64 `json:"netPosition"`

	InvestmentBalance       float64 `json:"investmentBalance,omitempty"`
	InvestmentGain          float64 `json:"investmentGain,omitempty"`
	EffectiveMonthlyPayment float64 `json:"effectiveMonthlyPayment,omitempty"`

	Rental     *RentalComparison `json:"rental,omitempty"`
	Real       *RealValues       `json:"real,omitempty"`
	DebugTrace []DebugMonth      `json:"debugTrace,omitempty"`
}

// RentalComparison is what renting for exactly as long as a strategy took
// to pay off the house would have produced.
type RentalComparison struct {
	Months         int     `json:"months"`
	Contribution   float64 `json:"contribution"`
	InvestmentGain float64 `json:"investmentGain"`
	TotalRent      float64 `json:"totalRent"`
	Total          float64 `json:"total"`
}

type RentalSummary struct {
	RentalCost      float64          `json:"rentalCost"`
	RentalPayment   float64          `json:"rentalPayment"`
	RentalMonths    int              `json:"rentalMonths"`
	ComparisonValue float64          `json:"comparisonValue"`
	Traditional     RentalComparison `json:"traditional"`
	ExtraPayment    RentalComparison `json:"extraPayment"`
	Accelerated     RentalComparison `json:"accelerated"`
	Investment      RentalComparison `json:"investment"`
}

// RealValues are nominal totals deflated by inflation over the strategy's
// own horizon.
type RealValues struct {
	Deflator              float64 `json:"deflator"`
	RealTotalInterest     float64 `json:"realTotalInterest"`
	RealTotalTaxSavings   float64 `json:"realTotalTaxSavings"`
	RealNetInterest       float64 `json:"realNetInterest"`
	RealNetPosition       float64 `json:"realNetPosition"`
	RealInvestmentBalance float64 `json:"realInvestmentBalance,omitempty"`
	RealFinalHomeValue    float64 `json:"realFinalHomeValue"`
}

// DebugMonth is one row of the LOC strategy trace.
type DebugMonth struct {
	Month            int     `json:"month"`
	MortgageBalance  float64 `json:"mortgageBalance"`
	LocBalance       float64 `json:"locBalance"`
	MortgageInterest float64 `json:"mortgageInterest"`
	LocInterest      float64 `json:"locInterest"`
	PrincipalPayment float64 `json:"principalPayment"`
	LocDraw          float64 `json:"locDraw"`
	LocPayment       float64 `json:"locPayment"`
	Leftover         float64 `json:"leftover"`
	TotalBalance     float64 `json:"totalBalance"`
}

// ChartPoint is the outstanding debt of each strategy at the end of a year.
// Year 0 is the starting balance.
type ChartPoint struct {
	Year              int     `json:"year"`
	Traditional       float64 `json:"traditional"`
	ExtraPayment      float64 `json:"extraPayment"`
	Accelerated       float64 `json:"accelerated"`
	InvestmentBalance float64 `json:"investmentBalance"`
}

type BestStrategy struct {
	Strategy StrategyKind `json:"strategy"`
	Name     string       `json:"name"`
	NetWorth float64      `json:"netWorth"`
}

type SimulationResult struct {
	RunID string `json:"runId,omitempty"`

	Traditional  StrategyResult `json:"traditional"`
	ExtraPayment StrategyResult `json:"extraPayment"`
	Accelerated  StrategyResult `json:"accelerated"`
	Investment   StrategyResult `json:"investment"`

	Rental       *RentalSummary `json:"rental"`
	ChartData    []ChartPoint   `json:"chartData"`
	BestStrategy BestStrategy   `json:"bestStrategy"`

	Leftover           float64 `json:"leftover"`
	CostExceedsIncome  bool    `json:"costExceedsIncome"`
	MortgagePayment    float64 `json:"mortgagePayment"`
	HomeValue          float64 `json:"homeValue"`
	MonthlyMaintenance float64 `json:"monthlyMaintenance"`
	CapMonths          int     `json:"capMonths"`

	Explanation string `json:"explanation,omitempty"`
}

// Strategy returns the result of one ranked strategy.
func (r SimulationResult) Strategy(k StrategyKind) StrategyResult {
	switch k {
	case StrategyExtraPayment:
		return r.ExtraPayment
	case StrategyAccelerated:
		return r.Accelerated
	case StrategyInvestment:
		return r.Investment
	}
	return r.Traditional
}
