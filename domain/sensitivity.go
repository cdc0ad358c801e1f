package domain

type SweepRequest struct {
	Config SimulationConfig `json:"config"`
	Field  string           `json:"field"` // any name from SimulationConfig.Fields
	Min    float64          `json:"min"`
	Max    float64          `json:"max"`
	Steps  int              `json:"steps"`
}

type SweepPoint struct {
	Value        float64                  `json:"value"`
	Best         StrategyKind             `json:"best"`
	Leftover     float64                  `json:"leftover"`
	NetPositions map[StrategyKind]float64 `json:"netPositions"`
	Months       map[StrategyKind]int     `json:"months"`
}

// StrategySpread summarizes one strategy's net position across a sweep.
type StrategySpread struct {
	Strategy StrategyKind `json:"strategy"`
	Min      float64      `json:"min"`
	Max      float64      `json:"max"`
	Mean     float64      `json:"mean"`
	Median   float64      `json:"median"`
	StdDev   float64      `json:"stdDev"`
	Wins     int          `json:"wins"`
	// WinsFrom and WinsTo bound the swept values at which the strategy
	// ranked first. Both are nil when it never did.
	WinsFrom *float64 `json:"winsFrom,omitempty"`
	WinsTo   *float64 `json:"winsTo,omitempty"`
}

type SweepResult struct {
	Field   string           `json:"field"`
	Points  []SweepPoint     `json:"points"`
	Spreads []StrategySpread `json:"spreads"`
	// Dominant is the strategy that ranked first at the most sweep points.
	Dominant StrategyKind `json:"dominant"`
}
