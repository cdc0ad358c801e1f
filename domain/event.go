package domain

import "time"

const EventCategory = "Mortgage Calculator"

const (
	EventInputChanged     = "input_changed"
	EventStrategySelected = "strategy_selected"
	EventRentalToggled    = "rental_comparison_toggled"
	EventChartInteracted  = "chart_interacted"
)

// Event is an analytics notification. Delivery is best effort.
type Event struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Label      string            `json:"label"`
	SessionID  string            `json:"sessionId,omitempty"`
	Params     map[string]string `json:"params,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

// SessionState is what a session last simulated.
type SessionState struct {
	Config    SimulationConfig
	Best      StrategyKind
	UpdatedAt time.Time
}
