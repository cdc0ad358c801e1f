package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-strategy/domain"
)

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name    string
		results []domain.StrategyResult
		want    domain.StrategyKind
	}{
		{
			name: "highest net position wins",
			results: []domain.StrategyResult{
				{Strategy: domain.StrategyTraditional, NetPosition: 100},
				{Strategy: domain.StrategyExtraPayment, NetPosition: 300},
				{Strategy: domain.StrategyAccelerated, NetPosition: 200},
				{Strategy: domain.StrategyInvestment, NetPosition: -50},
			},
			want: domain.StrategyExtraPayment,
		},
		{
			name: "tie keeps the earlier strategy",
			results: []domain.StrategyResult{
				{Strategy: domain.StrategyTraditional, NetPosition: 100},
				{Strategy: domain.StrategyExtraPayment, NetPosition: 250},
				{Strategy: domain.StrategyAccelerated, NetPosition: 250},
				{Strategy: domain.StrategyInvestment, NetPosition: 250},
			},
			want: domain.StrategyExtraPayment,
		},
		{
			name: "all negative",
			results: []domain.StrategyResult{
				{Strategy: domain.StrategyTraditional, NetPosition: -10},
				{Strategy: domain.StrategyExtraPayment, NetPosition: -20},
				{Strategy: domain.StrategyAccelerated, NetPosition: -5},
				{Strategy: domain.StrategyInvestment, NetPosition: -30},
			},
			want: domain.StrategyAccelerated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := SelectBest(tt.results)
			assert.Equal(t, tt.want, best.Strategy)
			assert.Equal(t, tt.want.DisplayName(), best.Name)
		})
	}
}

func TestSelectBest_Empty(t *testing.T) {
	assert.Equal(t, domain.BestStrategy{}, SelectBest(nil))
}
