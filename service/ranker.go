package service

import "mortgage-strategy/domain"

// SelectBest picks the highest net position. Ties keep the earlier result.
func SelectBest(results []domain.StrategyResult) domain.BestStrategy {
	if len(results) == 0 {
		return domain.BestStrategy{}
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.NetPosition > best.NetPosition {
			best = r
		}
	}

	return domain.BestStrategy{
		Strategy: best.Strategy,
		Name:     best.Strategy.DisplayName(),
		NetWorth: best.NetPosition,
	}
}
