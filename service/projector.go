package service

import "mortgage-strategy/domain"

// ProjectYearly lays the yearly series side by side. Year 0 is the starting
// balance; a strategy that has already paid off reads 0.
func ProjectYearly(startingBalance float64, traditional, extra, accelerated, investment []float64) []domain.ChartPoint {
	years := max(len(traditional), len(extra), len(accelerated), len(investment))

	points := make([]domain.ChartPoint, 0, years+1)
	points = append(points, domain.ChartPoint{
		Year:         0,
		Traditional:  startingBalance,
		ExtraPayment: startingBalance,
		Accelerated:  startingBalance,
	})

	for year := 1; year <= years; year++ {
		points = append(points, domain.ChartPoint{
			Year:              year,
			Traditional:       yearValue(traditional, year),
			ExtraPayment:      yearValue(extra, year),
			Accelerated:       yearValue(accelerated, year),
			InvestmentBalance: yearValue(investment, year),
		})
	}

	return points
}

func yearValue(series []float64, year int) float64 {
	if year-1 < len(series) {
		return series[year-1]
	}
	return 0
}
