package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"mortgage-strategy/domain"
)

type chartRow struct {
	Year              int    `csv:"year"`
	Traditional       string `csv:"traditional"`
	ExtraPayment      string `csv:"extra_payment"`
	Accelerated       string `csv:"accelerated"`
	InvestmentBalance string `csv:"investment_balance"`
}

type debugRow struct {
	Month            int    `csv:"month"`
	MortgageBalance  string `csv:"mortgage_balance"`
	LocBalance       string `csv:"loc_balance"`
	MortgageInterest string `csv:"mortgage_interest"`
	LocInterest      string `csv:"loc_interest"`
	PrincipalPayment string `csv:"principal_payment"`
	LocDraw          string `csv:"loc_draw"`
	LocPayment       string `csv:"loc_payment"`
	Leftover         string `csv:"leftover"`
	TotalBalance     string `csv:"total_balance"`
}

// WriteChartCSV writes the yearly chart series, one row per year.
func WriteChartCSV(w io.Writer, points []domain.ChartPoint) error {
	rows := make([]*chartRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, &chartRow{
			Year:              p.Year,
			Traditional:       Money(p.Traditional),
			ExtraPayment:      Money(p.ExtraPayment),
			Accelerated:       Money(p.Accelerated),
			InvestmentBalance: Money(p.InvestmentBalance),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write chart csv: %w", err)
	}
	return nil
}

// WriteDebugCSV writes the month by month trace of the line of credit
// strategy.
func WriteDebugCSV(w io.Writer, trace []domain.DebugMonth) error {
	rows := make([]*debugRow, 0, len(trace))
	for _, m := range trace {
		rows = append(rows, &debugRow{
			Month:            m.Month,
			MortgageBalance:  Money(m.MortgageBalance),
			LocBalance:       Money(m.LocBalance),
			MortgageInterest: Money(m.MortgageInterest),
			LocInterest:      Money(m.LocInterest),
			PrincipalPayment: Money(m.PrincipalPayment),
			LocDraw:          Money(m.LocDraw),
			LocPayment:       Money(m.LocPayment),
			Leftover:         Money(m.Leftover),
			TotalBalance:     Money(m.TotalBalance),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write debug csv: %w", err)
	}
	return nil
}
