package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"mortgage-strategy/domain"
)

// WriteStrategyTable prints the four strategies side by side for the
// terminal, best one marked.
func WriteStrategyTable(w io.Writer, result domain.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Mortgage payment\t%s\t\n", Dollars(result.MortgagePayment))
	fmt.Fprintf(tw, "Monthly maintenance\t%s\t\n", Dollars(result.MonthlyMaintenance))
	fmt.Fprintf(tw, "Left over each month\t%s\t\n", Dollars(result.Leftover))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Strategy\tMonths\tInterest\tLOC interest\tTax savings\tMaintenance\tNet position\t")
	for _, kind := range domain.RankedStrategies {
		s := result.Strategy(kind)

		name := kind.DisplayName()
		if kind == result.BestStrategy.Strategy {
			name = "* " + name
		}
		months := fmt.Sprintf("%d", s.Months)
		if s.Capped {
			months += "+"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			name,
			months,
			Dollars(s.TotalInterest),
			Dollars(s.TotalLocInterest),
			Dollars(s.TotalTaxSavings),
			Dollars(s.TotalMaintenance),
			Dollars(s.NetPosition),
		)
	}

	if result.Rental != nil {
		fmt.Fprintln(tw, "\t\t")
		fmt.Fprintf(tw, "Rent instead\t%s/month\t\n", Dollars(result.Rental.RentalPayment))
		for _, kind := range domain.RankedStrategies {
			if r := result.Strategy(kind).Rental; r != nil {
				fmt.Fprintf(tw, "  over %s horizon\t%d months\t%s\t\n", kind.DisplayName(), r.Months, Dollars(r.Total))
			}
		}
	}

	if result.CostExceedsIncome {
		fmt.Fprintln(tw, "\t\t")
		fmt.Fprintln(tw, "Warning: expenses exceed income\t\t")
	}

	return tw.Flush()
}
