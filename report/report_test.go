package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mortgage-strategy/domain"
)

func TestMoney(t *testing.T) {
	tests := map[float64]string{
		0:          "0.00",
		1516.96326: "1516.96",
		0.005:      "0.01",
		-0.005:     "-0.01",
		108.0367:   "108.04",
		-6891.9633: "-6891.96",
	}
	for in, want := range tests {
		require.Equal(t, want, Money(in), "input %v", in)
	}
}

func TestDollars(t *testing.T) {
	tests := map[float64]string{
		0:           "$0.00",
		999.999:     "$1,000.00",
		1516.96326:  "$1,516.96",
		261063.4427: "$261,063.44",
		-7651452.7:  "-$7,651,452.70",
		1234567.891: "$1,234,567.89",
	}
	for in, want := range tests {
		require.Equal(t, want, Dollars(in), "input %v", in)
	}
}

func TestWriteChartCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteChartCSV(&buf, []domain.ChartPoint{
		{Year: 0, Traditional: 240000, ExtraPayment: 240000, Accelerated: 240000},
		{Year: 1, Traditional: 237318.456, ExtraPayment: 235991.1, Accelerated: 236000.004, InvestmentBalance: 1345.678},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"year,traditional,extra_payment,accelerated,investment_balance",
		"0,240000.00,240000.00,240000.00,0.00",
		"1,237318.46,235991.10,236000.00,1345.68",
	}, lines)
}

func TestWriteDebugCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDebugCSV(&buf, []domain.DebugMonth{
		{
			Month:            1,
			MortgageBalance:  229741.37,
			LocBalance:       9975.28,
			MortgageInterest: 1300,
			LocInterest:      83.24,
			PrincipalPayment: 216.963,
			LocDraw:          10000,
			LocPayment:       108.0367,
			Leftover:         108.0367,
			TotalBalance:     239716.65,
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "month,mortgage_balance,loc_balance,mortgage_interest,loc_interest,principal_payment,loc_draw,loc_payment,leftover,total_balance", lines[0])
	require.Equal(t, "1,229741.37,9975.28,1300.00,83.24,216.96,10000.00,108.04,108.04,239716.65", lines[1])
}

func TestWriteStrategyTable(t *testing.T) {
	result := domain.SimulationResult{
		MortgagePayment: 1516.96,
		Leftover:        108.04,
		Traditional:     domain.StrategyResult{Strategy: domain.StrategyTraditional, Months: 360, NetPosition: 138943.09},
		ExtraPayment:    domain.StrategyResult{Strategy: domain.StrategyExtraPayment, Months: 298},
		Accelerated:     domain.StrategyResult{Strategy: domain.StrategyAccelerated, Months: 720, Capped: true},
		Investment:      domain.StrategyResult{Strategy: domain.StrategyInvestment, Months: 360, NetPosition: 261063.44},
		BestStrategy:    domain.BestStrategy{Strategy: domain.StrategyInvestment, Name: "Invest & Pay"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStrategyTable(&buf, result))

	out := buf.String()
	require.Contains(t, out, "* Invest & Pay")
	require.Contains(t, out, "720+")
	require.Contains(t, out, "$261,063.44")
	require.NotContains(t, out, "Rent instead")
	require.NotContains(t, out, "Warning")
}
