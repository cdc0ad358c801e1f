package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"mortgage-strategy/domain"
)

const scenarioYAML = `
mortgageBalance: 240000
mortgageRate: 6.5
mortgageYears: 30
monthlyIncome: 10000
monthlyExpenses: 8000
locLimit: 10000
locRate: 10
taxRate: 22
investmentReturn: 8
maintenanceRate: 1.5
homeAppreciationRate: 3.5
rentalDiscountPercent: ""
enableRentalComparison: true
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MORTGAGE_ENV", "test")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestLoadScenario(t *testing.T) {
	cfg, err := loadScenario(writeScenario(t))
	require.NoError(t, err)

	require.Equal(t, 240000.0, cfg.MortgageBalance.Float())
	require.Equal(t, 6.5, cfg.MortgageRate.Float())
	require.False(t, cfg.RentalDiscountPercent.IsSet())
	require.False(t, cfg.InflationRate.IsSet())
	require.True(t, cfg.EnableRentalComparison)

	_, err = loadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read scenario")
}

func TestSimulateCmd_Table(t *testing.T) {
	dir := t.TempDir()
	chart := filepath.Join(dir, "chart.csv")
	trace := filepath.Join(dir, "trace.csv")

	out, err := execute(t, "simulate", "--scenario", writeScenario(t), "--csv", chart, "--debug-csv", trace)
	require.NoError(t, err)

	require.Contains(t, out, "* Invest & Pay")
	require.Contains(t, out, "$1,516.96")
	require.Contains(t, out, "Rent instead")

	chartData, err := os.ReadFile(chart)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(string(chartData)), "\n"), 32)

	traceData, err := os.ReadFile(trace)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(string(traceData)), "\n"), 351)
}

func TestSimulateCmd_JSON(t *testing.T) {
	out, err := execute(t, "simulate", "--scenario", writeScenario(t), "--json")
	require.NoError(t, err)

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, domain.StrategyInvestment, result.BestStrategy.Strategy)
	require.NotNil(t, result.Rental)
	require.Empty(t, result.Accelerated.DebugTrace)
}

func TestSimulateCmd_RequiresScenario(t *testing.T) {
	_, err := execute(t, "simulate")
	require.Error(t, err)
}

func TestSensitivityCmd(t *testing.T) {
	out, err := execute(t, "sensitivity", "--scenario", writeScenario(t),
		"--field", "monthlyExpenses", "--min", "6000", "--max", "15000", "--steps", "10")
	require.NoError(t, err)

	require.Contains(t, out, "monthlyExpenses")
	require.Contains(t, out, "Most often best: Traditional")
	require.Contains(t, out, "Invest & Pay wins 3 of 10, from 6000 to 8000")
}

func TestSensitivityCmd_InvalidSteps(t *testing.T) {
	_, err := execute(t, "sensitivity", "--scenario", writeScenario(t), "--min", "3", "--max", "9", "--steps", "1")
	require.ErrorContains(t, err, "invalid sensitivity sweep")
}
