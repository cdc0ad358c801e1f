package service

import "time"

const (
	// LoanToValue back-derives the home value from the mortgage balance.
	LoanToValue = 0.8

	// BalanceTolerance is the balance at or below which a debt counts as paid.
	BalanceTolerance = 0.01

	// CapMultiplier bounds every run at this many times the nominal term.
	CapMultiplier = 2

	MaxTermYears = 50.0

	MinSweepSteps = 2
	MaxSweepSteps = 200

	DefaultCacheTTL = 24 * time.Hour
)
