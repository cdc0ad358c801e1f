package service

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mortgage-strategy/domain"
)

// SensitivityService re-runs the engine across a range of one input.
type SensitivityService struct {
	logger *zap.SugaredLogger
}

func NewSensitivityService(logger *zap.SugaredLogger) *SensitivityService {
	return &SensitivityService{logger: logger}
}

func (s *SensitivityService) Sweep(ctx context.Context, req domain.SweepRequest) (domain.SweepResult, error) {
	values, err := sweepValues(req)
	if err != nil {
		return domain.SweepResult{}, err
	}

	// Every swept config passes the same term bounds as a single run.
	configs := make([]domain.SafeConfig, len(values))
	for i, v := range values {
		cfg, err := req.Config.WithField(req.Field, v)
		if err != nil {
			return domain.SweepResult{}, fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		configs[i] = Normalize(cfg)
		if err := ValidateTerm(configs[i]); err != nil {
			return domain.SweepResult{}, fmt.Errorf("%w: %s %g: %w", ErrInvalidSweep, req.Field, v, err)
		}
	}

	points := make([]domain.SweepPoint, 0, len(values))
	for i, v := range values {
		if err := ctx.Err(); err != nil {
			return domain.SweepResult{}, err
		}

		result := simulateStrategies(configs[i], false)
		point := domain.SweepPoint{
			Value:        v,
			Best:         result.BestStrategy.Strategy,
			Leftover:     result.Leftover,
			NetPositions: make(map[domain.StrategyKind]float64, len(domain.RankedStrategies)),
			Months:       make(map[domain.StrategyKind]int, len(domain.RankedStrategies)),
		}
		for _, kind := range domain.RankedStrategies {
			r := result.Strategy(kind)
			point.NetPositions[kind] = r.NetPosition
			point.Months[kind] = r.Months
		}
		points = append(points, point)
	}

	spreads, err := summarizeSweep(points)
	if err != nil {
		return domain.SweepResult{}, err
	}

	dominant := domain.StrategyTraditional
	mostWins := -1
	for _, spread := range spreads {
		if spread.Wins > mostWins {
			dominant = spread.Strategy
			mostWins = spread.Wins
		}
	}

	s.logger.Debugw("sensitivity sweep finished",
		"field", req.Field,
		"steps", len(points),
		"dominant", dominant,
	)

	return domain.SweepResult{
		Field:    req.Field,
		Points:   points,
		Spreads:  spreads,
		Dominant: dominant,
	}, nil
}

// sweepValues spaces Steps values evenly from Min to Max, both included.
// Steps are computed in decimal and rounded to 8 places.
func sweepValues(req domain.SweepRequest) ([]float64, error) {
	if req.Steps < MinSweepSteps || req.Steps > MaxSweepSteps {
		return nil, fmt.Errorf("%w: steps must be between %d and %d", ErrInvalidSweep, MinSweepSteps, MaxSweepSteps)
	}
	if math.IsNaN(req.Min) || math.IsNaN(req.Max) || math.IsInf(req.Min, 0) || math.IsInf(req.Max, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite", ErrInvalidSweep)
	}
	if req.Min > req.Max {
		return nil, fmt.Errorf("%w: min %.4g is above max %.4g", ErrInvalidSweep, req.Min, req.Max)
	}
	if _, err := req.Config.WithField(req.Field, req.Min); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownField, err)
	}

	lo := decimal.NewFromFloat(req.Min)
	hi := decimal.NewFromFloat(req.Max)
	step := hi.Sub(lo).Div(decimal.NewFromInt(int64(req.Steps - 1)))

	values := make([]float64, req.Steps)
	for i := range values {
		values[i] = lo.Add(step.Mul(decimal.NewFromInt(int64(i)))).Round(8).InexactFloat64()
	}
	values[len(values)-1] = req.Max

	return values, nil
}

func summarizeSweep(points []domain.SweepPoint) ([]domain.StrategySpread, error) {
	spreads := make([]domain.StrategySpread, 0, len(domain.RankedStrategies))

	for _, kind := range domain.RankedStrategies {
		data := make(stats.Float64Data, 0, len(points))
		spread := domain.StrategySpread{Strategy: kind}

		for _, p := range points {
			data = append(data, p.NetPositions[kind])
			if p.Best != kind {
				continue
			}
			spread.Wins++
			v := p.Value
			if spread.WinsFrom == nil || v < *spread.WinsFrom {
				spread.WinsFrom = &v
			}
			if spread.WinsTo == nil || v > *spread.WinsTo {
				spread.WinsTo = &v
			}
		}

		var err error
		if spread.Min, err = stats.Min(data); err != nil {
			return nil, fmt.Errorf("failed to summarize %s: %w", kind, err)
		}
		if spread.Max, err = stats.Max(data); err != nil {
			return nil, fmt.Errorf("failed to summarize %s: %w", kind, err)
		}
		if spread.Mean, err = stats.Mean(data); err != nil {
			return nil, fmt.Errorf("failed to summarize %s: %w", kind, err)
		}
		if spread.Median, err = stats.Median(data); err != nil {
			return nil, fmt.Errorf("failed to summarize %s: %w", kind, err)
		}
		if spread.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return nil, fmt.Errorf("failed to summarize %s: %w", kind, err)
		}

		spreads = append(spreads, spread)
	}

	return spreads, nil
}
