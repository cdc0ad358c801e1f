package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mortgage-strategy/domain"
	"mortgage-strategy/repository"
)

// Explainer turns a finished simulation into prose.
type Explainer interface {
	Explain(ctx context.Context, result domain.SimulationResult) string
}

type SimulationService struct {
	cache     repository.CacheRepository
	sessions  repository.SessionRepository
	events    repository.EventSink
	explainer Explainer
	cacheTTL  time.Duration
	logger    *zap.SugaredLogger
	now       func() time.Time
}

// NewSimulationService wires the engine to its cache, session store and
// event sink. explainer may be nil. A non-positive cacheTTL falls back to
// DefaultCacheTTL.
func NewSimulationService(
	cache repository.CacheRepository,
	sessions repository.SessionRepository,
	events repository.EventSink,
	explainer Explainer,
	cacheTTL time.Duration,
	logger *zap.SugaredLogger,
) *SimulationService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &SimulationService{
		cache:     cache,
		sessions:  sessions,
		events:    events,
		explainer: explainer,
		cacheTTL:  cacheTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate rejects configs the engine would only answer with an empty
// result. The engine itself accepts them.
func (s *SimulationService) Validate(c domain.SafeConfig) error {
	return ValidateTerm(c)
}

// ValidateTerm bounds the mortgage term, which also bounds how many months
// a run may iterate.
func ValidateTerm(c domain.SafeConfig) error {
	if c.MortgageYears <= 0 {
		return ErrInvalidTerm
	}
	if c.MortgageYears > MaxTermYears {
		return ErrTermTooLong
	}
	return nil
}

// CacheKey hashes the canonical JSON of a normalized config.
func CacheKey(c domain.SafeConfig) (string, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return strconv.FormatUint(xxhash.Sum64(payload), 16), nil
}

// Run simulates cfg for a session. sessionID may be empty, in which case no
// events are emitted.
func (s *SimulationService) Run(ctx context.Context, sessionID string, cfg domain.SimulationConfig) (domain.SimulationResult, error) {
	safe := Normalize(cfg)
	if err := s.Validate(safe); err != nil {
		return domain.SimulationResult{}, err
	}

	result := s.simulate(ctx, safe)
	result.RunID = uuid.NewString()

	for _, kind := range domain.RankedStrategies {
		if r := result.Strategy(kind); r.Capped {
			s.logger.Warnw("strategy did not pay off before the iteration cap",
				"strategy", kind,
				"capMonths", result.CapMonths,
				"runId", result.RunID,
			)
		}
	}

	if s.explainer != nil {
		result.Explanation = s.explainer.Explain(ctx, result)
	}

	if sessionID != "" {
		s.trackSession(ctx, sessionID, cfg, result.BestStrategy)
	}

	return result, nil
}

// simulate serves a result from the cache or runs the engine and stores it.
func (s *SimulationService) simulate(ctx context.Context, safe domain.SafeConfig) domain.SimulationResult {
	key, err := CacheKey(safe)
	if err != nil {
		s.logger.Warnw("skipping cache", "error", err)
		return Simulate(safe)
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.SimulationResult
		err := json.Unmarshal([]byte(cached), &result)
		if err == nil {
			return result
		}
		s.logger.Warnw("discarding unreadable cache entry", "key", key, "error", err)
	}

	result := Simulate(safe)

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Warnw("failed to encode simulation for cache", "key", key, "error", err)
		return result
	}
	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		s.logger.Warnw("failed to cache simulation", "key", key, "error", err)
	}

	return result
}

// trackSession compares cfg with what the session simulated last and
// reports the differences.
func (s *SimulationService) trackSession(ctx context.Context, sessionID string, cfg domain.SimulationConfig, best domain.BestStrategy) {
	previous, ok, err := s.sessions.Swap(ctx, sessionID, domain.SessionState{
		Config:    cfg,
		Best:      best.Strategy,
		UpdatedAt: s.now(),
	})
	if err != nil {
		s.logger.Warnw("failed to save session", "session", sessionID, "error", err)
		return
	}
	if !ok {
		return
	}

	prevFields := previous.Config.Fields()
	for i, field := range cfg.Fields() {
		if field.Input.Equal(prevFields[i].Input) {
			continue
		}
		s.emit(ctx, sessionID, domain.EventInputChanged, field.Name, map[string]string{
			"value": field.Input.String(),
		})
	}

	if cfg.EnableRentalComparison != previous.Config.EnableRentalComparison {
		s.emit(ctx, sessionID, domain.EventRentalToggled, strconv.FormatBool(cfg.EnableRentalComparison), nil)
	}

	if best.Strategy != previous.Best {
		s.emit(ctx, sessionID, domain.EventStrategySelected, best.Name, map[string]string{
			"strategy": string(best.Strategy),
			"previous": string(previous.Best),
		})
	}
}

// TrackChartInteraction reports that a session looked at or exported the
// chart.
func (s *SimulationService) TrackChartInteraction(ctx context.Context, sessionID, label string) {
	s.emit(ctx, sessionID, domain.EventChartInteracted, label, nil)
}

func (s *SimulationService) emit(ctx context.Context, sessionID, name, label string, params map[string]string) {
	event := domain.Event{
		ID:         uuid.NewString(),
		Name:       name,
		Category:   domain.EventCategory,
		Label:      label,
		SessionID:  sessionID,
		Params:     params,
		OccurredAt: s.now(),
	}
	if err := s.events.Track(ctx, event); err != nil {
		s.logger.Warnw("failed to track event", "event", name, "session", sessionID, "error", err)
	}
}
