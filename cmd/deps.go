package cmd

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mortgage-strategy/config"
	httpLayer "mortgage-strategy/http"
	"mortgage-strategy/logger"
	"mortgage-strategy/repository"
	"mortgage-strategy/service"
)

type Dependencies struct {
	Config      *config.Config
	Logger      *zap.SugaredLogger
	Simulations *service.SimulationService
	Sensitivity *service.SensitivityService
	Limiter     *httpLayer.RateLimiter

	sessions    *repository.SessionRepositoryMemory
	memoryCache *repository.MemoryCache
	redisClient *redis.Client
}

func InitializeDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	log := logger.New(cfg.Env)

	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient = repository.NewRedisClient(cfg.Cache.RedisAddr)
		if err := repository.NewRedisCache(redisClient).Ping(ctx); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
	}

	var (
		cache       repository.CacheRepository
		memoryCache *repository.MemoryCache
	)
	if cfg.Cache.Driver == "redis" {
		cache = repository.NewRedisCache(redisClient)
	} else {
		memoryCache = repository.NewMemoryCache()
		cache = memoryCache
	}

	var events repository.EventSink
	switch cfg.Events.Sink {
	case "redis":
		events = repository.NewRedisEventSink(redisClient, cfg.Events.RedisChannel)
	case "none":
		events = repository.NoopEventSink{}
	default:
		events = repository.NewLogEventSink(log)
	}

	var explainer service.Explainer
	if cfg.Explanation.Enabled {
		explainer = service.NewExplanationService(service.ExplanationConfig{
			APIKey:  cfg.Explanation.APIKey,
			APIURL:  cfg.Explanation.APIURL,
			Model:   cfg.Explanation.Model,
			Timeout: cfg.Explanation.Timeout,
		}, log)
	}

	sessions := repository.NewSessionRepositoryMemory(cfg.Sessions.TTL)

	return &Dependencies{
		Config:      cfg,
		Logger:      log,
		Simulations: service.NewSimulationService(cache, sessions, events, explainer, cfg.Cache.TTL, log),
		Sensitivity: service.NewSensitivityService(log),
		Limiter:     httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill),
		sessions:    sessions,
		memoryCache: memoryCache,
		redisClient: redisClient,
	}, nil
}

func CloseDependencies(d *Dependencies) {
	d.Limiter.Stop()
	d.sessions.Stop()
	if d.memoryCache != nil {
		d.memoryCache.Stop()
	}
	if d.redisClient != nil {
		if err := d.redisClient.Close(); err != nil {
			d.Logger.Warnw("failed to close redis client", "error", err)
		}
	}
	_ = d.Logger.Sync()
}
