package repository

//go:generate mockgen -source=event_sink.go -destination=mocks/mock_event_sink.go

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mortgage-strategy/domain"
)

// EventSink delivers analytics events. Callers treat a failed delivery as
// non-fatal.
type EventSink interface {
	Track(ctx context.Context, event domain.Event) error
}

// LogEventSink writes every event to the structured log.
type LogEventSink struct {
	logger *zap.SugaredLogger
}

func NewLogEventSink(logger *zap.SugaredLogger) *LogEventSink {
	return &LogEventSink{logger: logger}
}

func (s *LogEventSink) Track(_ context.Context, event domain.Event) error {
	s.logger.Infow("analytics event",
		"event", event.Name,
		"category", event.Category,
		"label", event.Label,
		"session", event.SessionID,
		"params", event.Params,
	)
	return nil
}

// RedisEventSink publishes events as JSON on a pub/sub channel.
type RedisEventSink struct {
	client  *redis.Client
	channel string
}

func NewRedisEventSink(client *redis.Client, channel string) *RedisEventSink {
	return &RedisEventSink{client: client, channel: channel}
}

func (s *RedisEventSink) Track(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Name, err)
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Name, err)
	}
	return nil
}

type NoopEventSink struct{}

func (NoopEventSink) Track(context.Context, domain.Event) error { return nil }
