package repository

//go:generate mockgen -source=session_repository.go -destination=mocks/mock_session_repository.go

import (
	"context"

	"mortgage-strategy/domain"
)

// SessionRepository remembers the last config and winning strategy of each
// browser session, so input changes can be reported as events.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (domain.SessionState, bool)
	Save(ctx context.Context, sessionID string, state domain.SessionState) error
	// Swap stores state and returns what the session held before, as one
	// step. ok is false for a new session.
	Swap(ctx context.Context, sessionID string, state domain.SessionState) (previous domain.SessionState, ok bool, err error)
}
