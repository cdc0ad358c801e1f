package repository

import (
	"context"
	"sync"
	"time"

	"mortgage-strategy/domain"
)

const sessionCleanupInterval = 10 * time.Minute

// SessionRepositoryMemory is an in-memory SessionRepository. Sessions idle
// for longer than the ttl are dropped by a background sweep.
type SessionRepositoryMemory struct {
	mu          sync.Mutex
	ttl         time.Duration
	sessions    map[string]domain.SessionState
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	r := &SessionRepositoryMemory{
		ttl:         ttl,
		sessions:    make(map[string]domain.SessionState),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go r.cleanupLoop()
	return r
}

func (r *SessionRepositoryMemory) cleanupLoop() {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *SessionRepositoryMemory) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, state := range r.sessions {
		if now.Sub(state.UpdatedAt) > r.ttl {
			delete(r.sessions, id)
		}
	}
}

func (r *SessionRepositoryMemory) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *SessionRepositoryMemory) Get(_ context.Context, sessionID string) (domain.SessionState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	return state, ok
}

func (r *SessionRepositoryMemory) Save(_ context.Context, sessionID string, state domain.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = r.now()
	}
	r.sessions[sessionID] = state
	return nil
}

func (r *SessionRepositoryMemory) Swap(_ context.Context, sessionID string, state domain.SessionState) (domain.SessionState, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = r.now()
	}
	previous, ok := r.sessions[sessionID]
	r.sessions[sessionID] = state
	return previous, ok, nil
}
