package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mortgage-strategy/domain"
)

func TestSessionRepositoryMemory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	repo := NewSessionRepositoryMemory(time.Hour)
	defer repo.Stop()
	repo.now = func() time.Time { return now }

	_, ok := repo.Get(ctx, "abc")
	require.False(t, ok)

	state := domain.SessionState{
		Config: domain.SimulationConfig{MortgageBalance: domain.Num(250000)},
		Best:   domain.StrategyInvestment,
	}
	require.NoError(t, repo.Save(ctx, "abc", state))

	got, ok := repo.Get(ctx, "abc")
	require.True(t, ok)
	require.Equal(t, domain.StrategyInvestment, got.Best)
	require.True(t, got.Config.MortgageBalance.Equal(domain.Num(250000)))
	require.Equal(t, now, got.UpdatedAt)

	t.Run("cleanup drops idle sessions", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "fresh", domain.SessionState{UpdatedAt: now.Add(90 * time.Minute)}))

		now = now.Add(2 * time.Hour)
		repo.cleanup()

		_, ok := repo.Get(ctx, "abc")
		require.False(t, ok)
		_, ok = repo.Get(ctx, "fresh")
		require.True(t, ok)
	})
}

func TestSessionRepositoryMemory_StopTwice(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Minute)
	repo.Stop()
	repo.Stop()
}

func TestSessionRepositoryMemory_Swap(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepositoryMemory(time.Hour)
	defer repo.Stop()

	_, ok, err := repo.Swap(ctx, "abc", domain.SessionState{Best: domain.StrategyTraditional})
	require.NoError(t, err)
	require.False(t, ok)

	previous, ok, err := repo.Swap(ctx, "abc", domain.SessionState{Best: domain.StrategyInvestment})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.StrategyTraditional, previous.Best)
	require.False(t, previous.UpdatedAt.IsZero())

	got, _ := repo.Get(ctx, "abc")
	require.Equal(t, domain.StrategyInvestment, got.Best)
}

func TestSessionRepositoryMemory_SwapConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepositoryMemory(time.Hour)
	defer repo.Stop()

	const writers = 50
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fresh int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := repo.Swap(ctx, "shared", domain.SessionState{Best: domain.StrategyInvestment})
			require.NoError(t, err)
			if !ok {
				mu.Lock()
				fresh++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, fresh)
}
