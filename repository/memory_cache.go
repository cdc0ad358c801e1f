package repository

import (
	"context"
	"sync"
	"time"
)

const (
	cacheCleanupInterval = 5 * time.Minute
	maxMemoryCacheItems  = 10000
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is a process-local CacheRepository. Expired entries are
// dropped on read and by a background sweep, and the entry count is bounded.
type MemoryCache struct {
	mu          sync.RWMutex
	data        map[string]memoryEntry
	maxEntries  int
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewMemoryCache() *MemoryCache {
	m := &MemoryCache{
		data:        make(map[string]memoryEntry),
		maxEntries:  maxMemoryCacheItems,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

func (m *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(cacheCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *MemoryCache) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpiredLocked()
}

func (m *MemoryCache) purgeExpiredLocked() {
	now := m.now()
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopCleanup) })
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores value under key. When the cache is full expired entries are
// purged first, then arbitrary entries are evicted until there is room.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.purgeExpiredLocked()
		for k := range m.data {
			if len(m.data) < m.maxEntries {
				break
			}
			delete(m.data, k)
		}
	}
	m.data[key] = entry
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
