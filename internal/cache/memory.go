package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is an in-process Cache. Expired entries are evicted lazily on Get
// and in bulk by RunSweeper.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; another caller may have replaced it.
		if cur, ok := m.entries[key]; ok && !m.now().Before(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
}

// Sweep removes all expired entries and reports how many were evicted.
func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	evicted := 0
	for key, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, key)
			evicted++
		}
	}
	return evicted
}

// RunSweeper periodically evicts expired entries until ctx is cancelled.
// Run it from main: go memCache.RunSweeper(ctx, time.Minute).
func (m *Memory) RunSweeper(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Len reports the number of live plus not-yet-swept entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
