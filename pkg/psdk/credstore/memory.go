package credstore

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is a map-backed Store honoring expiry on read. It is safe for
// concurrent use and is the store of choice in tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now can be overridden in tests.
	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(name string) (string, bool) {
	m.mu.RLock()
	e, ok := m.entries[name]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.Remove(name)
		return "", false
	}
	return e.value, true
}

func (m *Memory) Set(name, value string, opts Options) error {
	days := opts.LifetimeDays
	if days == 0 {
		days = DefaultOptions(name).LifetimeDays
	}
	m.mu.Lock()
	m.entries[name] = memoryEntry{
		value:     value,
		expiresAt: m.now().Add(time.Duration(days) * 24 * time.Hour),
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Remove(name string) {
	m.mu.Lock()
	delete(m.entries, name)
	m.mu.Unlock()
}

var _ Store = (*Memory)(nil)
