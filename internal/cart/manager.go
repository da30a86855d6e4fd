package cart

import (
	"context"
	"sync"
)

// Manager hands out one Store per POS session. The first time a session id
// shows up its store is created, restoring any snapshot the saver has for
// it; after that the same store is returned for the life of the process.
type Manager struct {
	mu           sync.Mutex
	stores       map[string]*Store
	rateTenthBps int64
	saver        Saver
}

func NewManager(rateTenthBps int64, saver Saver) *Manager {
	return &Manager{
		stores:       make(map[string]*Store),
		rateTenthBps: rateTenthBps,
		saver:        saver,
	}
}

// Get returns the store for the session, creating it on first use.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := NewStore(ctx, sessionID, m.rateTenthBps, m.saver)
	m.stores[sessionID] = s
	return s
}
