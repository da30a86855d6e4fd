package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
)

// MemoryStore keeps snapshots in process memory. It backs tests and
// deployments that run without Redis configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, snap cart.Snapshot) {
	// best-effort; an encode failure just leaves the old slot in place
	_ = s.put(sessionID, snap)
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (cart.Snapshot, bool) {
	s.mu.RLock()
	body, ok := s.data[sessionID]
	s.mu.RUnlock()
	if !ok {
		return cart.Snapshot{}, false
	}
	return decodeSnapshot(body)
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) put(sessionID string, snap cart.Snapshot) SaveResult {
	body, err := json.Marshal(snap)
	if err != nil {
		return SaveResult{Err: fmt.Errorf("encode snapshot: %w", err)}
	}
	s.mu.Lock()
	s.data[sessionID] = body
	s.mu.Unlock()
	return SaveResult{}
}
