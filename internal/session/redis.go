package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
)

const (
	keyPrefix = "pos:cart:"

	// Sessions are ephemeral: a register tab that has been idle this long
	// has been closed or abandoned.
	defaultTTL = 12 * time.Hour
)

// RedisStore caches snapshots in Redis, one key per session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

func NewRedisStore(client *redis.Client, logger *log.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: defaultTTL, logger: logger}
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, snap cart.Snapshot) {
	res := s.put(ctx, sessionID, snap)
	if !res.Saved() && s.logger != nil {
		s.logger.Printf("session %s: snapshot save failed, cart continues in memory: %v", sessionID, res.Err)
	}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (cart.Snapshot, bool) {
	body, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		// redis.Nil and transport failures both read as "no snapshot"
		return cart.Snapshot{}, false
	}
	return decodeSnapshot(body)
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) put(ctx context.Context, sessionID string, snap cart.Snapshot) SaveResult {
	body, err := json.Marshal(snap)
	if err != nil {
		return SaveResult{Err: fmt.Errorf("encode snapshot: %w", err)}
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, body, s.ttl).Err(); err != nil {
		return SaveResult{Err: fmt.Errorf("redis set: %w", err)}
	}
	return SaveResult{}
}
