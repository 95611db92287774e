package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore persists wizard sessions between requests. Get returns
// (nil, nil) when no session exists for the user.
type SessionStore interface {
	Get(ctx context.Context, userID uint64) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, userID uint64) error
}

// RedisSessionStore keeps sessions as JSON values with a TTL, so abandoned
// flows expire on their own. It is the store used in production.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSessionStore returns a store writing to the given client with the
// given session lifetime.
func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(userID uint64) string { return fmt.Sprintf("wizard:session:%d", userID) }

func (st *RedisSessionStore) Get(ctx context.Context, userID uint64) (*Session, error) {
	bs, err := st.rdb.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(bs, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (st *RedisSessionStore) Save(ctx context.Context, s *Session) error {
	bs, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return st.rdb.Set(ctx, sessionKey(s.UserID), bs, st.ttl).Err()
}

func (st *RedisSessionStore) Delete(ctx context.Context, userID uint64) error {
	return st.rdb.Del(ctx, sessionKey(userID)).Err()
}

// MemorySessionStore is a map-backed store used in tests and as a fallback
// when Redis is unavailable at startup. Sessions are process-local and do
// not survive restarts.
type MemorySessionStore struct {
	mu sync.RWMutex
	m  map[uint64]Session
}

// NewMemorySessionStore returns an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{m: map[uint64]Session{}}
}

func (st *MemorySessionStore) Get(_ context.Context, userID uint64) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.m[userID]
	if !ok {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (st *MemorySessionStore) Save(_ context.Context, s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.m[s.UserID] = *s
	return nil
}

func (st *MemorySessionStore) Delete(_ context.Context, userID uint64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.m, userID)
	return nil
}
