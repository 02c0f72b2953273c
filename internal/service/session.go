package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps server-side sessions: session id -> user id, with a TTL.
type SessionStore interface {
	Create(ctx context.Context, userID int64, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "session:"

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, sessionKeyPrefix+id, userID, ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisSessionStore) Lookup(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, ErrSessionNotFound
	}
	return userID, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

type memorySession struct {
	userID  int64
	expires time.Time
}

// MemorySessionStore is used when no Redis is configured. Sessions die with the process.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession), now: time.Now}
}

func (s *MemorySessionStore) Create(_ context.Context, userID int64, ttl time.Duration) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.sessions[id] = memorySession{userID: userID, expires: s.now().Add(ttl)}
	return id, nil
}

func (s *MemorySessionStore) Lookup(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return 0, ErrSessionNotFound
	}
	if !s.now().Before(sess.expires) {
		delete(s.sessions, sessionID)
		return 0, ErrSessionNotFound
	}
	return sess.userID, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// sweep drops expired sessions; caller holds mu
func (s *MemorySessionStore) sweep() {
	now := s.now()
	for id, sess := range s.sessions {
		if !now.Before(sess.expires) {
			delete(s.sessions, id)
		}
	}
}
