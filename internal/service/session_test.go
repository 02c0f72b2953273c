package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionStore(client), mr
}

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, 7, time.Hour)
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:"+id))
	assert.Equal(t, time.Hour, mr.TTL("session:"+id))

	userID, err := s.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_Expires(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, 7, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = s.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_UnknownID(t *testing.T) {
	s, _ := newMiniredisStore(t)
	_, err := s.Lookup(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_RedisDown(t *testing.T) {
	s, mr := newMiniredisStore(t)
	mr.Close()

	_, err := s.Lookup(context.Background(), "any")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSessionNotFound))
}

func TestMemorySessionStore_Lifecycle(t *testing.T) {
	s := NewMemorySessionStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	id, err := s.Create(ctx, 3, time.Hour)
	require.NoError(t, err)

	userID, err := s.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), userID)

	now = now.Add(2 * time.Hour)
	_, err = s.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	id, err = s.Create(ctx, 3, time.Hour)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, id))
	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_SweepsExpired(t *testing.T) {
	s := NewMemorySessionStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx, int64(i), time.Minute)
		require.NoError(t, err)
	}
	now = now.Add(time.Hour)
	_, err := s.Create(ctx, 99, time.Minute)
	require.NoError(t, err)
	assert.Len(t, s.sessions, 1)
}
