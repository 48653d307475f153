package repository

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

type stateFixture struct {
	Stage string `json:"stage"`
	Slot  uint   `json:"slot"`
}

func newStore(t *testing.T) (*SessionRedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionRedisStore(rdb, 0), mr
}

func TestSessionRedisStore_SaveLoad(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	key := session.BookingKey("sid-1")

	require.NoError(t, store.Save(ctx, key, stateFixture{Stage: "slot_selected", Slot: 9}))

	var got stateFixture
	require.NoError(t, store.Load(ctx, key, &got))
	assert.Equal(t, stateFixture{Stage: "slot_selected", Slot: 9}, got)
	assert.Equal(t, session.StateTTL, mr.TTL(key))
}

func TestSessionRedisStore_NotFoundAndExpiry(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	key := session.FiltersKey("sid-1", "barber")

	var got stateFixture
	assert.ErrorIs(t, store.Load(ctx, key, &got), session.ErrStateNotFound)

	require.NoError(t, store.Save(ctx, key, stateFixture{Stage: "x"}))
	mr.FastForward(session.StateTTL + time.Second)
	assert.ErrorIs(t, store.Load(ctx, key, &got), session.ErrStateNotFound)
}

func TestSessionRedisStore_Delete(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", 1))
	require.NoError(t, store.Save(ctx, "b", 2))
	require.NoError(t, store.Delete(ctx, "a", "b"))
	require.NoError(t, store.Delete(ctx))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient("http://nope")
	assert.Error(t, err)
}
