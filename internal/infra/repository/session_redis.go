package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

// SessionRedisStore guarda o estado de tela por sessão como JSON, com TTL.
type SessionRedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ session.Store = (*SessionRedisStore)(nil)

func NewSessionRedisStore(rdb *redis.Client, ttl time.Duration) *SessionRedisStore {
	if ttl <= 0 {
		ttl = session.StateTTL
	}
	return &SessionRedisStore{rdb: rdb, ttl: ttl}
}

// NewRedisClient aceita REDIS_URL no formato redis://[:senha@]host:porta/db.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (s *SessionRedisStore) Load(ctx context.Context, key string, dst any) error {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode session state %s: %w", key, err)
	}
	return nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

// Save renova o TTL a cada gravação.
func (s *SessionRedisStore) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode session state %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *SessionRedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
