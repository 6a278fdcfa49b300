package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store — SessionStore поверх Redis: ключ session:<sid>:<key>, TTL скользящий (GETEX).
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New — ttl <= 0 означает хранение без срока.
func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// NewClient — разбирает redis:// URL и проверяет соединение.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (s *Store) Get(ctx context.Context, sid, key string) ([]byte, bool, error) {
	var cmd *redis.StringCmd
	if s.ttl > 0 {
		cmd = s.rdb.GetEx(ctx, redisKey(sid, key), s.ttl)
	} else {
		cmd = s.rdb.Get(ctx, redisKey(sid, key))
	}
	val, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

func (s *Store) Set(ctx context.Context, sid, key string, value []byte) error {
	if err := s.rdb.Set(ctx, redisKey(sid, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, sid, key string) error {
	if err := s.rdb.Del(ctx, redisKey(sid, key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func redisKey(sid, key string) string {
	return "session:" + sid + ":" + key
}
