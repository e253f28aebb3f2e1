package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/memid/pkg/registry"
)

// Store reserves identifiers as Redis keys created with SET NX.
type Store struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// New returns a Store using client. KeyPrefix and TTL are taken from cfg.
func New(client redis.UniversalClient, cfg Config) *Store {
	return &Store{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
	}
}

func (s *Store) Reserve(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, registry.ErrEmptyID
	}
	return s.client.SetNX(ctx, s.key(id), time.Now().Unix(), s.ttl).Result()
}

// Release frees id so it can be reserved again.
func (s *Store) Release(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *Store) key(id string) string {
	return s.prefix + id
}
