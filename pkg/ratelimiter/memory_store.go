package ratelimiter

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/memid/pkg/cache"
)

// DefaultMaxKeys bounds a MemoryStore built without WithMaxKeys.
const DefaultMaxKeys = 10_000

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// MemoryStore keeps buckets in process memory. Once MaxKeys clients are
// tracked the least recently seen one is forgotten and starts over with a
// full bucket.
type MemoryStore struct {
	mu      sync.Mutex
	buckets *cache.LRU[string, *bucket]
	now     func() time.Time
}

type MemoryStoreOption func(*memoryStoreOptions)

type memoryStoreOptions struct {
	maxKeys int
	now     func() time.Time
}

// WithMaxKeys bounds the number of tracked keys. Non-positive values are ignored.
func WithMaxKeys(n int) MemoryStoreOption {
	return func(o *memoryStoreOptions) {
		if n > 0 {
			o.maxKeys = n
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(o *memoryStoreOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	o := memoryStoreOptions{maxKeys: DefaultMaxKeys, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryStore{
		buckets: cache.NewLRU[string, *bucket](o.maxKeys),
		now:     o.now,
	}
}

func (ms *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	b, ok := ms.buckets.Get(key)
	if !ok {
		b = &bucket{tokens: cfg.Capacity, lastRefill: now}
		ms.buckets.Put(key, b)
	}

	// cap intervals so a long idle period cannot overflow the refill
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = now
	}

	remaining := b.tokens - tokens
	if remaining >= 0 {
		b.tokens = remaining
	}
	return remaining, b.lastRefill.Add(cfg.RefillInterval), nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.buckets.Remove(key)
	return nil
}

// Len returns the number of tracked keys.
func (ms *MemoryStore) Len() int {
	return ms.buckets.Len()
}
