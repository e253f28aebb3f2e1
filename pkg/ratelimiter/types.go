package ratelimiter

import (
	"context"
	"time"
)

// Config describes a token bucket. A zero Capacity disables limiting.
type Config struct {
	Capacity       int           `env:"MEMID_RATE_LIMIT_CAPACITY" envDefault:"0"`         // Capacity is the burst size in tokens.
	RefillRate     int           `env:"MEMID_RATE_LIMIT_REFILL_RATE" envDefault:"10"`     // RefillRate is the number of tokens added per interval.
	RefillInterval time.Duration `env:"MEMID_RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"` // RefillInterval is how often tokens are added.
	MaxKeys        int           `env:"MEMID_RATE_LIMIT_MAX_KEYS" envDefault:"10000"`     // MaxKeys bounds the clients tracked by the memory store.
}

// Enabled reports whether c limits anything.
func (c Config) Enabled() bool {
	return c.Capacity > 0
}

// Result is the outcome of one AllowN call.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative when denied
	ResetAt   time.Time // next refill
}

// Allowed reports whether the tokens were granted.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying, or 0 if allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Store keeps bucket state per key.
//
// ConsumeTokens takes tokens only when the bucket holds enough of them. A
// denied call leaves the bucket untouched and reports remaining as the
// (negative) shortfall.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// Limiter grants or denies n tokens for key.
type Limiter interface {
	AllowN(ctx context.Context, key string, n int) (*Result, error)
}
