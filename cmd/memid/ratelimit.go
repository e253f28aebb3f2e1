package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/memid/pkg/config"
	"github.com/dmitrymomot/memid/pkg/ratelimiter"
	"github.com/dmitrymomot/memid/pkg/registry/redisstore"
)

const rateLimitKeyPrefix = "memid:ratelimit:"

type limitSettings struct {
	TrustProxy bool   `env:"MEMID_TRUST_PROXY" envDefault:"false"`
	Store      string `env:"MEMID_RATE_LIMIT_STORE" envDefault:"memory"`
	RateLimit  ratelimiter.Config
}

type limitFlags struct {
	capacity   int
	trustProxy bool
	store      string
}

func (f *limitFlags) register(flags *pflag.FlagSet) {
	flags.IntVar(&f.capacity, "rate-limit", 0, "Identifiers each client may burst before being limited, 0 disables (env MEMID_RATE_LIMIT_CAPACITY)")
	flags.BoolVar(&f.trustProxy, "trust-proxy", false, "Identify clients by proxy headers (env MEMID_TRUST_PROXY)")
	flags.StringVar(&f.store, "rate-limit-store", "", "Rate limit state: memory or redis (env MEMID_RATE_LIMIT_STORE)")
}

// resolve loads the environment and applies flags set on the command line.
func (f *limitFlags) resolve(flags *pflag.FlagSet) (limitSettings, error) {
	var s limitSettings
	if err := config.Load(&s); err != nil {
		return limitSettings{}, err
	}
	if flags.Changed("rate-limit") {
		s.RateLimit.Capacity = f.capacity
	}
	if flags.Changed("trust-proxy") {
		s.TrustProxy = f.trustProxy
	}
	if flags.Changed("rate-limit-store") {
		s.Store = f.store
	}
	return s, nil
}

// openLimiter returns nil when rate limiting is disabled.
func openLimiter(ctx context.Context, s limitSettings) (ratelimiter.Limiter, func() error, error) {
	noop := func() error { return nil }
	if !s.RateLimit.Enabled() {
		return nil, noop, nil
	}

	var (
		store   ratelimiter.Store
		closeFn = noop
	)
	switch strings.ToLower(strings.TrimSpace(s.Store)) {
	case "", "memory":
		store = ratelimiter.NewMemoryStore(ratelimiter.WithMaxKeys(s.RateLimit.MaxKeys))
	case "redis":
		var cfg redisstore.Config
		if err := config.Load(&cfg); err != nil {
			return nil, noop, err
		}
		client, err := redisstore.Connect(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		store = ratelimiter.NewRedisStore(client, rateLimitKeyPrefix)
		closeFn = client.Close
	default:
		return nil, noop, fmt.Errorf("unknown rate limit store %q", s.Store)
	}

	limiter, err := ratelimiter.NewBucket(store, s.RateLimit)
	if err != nil {
		_ = closeFn()
		return nil, noop, err
	}
	return limiter, closeFn, nil
}
