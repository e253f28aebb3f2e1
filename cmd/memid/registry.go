package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/memid/pkg/config"
	"github.com/dmitrymomot/memid/pkg/httpserver"
	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/memorableid"
	"github.com/dmitrymomot/memid/pkg/registry"
	"github.com/dmitrymomot/memid/pkg/registry/boltstore"
	"github.com/dmitrymomot/memid/pkg/registry/mongostore"
	"github.com/dmitrymomot/memid/pkg/registry/pgstore"
	"github.com/dmitrymomot/memid/pkg/registry/redisstore"
)

// backend is an opened registry together with its probes and cleanup.
type backend struct {
	validate memorableid.AsyncValidator
	checks   []httpserver.Check
	close    func() error
}

func noBackend() backend {
	return backend{close: func() error { return nil }}
}

// openRegistry connects the registry named kind, configured from the
// environment. An empty kind or "none" disables registry checks.
func openRegistry(ctx context.Context, kind string, log *slog.Logger) (backend, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" || kind == "none" {
		return noBackend(), nil
	}
	log = log.With(logger.Registry(kind))

	var (
		b   backend
		err error
	)
	switch kind {
	case "memory":
		b = with(registry.NewMemory(0), nil, nil)
	case "redis":
		b, err = openRedis(ctx)
	case "postgres", "pg":
		b, err = openPostgres(ctx, log)
	case "mongo", "mongodb":
		b, err = openMongo(ctx)
	case "bolt":
		b, err = openBolt()
	default:
		return backend{}, fmt.Errorf("unknown registry %q", kind)
	}
	if err != nil {
		return backend{}, err
	}

	log.Debug("registry opened")
	return b, nil
}

func with(r registry.Registry, check httpserver.Check, closeFn func() error) backend {
	b := backend{validate: registry.Validator(r), close: closeFn}
	if check != nil {
		b.checks = []httpserver.Check{check}
	}
	if b.close == nil {
		b.close = func() error { return nil }
	}
	return b
}

func openRedis(ctx context.Context) (backend, error) {
	var cfg redisstore.Config
	if err := config.Load(&cfg); err != nil {
		return backend{}, err
	}
	client, err := redisstore.Connect(ctx, cfg)
	if err != nil {
		return backend{}, err
	}
	return with(redisstore.New(client, cfg), redisstore.Healthcheck(client), client.Close), nil
}

func openPostgres(ctx context.Context, log *slog.Logger) (backend, error) {
	var cfg pgstore.Config
	if err := config.Load(&cfg); err != nil {
		return backend{}, err
	}
	pool, err := pgstore.Connect(ctx, cfg)
	if err != nil {
		return backend{}, err
	}
	if err := pgstore.Migrate(ctx, pool, cfg, log); err != nil {
		pool.Close()
		return backend{}, err
	}
	return with(pgstore.New(pool), pgstore.Healthcheck(pool), func() error {
		pool.Close()
		return nil
	}), nil
}

func openMongo(ctx context.Context) (backend, error) {
	var cfg mongostore.Config
	if err := config.Load(&cfg); err != nil {
		return backend{}, err
	}
	client, err := mongostore.Connect(ctx, cfg)
	if err != nil {
		return backend{}, err
	}
	return with(mongostore.New(client, cfg), mongostore.Healthcheck(client), func() error {
		return client.Disconnect(context.Background())
	}), nil
}

func openBolt() (backend, error) {
	var cfg boltstore.Config
	if err := config.Load(&cfg); err != nil {
		return backend{}, err
	}
	store, err := boltstore.Open(cfg)
	if err != nil {
		return backend{}, err
	}
	return with(store, store.Healthcheck, store.Close), nil
}
