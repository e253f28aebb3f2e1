// Package redisstore is a registry.Registry backed by Redis.
//
// Each reserved identifier is a key "<KeyPrefix><id>" written with SET NX,
// optionally expiring after TTL so identifiers can be recycled:
//
//	var cfg redisstore.Config
//	config.MustLoad(&cfg)
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := redisstore.New(client, cfg)
//	id, err := gen.GenerateAsync(ctx, registry.Validator(store)).Await()
//
// Healthcheck(client) fits the readiness checks of the HTTP API.
package redisstore
