// Package registry checks generated identifiers against a store of
// identifiers already in use.
//
// A Registry reserves identifiers atomically. Validator adapts any Registry
// to memorableid.AsyncValidator, so the generator keeps drawing candidates
// until the store accepts one:
//
//	reg := registry.NewMemory(0)
//	gen := memorableid.MustNew(memorableid.DescriptiveColourfulAnimal())
//	id, err := gen.GenerateAsync(ctx, registry.Validator(reg)).Await()
//
// Memory keeps a bounded set in process. Shared stores live in the
// subpackages redisstore, pgstore, mongostore and boltstore.
package registry
