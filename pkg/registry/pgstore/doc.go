// Package pgstore is a registry.Registry backed by PostgreSQL.
//
// Identifiers are rows of memid_identifiers, keyed by a random UUID and
// unique on the identifier itself. Reserve is a single
// INSERT ... ON CONFLICT DO NOTHING, so concurrent generators on different
// hosts never both win the same identifier.
//
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pgstore.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	store := pgstore.New(pool)
//
// The schema ships embedded in the binary and is applied with goose.
package pgstore
