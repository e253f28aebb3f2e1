// Package mongostore is a registry.Registry backed by MongoDB.
//
//	client, err := mongostore.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := mongostore.New(client, cfg)
//
// A duplicate key error on insert means the identifier is taken.
package mongostore
