// Package boltstore is a registry.Registry kept in a local bbolt file.
//
//	store, err := boltstore.Open(boltstore.Config{Path: "memid.db"})
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
// Identifiers survive restarts, which makes it the natural registry for the
// CLI when no shared store is available.
package boltstore
