// Package cache provides a generic, thread-safe LRU cache.
//
// The in-memory identifier registry uses it to remember a bounded number of
// reserved identifiers:
//
//	seen := cache.NewLRU[string, struct{}](100_000)
//	if seen.PutIfAbsent(id, struct{}{}) {
//		// id was free and is now taken
//	}
//
// Once the cache is full the least recently used key is evicted. An optional
// callback observes evictions:
//
//	seen.OnEvict(func(id string, _ struct{}) {
//		log.Debug("forgot identifier", "id", id)
//	})
//
// Get and PutIfAbsent refresh a key's recency, Contains does not. Every
// operation is O(1).
package cache
