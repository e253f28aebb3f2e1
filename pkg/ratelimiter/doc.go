// Package ratelimiter implements a token bucket limiter with pluggable state.
//
// A Bucket pairs a Config with a Store. MemoryStore serves a single process
// and forgets the least recently seen clients once MaxKeys is reached.
// RedisStore keeps the same state in Redis, updated by a Lua script, so
// several replicas share one budget per client.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       100,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	res, err := limiter.AllowN(ctx, clientIP, cost)
//	ratelimiter.SetHeaders(w.Header(), res)
//	if !res.Allowed() {
//		// respond 429
//	}
//
// A request is either granted in full or denied without consuming anything,
// so a client asking for more than it has left can still make smaller
// requests.
package ratelimiter
