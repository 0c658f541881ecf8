// Package ratelimiter provides token bucket rate limiting with pluggable storage backends.
//
// A bucket holds at most Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes tokens; a request that would overdraw the
// bucket is denied and leaves the balance unchanged.
//
// # Usage
//
//	store := ratelimiter.NewMemoryStore()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     10,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	res, err := limiter.Allow(ctx, "submit:"+clientIP)
//	if err != nil {
//		return err
//	}
//	if !res.Allowed() {
//		retryIn := res.RetryAfter()
//		_ = retryIn
//	}
//
// Status reports the balance without consuming and Reset clears a key.
//
// # Storage Backends
//
// MemoryStore keeps buckets in process. Run its cleanup loop alongside the
// server so idle buckets are dropped:
//
//	g.Go(store.Run(ctx))
//
// RedisStore shares buckets across instances. Refill and consume run in a
// single Lua script, so concurrent requests never double spend:
//
//	store := ratelimiter.NewRedisStore(redisClient, ratelimiter.WithKeyPrefix("formd:rl:"))
//
// Keys expire once a bucket would have refilled completely.
//
// # Errors
//
//   - ErrInvalidConfig: non-positive capacity, rate or interval
//   - ErrInvalidTokenCount: n <= 0 or n > capacity
//   - ErrStoreUnavailable: the backend failed; the original error is wrapped
package ratelimiter
