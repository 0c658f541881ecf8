// Package redis connects to Redis with go-redis and provides a readiness check.
//
// Config reads REDIS_* environment variables. REDIS_URL is optional; when it is
// empty Enabled reports false and callers keep state in process instead.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
//	ready := redis.Healthcheck(client)
//
// Connect accepts redis:// and rediss:// URLs, pings the server and retries
// with a linearly growing delay until RetryAttempts or ConnectTimeout is spent.
//
// Errors wrap ErrEmptyConnectionURL, ErrFailedToParseRedisConnString,
// ErrRedisNotReady or ErrHealthcheckFailed.
package redis
