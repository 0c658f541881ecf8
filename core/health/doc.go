// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//
// Usage:
//
//	r.Get("/health/live", handler.Wrap(health.Liveness, onErr))
//	r.Get("/health/ready", handler.Wrap(health.Readiness(log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	), onErr))
//
// Dependency checks follow the func(context.Context) error signature and
// each runs with CheckTimeout.
package health
