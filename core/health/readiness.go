package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/logger"
	"github.com/emmydush/businessos/core/response"
)

// CheckTimeout bounds each dependency check.
const CheckTimeout = 3 * time.Second

// Check probes one dependency.
type Check func(ctx context.Context) error

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
//
// Example:
//
//	r.Get("/health/ready", handler.Wrap(health.Readiness(log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	), onErr))
func Readiness(log *slog.Logger, checks ...Check) handler.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(r *http.Request) handler.Response {
		for _, check := range checks {
			if check == nil {
				continue
			}
			ctx, cancel := context.WithTimeout(r.Context(), CheckTimeout)
			err := check(ctx)
			cancel()
			if err != nil {
				log.ErrorContext(r.Context(), "Readiness check failed", logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}

		return response.String("READY")
	}
}
