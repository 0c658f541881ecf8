package health

import (
	"net/http"

	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
// Example:
//
//	r.Get("/health/live", handler.Wrap(health.Liveness, onErr))
func Liveness(*http.Request) handler.Response {
	return response.String("ALIVE")
}
