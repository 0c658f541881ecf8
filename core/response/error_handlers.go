package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/logger"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// AsHTTPError converts any error to an HTTPError. Errors that are not
// HTTPError use their StatusCode method when present and default to 500.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// JSONErrorHandler renders errors as JSON HTTPError bodies.
// Server errors are logged and their cause is not exposed to the client.
func JSONErrorHandler(log *slog.Logger) handler.ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		httpErr := AsHTTPError(err)
		if httpErr.Status >= http.StatusInternalServerError {
			log.ErrorContext(r.Context(), "request failed",
				logger.Error(err),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(httpErr.Status),
			)
			httpErr.Details = nil
		}
		if rerr := JSONWithStatus(httpErr, httpErr.Status)(w, r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to write error response", logger.Error(rerr))
		}
	}
}
