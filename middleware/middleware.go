package middleware

import (
	"net/http"

	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/response"
)

// Middleware is the chi-compatible middleware signature.
type Middleware = func(http.Handler) http.Handler

// SkipFunc reports whether a middleware should pass the request through untouched.
type SkipFunc func(r *http.Request) bool

func defaultErrorHandler(h handler.ErrorHandler) handler.ErrorHandler {
	if h != nil {
		return h
	}
	return response.JSONErrorHandler(nil)
}
