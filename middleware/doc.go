// Package middleware provides net/http middleware for the form service.
// Every constructor returns a func(http.Handler) http.Handler, so the
// middleware plugs straight into chi:
//
//	r := chi.NewRouter()
//	r.Use(
//		middleware.RequestID(),
//		middleware.ClientIP(),
//		middleware.Logging(log),
//		middleware.SecurityHeaders(false),
//		middleware.CORS("https://app.businessos.rw"),
//		middleware.BodyLimit(12*middleware.MB),
//		middleware.I18n(catalog, form.Namespace),
//	)
//
// # Request Context
//
// RequestID, ClientIP and I18n store values in the request context. Read
// them back with GetRequestID, GetClientIP and GetTranslator. Pass
// RequestIDExtractor to logger.WithContextExtractors to stamp request IDs on
// every log record written with the request context.
//
// # Rate Limiting
//
// RateLimit takes one token per request from a ratelimiter.RateLimiter,
// keyed by client IP unless KeyExtractor says otherwise:
//
//	r.With(middleware.RateLimit(middleware.RateLimitConfig{
//		Limiter:    submitLimiter,
//		KeyPrefix:  "submit:",
//		SetHeaders: true,
//	})).Post("/api/forms/{form}/submit", submit)
//
// Denied requests get 429 with Retry-After.
//
// # Errors
//
// Middleware that rejects a request renders a response.HTTPError through a
// handler.ErrorHandler, response.JSONErrorHandler by default.
package middleware
