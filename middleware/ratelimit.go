package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/response"
	"github.com/emmydush/businessos/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	Skip    SkipFunc
	Limiter ratelimiter.RateLimiter
	// KeyExtractor returns the bucket key (default: client IP).
	KeyExtractor func(r *http.Request) string
	// KeyPrefix is prepended to every key so several limiters can share a store.
	KeyPrefix    string
	ErrorHandler handler.ErrorHandler
	// SetHeaders adds X-RateLimit-* headers to every response.
	SetHeaders bool
}

// RateLimit takes one token per request and answers 429 with Retry-After
// once the bucket for the request key is empty. Limiter failures are 500s.
// Panics if no limiter is provided.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = clientIPOf
	}
	onErr := defaultErrorHandler(cfg.ErrorHandler)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			result, err := cfg.Limiter.Allow(r.Context(), cfg.KeyPrefix+cfg.KeyExtractor(r))
			if err != nil {
				onErr(w, r, response.ErrInternalServerError.WithError(err))
				return
			}

			if cfg.SetHeaders {
				setRateLimitHeaders(w.Header(), result)
			}

			if !result.Allowed() {
				retryAfter := retryAfterSeconds(result)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				onErr(w, r, response.ErrTooManyRequests.WithDetails(map[string]any{
					"retry_after": retryAfter,
				}))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setRateLimitHeaders(h http.Header, result *ratelimiter.Result) {
	h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	// Denied requests report a negative balance; clients only need zero.
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

// retryAfterSeconds rounds up so clients never retry too early.
func retryAfterSeconds(result *ratelimiter.Result) int {
	return max(1, int(math.Ceil(result.RetryAfter().Seconds())))
}
