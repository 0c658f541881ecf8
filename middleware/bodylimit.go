package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/response"
)

const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimitConfig configures the body limit middleware.
type BodyLimitConfig struct {
	Skip SkipFunc
	// MaxSize applies to every request (default: 4MB).
	MaxSize int64
	// ContentTypeLimit overrides MaxSize per media type, e.g. a larger
	// limit for multipart/form-data uploads.
	ContentTypeLimit map[string]int64
	ErrorHandler     handler.ErrorHandler
}

// BodyLimit rejects requests whose declared Content-Length exceeds maxSize
// with 413 and caps the body reader for the rest.
func BodyLimit(maxSize int64) Middleware {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

func BodyLimitWithConfig(cfg BodyLimitConfig) Middleware {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 4 * MB
	}
	onErr := defaultErrorHandler(cfg.ErrorHandler)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			maxSize := cfg.MaxSize
			if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
				if limit, ok := cfg.ContentTypeLimit[mediaType]; ok {
					maxSize = limit
				}
			}

			if r.ContentLength > maxSize {
				onErr(w, r, response.ErrRequestEntityTooLarge.
					WithMessage(fmt.Sprintf("Request body too large. Maximum allowed: %s", formatBytes(maxSize))).
					WithDetails(map[string]any{"limit": maxSize, "size": r.ContentLength}))
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func formatBytes(n int64) string {
	switch {
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
