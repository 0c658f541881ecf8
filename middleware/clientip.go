package middleware

import (
	"context"
	"net/http"

	"github.com/emmydush/businessos/pkg/clientip"
)

type clientIPContextKey struct{}

// ClientIPConfig configures the client IP middleware.
type ClientIPConfig struct {
	// Resolver decides which proxy headers to trust (default: none, RemoteAddr only).
	Resolver *clientip.Resolver
}

// ClientIP resolves the peer address once and stores it in the request
// context for the logging and rate limit middleware. Proxy headers are ignored.
func ClientIP() Middleware {
	return ClientIPWithConfig(ClientIPConfig{})
}

// ClientIPWithConfig is ClientIP with a resolver that may trust proxies.
func ClientIPWithConfig(cfg ClientIPConfig) Middleware {
	resolve := clientip.GetIP
	if cfg.Resolver != nil {
		resolve = cfg.Resolver.IP
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), clientIPContextKey{}, resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientIP returns the address stored by ClientIP.
func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}

// clientIPOf prefers the stored address and falls back to the peer address.
func clientIPOf(r *http.Request) string {
	if ip, ok := GetClientIP(r.Context()); ok {
		return ip
	}
	return clientip.GetIP(r)
}
