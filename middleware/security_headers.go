package middleware

import "net/http"

// SecurityHeadersConfig lists the headers set on every response. Empty
// values are skipped.
type SecurityHeadersConfig struct {
	ContentTypeOptions      string
	FrameOptions            string
	ReferrerPolicy          string
	ContentSecurityPolicy   string
	StrictTransportSecurity string
	CrossOriginOpenerPolicy string
}

// APISecurity suits a JSON API that never renders HTML.
var APISecurity = SecurityHeadersConfig{
	ContentTypeOptions:      "nosniff",
	FrameOptions:            "DENY",
	ReferrerPolicy:          "no-referrer",
	ContentSecurityPolicy:   "default-src 'none'; frame-ancestors 'none'",
	CrossOriginOpenerPolicy: "same-origin",
}

// SecurityHeaders sets APISecurity headers. HSTS is added only when tls is true.
func SecurityHeaders(tls bool) Middleware {
	cfg := APISecurity
	if tls {
		cfg.StrictTransportSecurity = "max-age=31536000; includeSubDomains"
	}
	return SecurityHeadersWithConfig(cfg)
}

func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) Middleware {
	pairs := [][2]string{
		{"X-Content-Type-Options", cfg.ContentTypeOptions},
		{"X-Frame-Options", cfg.FrameOptions},
		{"Referrer-Policy", cfg.ReferrerPolicy},
		{"Content-Security-Policy", cfg.ContentSecurityPolicy},
		{"Strict-Transport-Security", cfg.StrictTransportSecurity},
		{"Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, p := range pairs {
				if p[1] != "" {
					h.Set(p[0], p[1])
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
