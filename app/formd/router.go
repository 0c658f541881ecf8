package formd

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/health"
	"github.com/emmydush/businessos/core/logger"
	"github.com/emmydush/businessos/core/response"
	"github.com/emmydush/businessos/middleware"
	"github.com/emmydush/businessos/pkg/clientip"
	"github.com/emmydush/businessos/pkg/ratelimiter"
)

// RouterConfig wires the HTTP surface of the service.
type RouterConfig struct {
	Logger *slog.Logger
	// SubmitLimiter throttles submit requests per client IP. Nil disables it.
	SubmitLimiter ratelimiter.RateLimiter
	// ClientIP decides which proxies may set the client address (default: none).
	ClientIP  *clientip.Resolver
	Readiness []health.Check
	// AllowOrigins enables CORS for the listed origins.
	AllowOrigins  []string
	MaxBodySize   int64
	MaxUploadSize int64
	TLS           bool
}

// NewRouter mounts the health and form API routes.
func NewRouter(svc *Service, cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = middleware.MB
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = 20 * middleware.MB
	}

	onErr := response.JSONErrorHandler(log)
	wrap := func(h handler.HandlerFunc) http.HandlerFunc {
		return handler.Wrap(h, onErr)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.ClientIPWithConfig(middleware.ClientIPConfig{Resolver: cfg.ClientIP}),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip: func(r *http.Request) bool {
				return r.URL.Path == "/health/live"
			},
		}),
		middleware.SecurityHeaders(cfg.TLS),
	)
	if len(cfg.AllowOrigins) > 0 {
		r.Use(middleware.CORS(cfg.AllowOrigins...))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		onErr(w, r, response.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		onErr(w, r, response.ErrMethodNotAllowed)
	})

	r.Get("/health/live", wrap(health.Liveness))
	r.Get("/health/ready", wrap(health.Readiness(log, cfg.Readiness...)))

	r.Route("/api", func(r chi.Router) {
		r.Use(
			middleware.I18nWithConfig(middleware.I18nConfig{
				I18n:       svc.i18n,
				Namespace:  form.Namespace,
				QueryParam: "lang",
			}),
			middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
				MaxSize:          cfg.MaxBodySize,
				ContentTypeLimit: map[string]int64{"multipart/form-data": cfg.MaxUploadSize},
				ErrorHandler:     onErr,
			}),
		)

		r.Get("/forms", wrap(svc.ListForms))
		r.Get("/forms/{form}", wrap(svc.GetForm))
		r.Post("/forms/{form}/validate", wrap(svc.ValidateForm))

		submit := wrap(svc.SubmitForm)
		if cfg.SubmitLimiter != nil {
			r.With(middleware.RateLimit(middleware.RateLimitConfig{
				Limiter:      cfg.SubmitLimiter,
				KeyPrefix:    "submit:",
				ErrorHandler: onErr,
				SetHeaders:   true,
			})).Post("/forms/{form}/submit", submit)
		} else {
			r.Post("/forms/{form}/submit", submit)
		}

		r.Post("/password/strength", wrap(svc.PasswordStrength))
	})

	return r
}
