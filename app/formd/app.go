package formd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/emmydush/businessos/core/health"
	"github.com/emmydush/businessos/core/logger"
	"github.com/emmydush/businessos/core/server"
	"github.com/emmydush/businessos/integration/database/pg"
	"github.com/emmydush/businessos/integration/database/redis"
	"github.com/emmydush/businessos/integration/storage/s3"
	"github.com/emmydush/businessos/middleware"
	"github.com/emmydush/businessos/pkg/clientip"
	"github.com/emmydush/businessos/pkg/ratelimiter"
)

// ErrInvalidConfig reports a configuration value the service cannot run with.
var ErrInvalidConfig = errors.New("invalid formd configuration")

// App is the assembled formd process.
type App struct {
	config  Config
	logger  *slog.Logger
	catalog *Catalog
	server  *server.Server
	service *Service
	handler http.Handler

	workers []func(ctx context.Context) func() error
	closers []func()
}

// AppOption configures an App.
type AppOption func(*App) error

// WithLogger replaces the logger derived from APP_ENV and LOG_LEVEL.
func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

// WithCatalog replaces the default BusinessOS catalog.
func WithCatalog(c *Catalog) AppOption {
	return func(app *App) error {
		if c == nil {
			return errors.New("catalog cannot be nil")
		}
		app.catalog = c
		return nil
	}
}

// WithServer replaces the server built from cfg.Server.
func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("server cannot be nil")
		}
		app.server = s
		return nil
	}
}

// New connects the configured backends and builds the HTTP handler.
// Backends left unconfigured fall back to in-memory implementations.
func New(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	if !slices.Contains([]string{"en", "fr"}, cfg.DefaultLanguage) {
		return nil, fmt.Errorf("%w: unsupported DEFAULT_LANGUAGE %q", ErrInvalidConfig, cfg.DefaultLanguage)
	}
	if cfg.BcryptCost != 0 && (cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost) {
		return nil, fmt.Errorf("%w: BCRYPT_COST must be between %d and %d", ErrInvalidConfig, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if err := cfg.SubmitRate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	app := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	if app.logger == nil {
		app.logger = logger.New(
			logger.ForEnvironment(cfg.Env, cfg.AppName),
			logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
			logger.WithContextExtractors(middleware.RequestIDExtractor()),
		)
	}
	if app.catalog == nil {
		app.catalog = DefaultCatalog()
	}

	if err := app.init(ctx); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.config
	log := a.logger

	catalogI18n, err := NewI18n(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var checks []health.Check
	svcOpts := []ServiceOption{
		WithServiceLogger(log.With(logger.Component("formd"))),
		WithBcryptCost(cfg.BcryptCost),
	}

	if cfg.DB.Enabled() {
		pool, err := pg.Connect(ctx, cfg.DB)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, pool.Close)
		if err := pg.Migrate(ctx, pool, cfg.DB, Migrations, MigrationsDir, log); err != nil {
			return err
		}
		svcOpts = append(svcOpts, WithStore(NewPGStore(pool)))
		checks = append(checks, pg.Healthcheck(pool))
		log.InfoContext(ctx, "submissions stored in postgres")
	} else {
		log.WarnContext(ctx, "PG_CONN_URL not set, submissions are kept in memory")
	}

	var limiterStore ratelimiter.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		limiterStore = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.AppName+":ratelimit:"))
		checks = append(checks, redis.Healthcheck(client))
	} else {
		ms := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreLogger(log))
		limiterStore = ms
		a.workers = append(a.workers, ms.Run)
	}
	limiter, err := ratelimiter.NewBucket(limiterStore, cfg.SubmitRate)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	resolver, err := clientip.NewResolver(cfg.TrustedProxies...)
	if err != nil {
		return fmt.Errorf("%w: TRUSTED_PROXIES: %w", ErrInvalidConfig, err)
	}

	if cfg.S3.Enabled() {
		store, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return err
		}
		svcOpts = append(svcOpts, WithUploads(store))
		checks = append(checks, store.Healthcheck())
	} else {
		log.WarnContext(ctx, "S3_BUCKET not set, uploads are kept in memory")
	}

	a.service = NewService(a.catalog, catalogI18n, svcOpts...)
	a.handler = NewRouter(a.service, RouterConfig{
		Logger:        log,
		SubmitLimiter: limiter,
		ClientIP:      resolver,
		Readiness:     checks,
		AllowOrigins:  cfg.AllowOrigins,
		MaxBodySize:   cfg.MaxBodySize,
		MaxUploadSize: cfg.MaxUploadSize,
		TLS:           cfg.Server.TLSCertFile != "",
	})

	if a.server == nil {
		srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
		if err != nil {
			return err
		}
		a.server = srv
	}
	return nil
}

// Handler returns the HTTP handler served by Run.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Service returns the submission service.
func (a *App) Service() *Service {
	return a.service
}

// Run serves HTTP and runs background workers until ctx is canceled or one
// of them fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.handler))
	for _, w := range a.workers {
		g.Go(w(ctx))
	}
	a.logger.InfoContext(ctx, "formd started", logger.Key("addr", a.config.Server.Addr), logger.Count("forms", len(a.catalog.All())))
	return g.Wait()
}

// Close releases backend connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
