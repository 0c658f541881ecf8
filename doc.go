// Package businessos is the index of the BusinessOS form validation toolkit:
// field validators, a form validation aggregator, a stateful form controller
// and the formd service that enforces the same rules server-side.
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/emmydush/businessos/core/form
//	go doc -all github.com/emmydush/businessos/app/formd
//
// # Validation Core
//
//	github.com/emmydush/businessos/core/validator   - Field predicates, password scoring and file checks
//	github.com/emmydush/businessos/core/form        - Field rules, the Validate aggregator and the Form state machine
//	github.com/emmydush/businessos/core/sanitizer   - Best-effort input cleaning and per-field sanitizer plans
//	github.com/emmydush/businessos/core/i18n        - Message catalogs and Accept-Language matching
//
// # Service Building Blocks
//
//	github.com/emmydush/businessos/core/binder      - JSON, url-encoded and multipart request decoding
//	github.com/emmydush/businessos/core/config      - Type-safe environment variable loading
//	github.com/emmydush/businessos/core/handler     - Error-returning HTTP handler abstraction
//	github.com/emmydush/businessos/core/health      - Liveness and readiness handlers
//	github.com/emmydush/businessos/core/logger      - Structured logging built on slog
//	github.com/emmydush/businessos/core/response    - JSON responses and HTTP errors
//	github.com/emmydush/businessos/core/server      - HTTP server with graceful shutdown
//	github.com/emmydush/businessos/middleware       - Request ID, logging, body limit, rate limit, CORS, locale negotiation
//
// # Utility Packages
//
//	github.com/emmydush/businessos/pkg/async        - Futures for running submit callbacks in the background
//	github.com/emmydush/businessos/pkg/clientip     - Real client IP extraction from HTTP requests
//	github.com/emmydush/businessos/pkg/ratelimiter  - Token bucket rate limiting with memory and Redis stores
//
// # Integrations
//
//	github.com/emmydush/businessos/integration/database/pg    - pgx pool with retry, goose migrations and health checks
//	github.com/emmydush/businessos/integration/database/redis - go-redis client with retry and health checks
//	github.com/emmydush/businessos/integration/storage/s3    - S3 attachment storage
//
// # Service
//
//	github.com/emmydush/businessos/app/formd  - Form catalog, submission pipeline and HTTP routes
//	github.com/emmydush/businessos/cmd/formd  - formd binary
//
// # Quick Start
//
//	schema := form.Schema{
//		{Name: "email", Rule: form.Rule{Required: true, Label: "Email", Type: form.Email{}}},
//		{Name: "password", Rule: form.Rule{Required: true, Label: "Password", Type: form.Password{}}},
//	}
//
//	f := form.New(form.Values{"email": "", "password": ""}, schema)
//	f.HandleChange(form.ChangeEvent{Name: "email", Value: "jane@shop.rw"})
//
//	err := f.Submit(ctx, func(ctx context.Context, values form.Values) error {
//		return api.CreateAccount(ctx, values)
//	})
//	var serr *form.SubmitError
//	if errors.As(err, &serr) {
//		fmt.Println(serr.FirstInvalid) // "password"
//	}
package businessos
