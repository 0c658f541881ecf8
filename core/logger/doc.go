// Package logger builds slog loggers and provides nil-safe attribute helpers.
//
// # Construction
//
//	log := logger.New(
//		logger.ForEnvironment(cfg.Env, "formd"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//
// Development output is text at debug level; production is JSON at info level.
// Context extractors add request-scoped attributes (such as the request ID) to
// every *Context call.
//
// # Attributes
//
// Helpers return an empty slog.Attr for zero inputs, which slog drops, so
// callers never need nil checks:
//
//	log.ErrorContext(ctx, "submit failed",
//		logger.Form("registration"),
//		logger.Error(err), // nil-safe
//	)
//
// Form-specific helpers: Form, Field, Fields, SubmissionID and Language.
package logger
