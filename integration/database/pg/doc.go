// Package pg connects to PostgreSQL through a pgx pool, applies goose
// migrations and classifies common PostgreSQL errors.
//
// # Configuration
//
// Config reads PG_* environment variables. PG_CONN_URL is optional; when it
// is empty Enabled reports false and callers fall back to in-memory storage.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg.Postgres)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg.Postgres, migrations.FS, ".", log); err != nil {
//		return err
//	}
//
// Connect retries RetryAttempts times, RetryInterval apart, and pings the
// pool before returning it. Migrate bridges the pool to database/sql for
// goose and logs through slog.
//
// # Health Checking
//
//	health.Readiness(log, pg.Healthcheck(pool))
//
// # Errors
//
// IsDuplicateKeyError, IsForeignKeyViolationError, IsNotFoundError and
// IsTxClosedError classify driver errors. ConstraintName tells which unique
// index fired.
//
// # Transactions
//
// WithTx stores a pgx.Tx in a context and QuerierFrom picks it up, so
// repository code runs inside the caller's transaction when there is one.
package pg
