// Package server wraps http.Server with graceful shutdown, production
// timeouts and optional TLS.
//
// A Server binds its listener in Start, so an address of ":0" works and
// Addr reports the port that was actually bound. Run returns a function
// that fits errgroup:
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Canceling the context triggers Shutdown with the configured timeout.
// Cancellation itself is not treated as an error.
//
// # Configuration
//
// Config is loaded from SERVER_* environment variables. TLS is enabled
// when both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are set.
package server
