package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/core/server"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.DefaultConfig())

		require.NoError(t, err)
		assert.Equal(t, ":8080", srv.Addr())
	})

	t.Run("options override config", func(t *testing.T) {
		cfg := server.Config{
			Addr:            ":9000",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		}

		srv, err := server.NewFromConfig(cfg, server.WithShutdownTimeout(time.Second))

		require.NoError(t, err)
		assert.Equal(t, ":9000", srv.Addr())
	})

	t.Run("missing address", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{ReadTimeout: time.Second})

		require.ErrorIs(t, err, server.ErrMissingAddress)
		assert.Nil(t, srv)
	})

	t.Run("tls needs both files", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{Addr: ":8080", TLSCertFile: "cert.pem"})

		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("unreadable tls files", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{
			Addr:        ":8080",
			TLSCertFile: "/nonexistent/cert.pem",
			TLSKeyFile:  "/nonexistent/key.pem",
		})

		require.ErrorIs(t, err, server.ErrLoadTLS)
		assert.Nil(t, srv)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultConfig()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, server.DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, server.DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, server.DefaultIdleTimeout, cfg.IdleTimeout)
	assert.Equal(t, server.DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, server.DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
	assert.Empty(t, cfg.TLSCertFile)
}
