// Command formd serves the BusinessOS form catalog and validates, sanitizes
// and stores submissions.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/emmydush/businessos/app/formd"
	"github.com/emmydush/businessos/core/config"
	"github.com/emmydush/businessos/core/logger"
	"github.com/emmydush/businessos/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg formd.Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(
		logger.ForEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(middleware.RequestIDExtractor()),
	)
	logger.SetAsDefault(log)

	app, err := formd.New(ctx, cfg, formd.WithLogger(log))
	if err != nil {
		log.Error("Failed to initialize formd", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Error("Failed to run formd", logger.Component("app"), logger.Error(err))
		app.Close()
		os.Exit(1)
	}

	log.Info("Application stopped")
}
