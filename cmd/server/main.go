package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/app"
	"portfolio-backend/internal/config"

	"github.com/charmbracelet/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	logger := app.NewLogger(os.Stderr, cfg.App.LogLevel, cfg.App.Environment)

	bootstrap, cleanup, err := app.Bootstrap(cfg, logger)
	if err != nil {
		logger.Fatal("failed to bootstrap app", "err", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("cleanup error", "err", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatal("invalid HTTP port", "err", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "driver", cfg.Database.Driver, "cache", cfg.Cache.Enabled)
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "err", err)
		}
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Error("shutdown error", "err", err)
		}
	}
}
