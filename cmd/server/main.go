package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Simplici0/copcalc/internal/config"
	"github.com/Simplici0/copcalc/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.ErrorLevel).Fatalw("failed to load config", "err", err)
	}

	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	srv := &server{log: log}
	handler, err := srv.routes()
	if err != nil {
		log.Fatalw("failed to build routes", "err", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("listening", "addr", httpServer.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

func newLogger(cfg config.Config) *logger.Logger {
	if cfg.IsDev() {
		return logger.NewDevelopment(cfg.LogLevel)
	}
	return logger.New(cfg.LogLevel)
}
