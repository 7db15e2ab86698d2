package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somchakravarty/som-dev/internal/config"
	"github.com/somchakravarty/som-dev/internal/logging"
	"github.com/somchakravarty/som-dev/internal/metrics"
	"github.com/somchakravarty/som-dev/internal/store"
	"github.com/somchakravarty/som-dev/internal/tracing"
	"github.com/somchakravarty/som-dev/internal/travelmap"
)

const (
	serviceName    = "som-dev"
	serviceVersion = "1.0.0"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "som-dev: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	logger, level, err := logging.New(serviceName, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()

	loader.Watch(func(next *config.Config) {
		if err := logging.SetLevel(level, next.Log.Level); err != nil {
			logger.Warn("ignoring log level from reloaded config", zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("log_level", next.Log.Level))
	}, func(err error) {
		logger.Warn("config reload rejected", zap.Error(err))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		Enabled:        cfg.Tracing.Enabled,
		Endpoint:       cfg.Tracing.Endpoint,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: serviceVersion,
	})
	if err != nil {
		logger.Error("failed to set up tracing", zap.Error(err))
		return err
	}

	st, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open store", zap.String("path", cfg.Database.Path), zap.Error(err))
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	srv, err := newServer(cfg, serverDeps{
		logger:  logger,
		store:   st,
		metrics: metrics.NewWithRuntime(),
		tracer:  tp,
		atlas:   travelmap.DefaultAtlas(),
		mailer:  newSMTPMailer(cfg.SMTP),
	})
	if err != nil {
		st.Close()
		return err
	}

	go srv.cleanupLoop(ctx, time.Hour)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      srv.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", httpServer.Addr), zap.String("mode", cfg.Server.Mode))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
			st.Close()
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	srv.wait()
	if err := st.Close(); err != nil {
		logger.Error("close store", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("flush traces", zap.Error(err))
	}
	logger.Info("server stopped")
	return nil
}
