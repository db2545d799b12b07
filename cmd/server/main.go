// Upload intake server: config, optional Redis, router, graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/logging"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/redis"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/server"
)

func main() {
	config.LoadDotEnvUp(8)

	logger := logging.New(os.Getenv("APP_ENV") == "local")
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var deps server.Deps
	rdb, err := redis.New(ctx, cfg.Redis)
	switch {
	case errors.Is(err, redis.ErrDisabled):
		logger.Info("redis disabled, rate limiting off")
	case err != nil:
		logger.Fatal("redis init failed", zap.Error(err))
	default:
		deps.Redis = rdb
		defer func() { _ = rdb.Close() }()
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Fatal("upload dir", zap.String("dir", cfg.Upload.Dir), zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.NewRouter(*cfg, deps, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", addr), zap.String("upload_dir", cfg.Upload.Dir))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("http server stopped")
}
