// Seeds the backend with mock data through the exec_sql procedure. The process
// exits 0 whether or not seeding succeeded; the outcome is in the logs.
package main

import (
	"context"
	"embed"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/apiclient"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/db"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/logging"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/seed"
)

// mockData is seeded when neither -file nor SEED_FILE is given.
//
//go:embed mock_data.sql
var mockData embed.FS

const mockDataFile = "mock_data.sql"

func main() {
	config.LoadDotEnvUp(8)

	logger := logging.New(os.Getenv("APP_ENV") == "local")
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", zap.Error(err))
		return
	}

	file := flag.String("file", cfg.Seed.File, "SQL file to execute (default: embedded mock data)")
	flag.Parse()

	ctx := context.Background()

	var exec seed.Executor
	switch cfg.Seed.Driver {
	case config.SeedDriverPostgres:
		pool, err := db.NewPostgres(ctx, cfg.Postgres)
		if err != nil {
			logger.Error("postgres connect failed", zap.Error(err))
			logger.Info(seed.ManualAdvice)
			return
		}
		defer pool.Close()
		exec = seed.NewPostgresExecutor(pool)
	default:
		if err := cfg.API.Validate(); err != nil {
			logger.Error("api config", zap.Error(err))
			return
		}
		exec = seed.NewRESTExecutor(apiclient.New(cfg.API, apiclient.WithLogger(logger)))
	}

	_ = seeder(exec, *file, logger).Run(ctx)
}

func seeder(exec seed.Executor, file string, logger *zap.Logger) *seed.Seeder {
	if file == "" {
		return seed.New(exec, mockData, mockDataFile, logger)
	}
	return seed.FromPath(exec, file, logger)
}
