package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/go-redis/redis/v8"

	"hypermedia-record-api/config"
	"hypermedia-record-api/internal/httpserver"
	"hypermedia-record-api/internal/record/repository"
	cachedRepo "hypermedia-record-api/internal/record/repository/cached"
	fileRepo "hypermedia-record-api/internal/record/repository/file"
	redisRepo "hypermedia-record-api/internal/record/repository/redis"
	"hypermedia-record-api/pkg/log"
)

// @title       Hypermedia Record API
// @description Generic record CRUD with negotiated hypermedia representations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting hypermedia record API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage backend: %s", cfg.Storage.Backend)

	// 3. Record store
	var store repository.Store
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = redisRepo.New(client, logger)
	default:
		store = fileRepo.New(cfg.Storage.DataDir, logger)
	}

	if cfg.Cache.Enabled {
		store = cachedRepo.New(store, cfg.Cache.Size, logger)
		logger.Infof(ctx, "Record cache enabled (size %d)", cfg.Cache.Size)
	}

	// Best-effort collection bootstrap; an existing collection is fine.
	if err := store.CreateCollection(ctx, cfg.Service.Collection); err != nil {
		logger.Warnf(ctx, "Create collection %q: %v", cfg.Service.Collection, err)
	}

	// 4. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Store:       store,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
