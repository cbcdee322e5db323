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

	"content-pipeline/infrastructure/cache"
	"content-pipeline/infrastructure/configuration"
	"content-pipeline/infrastructure/logger"
	"content-pipeline/infrastructure/persistence"
	httpHandler "content-pipeline/interfaces/http"
	"content-pipeline/server"
	"content-pipeline/usecase"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	cfg, err := configuration.Load("config.env", ".env")
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Invalid configuration")
	}
	if err := logger.Configure(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Invalid logger settings - keeping defaults")
	}

	db, err := persistence.NewSQLiteDB(cfg.Database)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Database initialization failed")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Database handle unavailable")
	}
	defer sqlDB.Close()

	if err := persistence.InitializeStorage(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Storage initialization failed")
	}
	logger.GetLogger().WithField("path", cfg.Database.Path).Info("Storage initialized.")
	if cfg.App.InitOnly {
		return
	}

	redisClient, err := cache.NewCache(ctx, cfg.RedisClient)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without trend cache")
		redisClient = nil
	}
	if redisClient != nil {
		defer func(client *redis.Client) { _ = client.Close() }(redisClient)
	}

	pipelineUsecase := usecase.NewPipelineUsecase(
		persistence.NewAccountRepository(db),
		persistence.NewTrendRepository(db),
		persistence.NewVideoRepository(db),
		persistence.NewAnalyticsRepository(db, sqlDB),
		persistence.NewTrendingSoundRepository(db),
		cache.NewTrendCache(redisClient, cfg.TrendCache.TTL),
	)

	router := server.InitiateRouter(
		httpHandler.NewPipelineHandler(pipelineUsecase),
		httpHandler.NewHealthHandler(sqlDB),
		cfg.App.SecretKey,
	)

	g, gctx := errgroup.WithContext(ctx)

	logger.GetLogger().WithField("port", cfg.App.Port).Info("Starting application")
	httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-gctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
