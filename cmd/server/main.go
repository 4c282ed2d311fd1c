package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"saudiid/internal/generation"
	generationhandler "saudiid/internal/generation/handler"
	generationmetrics "saudiid/internal/generation/metrics"
	"saudiid/internal/platform/config"
	"saudiid/internal/platform/httpserver"
	"saudiid/internal/platform/logger"
	platformmetrics "saudiid/internal/platform/metrics"
	platformredis "saudiid/internal/platform/redis"
	"saudiid/internal/stats"
	statshandler "saudiid/internal/stats/handler"
	httptransport "saudiid/internal/transport/http"
	"saudiid/internal/verification"
	verificationhandler "saudiid/internal/verification/handler"
	verificationmetrics "saudiid/internal/verification/metrics"
)

// main wires dependencies and owns the server lifecycle. Business logic
// lives in the internal feature packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err.Error())
		os.Exit(1)
	}

	var statsStore stats.Store
	var health httptransport.HealthChecker
	if redisClient != nil {
		statsStore = stats.NewRedisStore(redisClient, config.StatsRetention)
		health = redisClient
		defer redisClient.Close()
		log.Info("using redis stats store")
	} else {
		statsStore = stats.NewMemoryStore()
		log.Info("redis not configured, using in-memory stats store")
	}

	verificationSvc := verification.NewService(log,
		verification.WithMetrics(verificationmetrics.New()),
		verification.WithStats(statsStore),
	)
	generationSvc := generation.NewService(log, cfg.GenerateMaxCount,
		generation.WithMetrics(generationmetrics.New()),
		generation.WithStats(statsStore),
	)

	router := httptransport.NewRouter(log, platformmetrics.New(), health,
		verificationhandler.New(verificationSvc, log, cfg.BatchLimit),
		generationhandler.New(generationSvc, log),
		statshandler.New(statsStore, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting saudiid server", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
