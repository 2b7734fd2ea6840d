package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/go-fintech-services/internal/config"
	"github.com/go-fintech-services/internal/infrastructure/notifier"
	"github.com/go-fintech-services/internal/infrastructure/postgres"
	"github.com/go-fintech-services/internal/infrastructure/redis"
	"github.com/go-fintech-services/internal/logging"
	"github.com/go-fintech-services/internal/metrics"
	transporthttp "github.com/go-fintech-services/internal/transport/http"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Amounts serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Error("postgres connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		logger.Error("postgres bootstrap failed", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(cfg.Redis)
	defer redisClient.Close()
	cache := redis.NewRecordCache(redisClient, cfg.CacheTTL)

	m := metrics.New(metrics.TransactionNames)

	sender := notifier.NewHTTPSender(cfg.NotificationServiceURL, cfg.NotifyTimeout)
	dispatcher := notifier.NewDispatcher(sender, logger, cfg.NotifyTimeout, cfg.NotifyQueueSize)

	router := transporthttp.NewTransactionRouter(cfg, &transporthttp.TransactionDeps{
		Store:       postgres.NewTransactionRepo(pool),
		Cache:       cache,
		Dispatcher:  dispatcher,
		Metrics:     m,
		Logger:      logger,
		DBPinger:    pool,
		CachePinger: cache,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("transaction service starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	// Drain queued notification tasks before exiting.
	dispatcher.Close()
	logger.Info("stopped")
}
