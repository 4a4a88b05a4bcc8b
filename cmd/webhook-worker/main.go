package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-token-gate/internal/adapter"
	"github.com/feral-file/ff-token-gate/internal/config"
	"github.com/feral-file/ff-token-gate/internal/logger"
	temporal "github.com/feral-file/ff-token-gate/internal/providers/temporal"
	"github.com/feral-file/ff-token-gate/internal/store"
	"github.com/feral-file/ff-token-gate/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

// webhook-worker executes the webhook fan-out workflows started by the screener and the API
func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadWebhookWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags:            map[string]string{"service": "webhook-worker"},
	}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx := context.Background()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	temporalClient, err := temporal.Dial(temporal.ClientConfig{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	}, logger.Default())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, cfg.Temporal.WebhookTaskQueue, worker.Options{
		MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
		WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
		Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
	})

	workflows.Register(w, workflows.NewExecutor(
		store.NewPGStore(db),
		adapter.NewClock(),
		adapter.NewHTTPClient(cfg.HTTPTimeout),
		adapter.NewActivity(),
	))

	logger.InfoCtx(ctx, "Webhook worker polling",
		zap.String("namespace", cfg.Temporal.Namespace),
		zap.String("task_queue", cfg.Temporal.WebhookTaskQueue))

	// Run blocks until SIGINT or SIGTERM and stops the worker gracefully
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.FatalCtx(ctx, "Webhook worker stopped with error", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Webhook worker stopped")
}
