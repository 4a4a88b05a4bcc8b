package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-token-gate/internal/adapter"
	"github.com/feral-file/ff-token-gate/internal/config"
	"github.com/feral-file/ff-token-gate/internal/exposure"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/messaging"
	"github.com/feral-file/ff-token-gate/internal/metrics"
	"github.com/feral-file/ff-token-gate/internal/notification"
	"github.com/feral-file/ff-token-gate/internal/notification/telegram"
	"github.com/feral-file/ff-token-gate/internal/providers/ethereum"
	"github.com/feral-file/ff-token-gate/internal/providers/jetstream"
	temporal "github.com/feral-file/ff-token-gate/internal/providers/temporal"
	"github.com/feral-file/ff-token-gate/internal/screening"
	"github.com/feral-file/ff-token-gate/internal/settings"
	"github.com/feral-file/ff-token-gate/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Execute a single screening invocation and exit")
	force      = flag.Bool("force", false, "With -once, run even if the screening interval has not elapsed")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadScreenerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "screener",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Token Gate Screener", zap.Bool("once", *once), zap.Bool("force", *force))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to Ethereum
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum", zap.Error(err))
	}
	defer ethClient.Close()
	chainReader := ethereum.NewChainReader(ethClient, ethereum.Config{
		RateLimit: cfg.Ethereum.RateLimit,
		RateBurst: cfg.Ethereum.RateBurst,
	})
	logger.InfoCtx(ctx, "Connected to Ethereum", zap.String("target_token", cfg.Ethereum.TargetToken))

	// Initialize notification sink
	var sink notification.Sink
	if cfg.Telegram.BotToken != "" {
		sink, err = telegram.NewSink(telegram.Config{
			BotToken: cfg.Telegram.BotToken,
			APIURL:   cfg.Telegram.APIURL,
		}, adapter.NewHTTPClient(cfg.Telegram.HTTPTimeout))
		if err != nil {
			logger.FatalCtx(ctx, "Failed to initialize Telegram sink", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "Telegram bot token not configured, run summaries will not be sent")
	}

	// Connect to NATS JetStream for screening events
	var publisher messaging.Publisher
	if cfg.NATS.Enabled {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
	}

	// Connect to Temporal for webhook notifications
	var temporalOrchestrator temporal.TemporalOrchestrator
	if cfg.Temporal.Enabled {
		var temporalClient client.Client
		temporalClient, err = temporal.Dial(temporal.ClientConfig{
			HostPort:  cfg.Temporal.HostPort,
			Namespace: cfg.Temporal.Namespace,
		}, logger.Default())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
		}
		defer temporalClient.Close()
		temporalOrchestrator = temporalClient
		logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))
	}

	// Register metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	screeningMetrics := metrics.New(registry)

	hostname, _ := os.Hostname()
	orchestrator := screening.NewOrchestrator(screening.Config{
		TargetToken:      cfg.Ethereum.TargetToken,
		DefaultInterval:  cfg.Screening.IntervalDefault(),
		WalletTimeout:    cfg.Screening.WalletTimeout,
		LeaseTTL:         cfg.Screening.LeaseTTL,
		LeaderboardSize:  cfg.Screening.LeaderboardSize,
		WorkerPoolSize:   cfg.Worker.WorkerPoolSize,
		WorkerQueueSize:  cfg.Worker.WorkerQueueSize,
		Holder:           hostname + ":" + strconv.Itoa(os.Getpid()),
		WebhookTaskQueue: cfg.Temporal.WebhookTaskQueue,
	},
		dataStore,
		exposure.NewCalculator(chainReader),
		chainReader,
		settings.NewProvider(dataStore, chainReader, cfg.Ethereum.TargetToken),
		sink,
		publisher,
		temporalOrchestrator,
		screeningMetrics,
		adapter.NewClock(),
	)

	if *once {
		result, err := orchestrator.Run(ctx, screening.RunOptions{Force: *force})
		if err != nil {
			logger.FatalCtx(ctx, "Screening run failed", zap.Error(err))
		}
		if result.Skipped {
			logger.InfoCtx(ctx, "Screening run not due")
			return
		}
		logger.InfoCtx(ctx, "Screening run finished",
			zap.String("run_id", result.RunID.String()),
			zap.String("status", string(result.Status)),
			zap.Int("eligible", result.EligibleCount),
		)
		return
	}

	// Serve metrics
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(registry))
		metricsServer = &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
			}
		}()
		logger.InfoCtx(ctx, "Serving metrics", zap.String("address", cfg.Metrics.Address))
	}

	service := screening.NewService(orchestrator, cfg.Screening.CheckInterval, adapter.NewClock())

	// Start the service in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := service.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Let an in-flight run finish before canceling; a run cut short keeps its lease until the TTL expires
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := service.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err)
		}
	}

	logger.Info("Screener stopped")
}
