package main

import (
	"context"
	"flag"
	"fmt"
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
	"github.com/feral-file/ff-token-gate/internal/api/middleware"
	"github.com/feral-file/ff-token-gate/internal/api/server"
	"github.com/feral-file/ff-token-gate/internal/api/shared/executor"
	"github.com/feral-file/ff-token-gate/internal/config"
	"github.com/feral-file/ff-token-gate/internal/exposure"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/messaging"
	"github.com/feral-file/ff-token-gate/internal/metrics"
	"github.com/feral-file/ff-token-gate/internal/notification"
	"github.com/feral-file/ff-token-gate/internal/notification/telegram"
	"github.com/feral-file/ff-token-gate/internal/profile"
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
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Token Gate API")

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

	// Run-now requests notify like scheduled runs do
	var sink notification.Sink
	if cfg.Telegram.BotToken != "" {
		sink, err = telegram.NewSink(telegram.Config{
			BotToken: cfg.Telegram.BotToken,
			APIURL:   cfg.Telegram.APIURL,
		}, adapter.NewHTTPClient(cfg.Telegram.HTTPTimeout))
		if err != nil {
			logger.FatalCtx(ctx, "Failed to initialize Telegram sink", zap.Error(err))
		}
	}

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
		logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	settingsProvider := settings.NewProvider(dataStore, chainReader, cfg.Ethereum.TargetToken)
	hostname, _ := os.Hostname()
	orchestrator := screening.NewOrchestrator(screening.Config{
		TargetToken:      cfg.Ethereum.TargetToken,
		DefaultInterval:  cfg.Screening.IntervalDefault(),
		WalletTimeout:    cfg.Screening.WalletTimeout,
		LeaseTTL:         cfg.Screening.LeaseTTL,
		LeaderboardSize:  cfg.Screening.LeaderboardSize,
		WorkerPoolSize:   cfg.Worker.WorkerPoolSize,
		WorkerQueueSize:  cfg.Worker.WorkerQueueSize,
		Holder:           "api-" + hostname + ":" + strconv.Itoa(os.Getpid()),
		WebhookTaskQueue: cfg.Temporal.WebhookTaskQueue,
	},
		dataStore,
		exposure.NewCalculator(chainReader),
		chainReader,
		settingsProvider,
		sink,
		publisher,
		temporalOrchestrator,
		metrics.New(registry),
		adapter.NewClock(),
	)

	apiExecutor := executor.NewExecutor(dataStore, orchestrator, profile.NewService(dataStore, cfg.BcryptCost), settingsProvider)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv, err := server.New(serverConfig, apiExecutor, registry)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create API server", zap.Error(err))
	}

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	logger.Info("API server stopped")
}
