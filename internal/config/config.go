package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// EthereumConfig holds chain access configuration
type EthereumConfig struct {
	RPCURL      string  `mapstructure:"rpc_url"`
	TargetToken string  `mapstructure:"target_token"`
	RateLimit   float64 `mapstructure:"rate_limit"` // calls per second, 0 disables throttling
	RateBurst   int     `mapstructure:"rate_burst"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	Enabled                            bool    `mapstructure:"enabled"`
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	WebhookTaskQueue                   string  `mapstructure:"webhook_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
}

// TelegramConfig holds Telegram Bot API configuration
type TelegramConfig struct {
	BotToken    string        `mapstructure:"bot_token"`
	APIURL      string        `mapstructure:"api_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// ScreeningConfig holds screening job configuration
type ScreeningConfig struct {
	// CheckInterval is how often the service loop asks the interval gate whether a run is due
	CheckInterval        time.Duration `mapstructure:"check_interval"`
	DefaultIntervalHours int           `mapstructure:"default_interval_hours"`
	WalletTimeout        time.Duration `mapstructure:"wallet_timeout"`
	LeaseTTL             time.Duration `mapstructure:"lease_ttl"`
	LeaderboardSize      int           `mapstructure:"leaderboard_size"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// AllowedOrigins lists CORS origins; empty allows any origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// MetricsConfig holds the prometheus listener configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// EngineConfig groups what a process needs to execute screening runs
type EngineConfig struct {
	Ethereum  EthereumConfig  `mapstructure:"ethereum"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Temporal  TemporalConfig  `mapstructure:"temporal"`
	Screening ScreeningConfig `mapstructure:"screening"`
	Worker    WorkerConfig    `mapstructure:"worker"`
}

// ScreenerConfig holds configuration for the screener service
type ScreenerConfig struct {
	BaseConfig   `mapstructure:",squash"`
	EngineConfig `mapstructure:",squash"`
	Database     DatabaseConfig `mapstructure:"database"`
	Metrics      MetricsConfig  `mapstructure:"metrics"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	EngineConfig `mapstructure:",squash"`
	Server       ServerConfig   `mapstructure:"server"`
	Database     DatabaseConfig `mapstructure:"database"`
	Auth         AuthConfig     `mapstructure:"auth"`
	// BcryptCost is the work factor for profile secret hashes, zero meaning bcrypt's default
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// WebhookWorkerConfig holds configuration for the webhook delivery worker
type WebhookWorkerConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig `mapstructure:"database"`
	Temporal    TemporalConfig `mapstructure:"temporal"`
	HTTPTimeout time.Duration  `mapstructure:"http_timeout"`
}

// LoadScreenerConfig loads configuration for the screener service
func LoadScreenerConfig(configFile string, envPath string) (*ScreenerConfig, error) {
	v := configureViper("screener", configFile, envPath)

	setDatabaseDefaults(v)
	setEngineDefaults(v)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.address", ":9090")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg ScreenerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}
	if err := cfg.EngineConfig.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	// Synchronous run-now requests hold the connection for a whole run
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setEngineDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}
	if err := cfg.EngineConfig.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWebhookWorkerConfig loads configuration for the webhook delivery worker
func LoadWebhookWorkerConfig(configFile string, envPath string) (*WebhookWorkerConfig, error) {
	v := configureViper("webhook-worker", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("temporal.enabled", true)
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.webhook_task_queue", "token-gate-webhooks")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 20)
	v.SetDefault("temporal.worker_activities_per_second", 20)
	v.SetDefault("http_timeout", "10s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WebhookWorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setEngineDefaults(v *viper.Viper) {
	v.SetDefault("ethereum.rate_limit", 20)
	v.SetDefault("ethereum.rate_burst", 20)
	v.SetDefault("telegram.api_url", "https://api.telegram.org")
	v.SetDefault("telegram.http_timeout", "10s")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.stream_name", "TOKEN_GATE")
	v.SetDefault("nats.subject_prefix", "tokengate")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("temporal.enabled", false)
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.webhook_task_queue", "token-gate-webhooks")
	v.SetDefault("screening.check_interval", "5m")
	v.SetDefault("screening.default_interval_hours", 24)
	v.SetDefault("screening.wallet_timeout", "30s")
	v.SetDefault("screening.lease_ttl", "30m")
	v.SetDefault("screening.leaderboard_size", domain.DEFAULT_LEADERBOARD_SIZE)
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 1024)
}

// readConfig reads the config file, falling back to environment variables when it is missing
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

func (c *EngineConfig) validate() error {
	if c.Ethereum.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if !domain.ValidAddress(c.Ethereum.TargetToken) {
		return fmt.Errorf("ethereum.target_token is not a valid address: %q", c.Ethereum.TargetToken)
	}
	if c.Screening.DefaultIntervalHours <= 0 {
		return errors.New("screening.default_interval_hours must be positive")
	}
	if c.Screening.WalletTimeout <= 0 {
		return errors.New("screening.wallet_timeout must be positive")
	}
	if c.Worker.WorkerPoolSize <= 0 {
		return errors.New("worker.pool_size must be positive")
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		return errors.New("nats.url is required when nats is enabled")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("TOKEN_GATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars binds every key so env-only deployments unmarshal into the structs
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"http_timeout",
		"bcrypt_cost",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.enabled",
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.target_token",
		"ethereum.rate_limit",
		"ethereum.rate_burst",
		// Temporal
		"temporal.enabled",
		"temporal.host_port",
		"temporal.namespace",
		"temporal.webhook_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		// Telegram
		"telegram.bot_token",
		"telegram.api_url",
		"telegram.http_timeout",
		// Screening
		"screening.check_interval",
		"screening.default_interval_hours",
		"screening.wallet_timeout",
		"screening.lease_ttl",
		"screening.leaderboard_size",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Worker pool
		"worker.pool_size",
		"worker.queue_size",
		// Metrics
		"metrics.enabled",
		"metrics.address",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// IntervalDefault returns the fallback screening interval as a duration
func (c ScreeningConfig) IntervalDefault() time.Duration {
	return time.Duration(c.DefaultIntervalHours) * time.Hour
}
