package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/lottery-manager/internal/api/http"
	"github.com/jekabolt/lottery-manager/internal/expiry"
	"github.com/jekabolt/lottery-manager/internal/lottery"
	"github.com/jekabolt/lottery-manager/internal/notify"
	"github.com/jekabolt/lottery-manager/internal/ratelimit"
	"github.com/jekabolt/lottery-manager/internal/store"
	"github.com/jekabolt/lottery-manager/internal/telemetry"
	"github.com/jekabolt/lottery-manager/log"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

// Config represents the global configuration for the service.
type Config struct {
	Store     string           `mapstructure:"store"`
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Lottery   lottery.Config   `mapstructure:"lottery"`
	Expiry    expiry.Config    `mapstructure:"expiry"`
	Notifier  notify.Config    `mapstructure:"notifier"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
	RateLimit ratelimit.Config `mapstructure:"rate_limit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/lottery-manager")
		v.AddConfigPath("/etc/lottery-manager")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	switch config.Store {
	case StoreMemory, StoreMySQL:
	default:
		return nil, fmt.Errorf("unknown store %q: want %s or %s", config.Store, StoreMemory, StoreMySQL)
	}
	if config.Store == StoreMySQL && config.DB.DSN == "" {
		return nil, fmt.Errorf("mysql store selected but mysql.dsn is empty")
	}

	return &config, nil
}

// dsnFromEnv builds a MySQL DSN from individual MYSQL_* variables.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user, password, database := os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("MYSQL_DATABASE")
	if user == "" || database == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		user, password, host, port, database)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store", StoreMemory)

	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)

	v.SetDefault("http.port", "8081")
	v.SetDefault("http.request_timeout", "30s")

	lc := lottery.DefaultConfig()
	v.SetDefault("lottery.default_response_window_hours", lc.DefaultResponseWindowHours)

	ec := expiry.DefaultConfig()
	v.SetDefault("expiry.worker_interval", ec.WorkerInterval)
	v.SetDefault("expiry.auto_replenish", ec.AutoReplenish)

	nc := notify.DefaultConfig()
	v.SetDefault("notifier.worker_interval", nc.WorkerInterval)
	v.SetDefault("notifier.batch_size", nc.BatchSize)
	v.SetDefault("notifier.concurrency", nc.Concurrency)

	v.SetDefault("telemetry.service_name", "lottery-manager")
	v.SetDefault("telemetry.sample_ratio", 1.0)

	rc := ratelimit.DefaultConfig()
	v.SetDefault("rate_limit.window", rc.Window)
	v.SetDefault("rate_limit.requests_per_window", rc.RequestsPerWindow)
	v.SetDefault("rate_limit.joins_per_window", rc.JoinsPerWindow)
	v.SetDefault("rate_limit.draws_per_window", rc.DrawsPerWindow)
}

// bindEnvVars binds flat environment variable names to config keys
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("store", "STORE")

	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")

	// Lottery
	v.BindEnv("lottery.default_response_window_hours", "LOTTERY_DEFAULT_RESPONSE_WINDOW_HOURS")

	// Expiry sweeper
	v.BindEnv("expiry.worker_interval", "EXPIRY_WORKER_INTERVAL")
	v.BindEnv("expiry.auto_replenish", "EXPIRY_AUTO_REPLENISH")

	// Notifier
	v.BindEnv("notifier.sendgrid_api_key", "NOTIFIER_SENDGRID_API_KEY")
	v.BindEnv("notifier.from_email", "NOTIFIER_FROM_EMAIL")
	v.BindEnv("notifier.from_email_name", "NOTIFIER_FROM_EMAIL_NAME")
	v.BindEnv("notifier.worker_interval", "NOTIFIER_WORKER_INTERVAL")
	v.BindEnv("notifier.batch_size", "NOTIFIER_BATCH_SIZE")
	v.BindEnv("notifier.concurrency", "NOTIFIER_CONCURRENCY")

	// Telemetry
	v.BindEnv("telemetry.enabled", "TELEMETRY_ENABLED")
	v.BindEnv("telemetry.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("telemetry.service_name", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.sample_ratio", "TELEMETRY_SAMPLE_RATIO")

	// Rate limit
	v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	v.BindEnv("rate_limit.requests_per_window", "RATE_LIMIT_REQUESTS_PER_WINDOW")
	v.BindEnv("rate_limit.joins_per_window", "RATE_LIMIT_JOINS_PER_WINDOW")
	v.BindEnv("rate_limit.draws_per_window", "RATE_LIMIT_DRAWS_PER_WINDOW")
}
