package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Supported store drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// Config holds application level configuration loaded from an optional YAML
// file and environment variables. Environment values win.
type Config struct {
	ServerPort  string `yaml:"server_port" env:"SERVER_PORT"`
	StoreDriver string `yaml:"store_driver" env:"STORE_DRIVER"`
	MySQLDSN    string `yaml:"mysql_dsn" env:"MYSQL_DSN"`
	SQLitePath  string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	MongoURI    string `yaml:"mongo_uri" env:"MONGO_URI"`
	MongoDB     string `yaml:"mongo_database" env:"MONGO_DATABASE"`
	ResetDB     bool   `yaml:"reset_db" env:"RESET_DB"`
	RedisAddr   string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisDB     int    `yaml:"redis_db" env:"REDIS_DB"`
	RedisPass   string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	JWTSecret   string `yaml:"jwt_secret" env:"JWT_SECRET"`
	SwaggerHost string `yaml:"swagger_host" env:"SWAGGER_HOST"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
	OTelURL     string `yaml:"otel_endpoint" env:"OTEL_ENDPOINT"`

	RequestTimeout         time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`
	AggregationConcurrency int           `yaml:"aggregation_concurrency" env:"AGGREGATION_CONCURRENCY"`

	Store StoreProject `yaml:"store" envPrefix:"STORE_"`
}

// StoreProject names the hosted project the dashboard administers.
type StoreProject struct {
	APIKey     string `yaml:"api_key" env:"API_KEY"`
	ProjectID  string `yaml:"project_id" env:"PROJECT_ID"`
	AuthDomain string `yaml:"auth_domain" env:"AUTH_DOMAIN"`
	Bucket     string `yaml:"bucket" env:"BUCKET"`
	SenderID   string `yaml:"sender_id" env:"SENDER_ID"`
	AppID      string `yaml:"app_id" env:"APP_ID"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		ServerPort:             "8080",
		StoreDriver:            DriverMySQL,
		MySQLDSN:               "user:password@tcp(localhost:3306)/foodadmin?charset=utf8mb4&parseTime=True&loc=Local",
		SQLitePath:             "foodadmin.db",
		MongoURI:               "mongodb://localhost:27017",
		RedisAddr:              "localhost:6379",
		JWTSecret:              "change-me",
		LogLevel:               "info",
		RequestTimeout:         10 * time.Second,
		AggregationConcurrency: 8,
	}
}

// Load builds Config from defaults, the YAML file named by CONFIG_FILE (if
// any) and the environment.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if cfg.MongoDB == "" {
		cfg.MongoDB = cfg.Store.ProjectID
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "foodadmin"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMySQL, DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unsupported store driver %q", c.StoreDriver)
	}
	if c.AggregationConcurrency < 1 {
		return fmt.Errorf("aggregation concurrency must be positive, got %d", c.AggregationConcurrency)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}
