package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/Fylinde/brand-service/pkg/config"
	"github.com/Fylinde/brand-service/pkg/database"
)

// Config holds all configuration for the brand service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"BRAND_HTTP_PORT" envDefault:"8080"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"ecommerce"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"ecommerce_secret"`
	PostgresDB   string `env:"BRAND_DB_NAME" envDefault:"brand_db"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	DBMaxConns   int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns   int32  `env:"DB_MIN_CONNS" envDefault:"2"`

	// Kafka
	KafkaBrokers     []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	PublishTimeoutMS int      `env:"PUBLISH_TIMEOUT_MS" envDefault:"5000"`

	// Redis
	RedisHost       string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort       int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword   string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds int    `env:"BRAND_CACHE_TTL_SECONDS" envDefault:"300"`

	// Listing
	ListDefaultLimit int `env:"LIST_DEFAULT_LIMIT" envDefault:"10"`
	ListMaxLimit     int `env:"LIST_MAX_LIMIT" envDefault:"100"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load brand config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS is required")
	}
	if cfg.ListDefaultLimit < 1 {
		return nil, fmt.Errorf("invalid LIST_DEFAULT_LIMIT: %d", cfg.ListDefaultLimit)
	}
	if cfg.ListMaxLimit < cfg.ListDefaultLimit {
		return nil, fmt.Errorf("LIST_MAX_LIMIT (%d) must not be below LIST_DEFAULT_LIMIT (%d)", cfg.ListMaxLimit, cfg.ListDefaultLimit)
	}

	return cfg, nil
}

// Postgres returns the database connection configuration.
func (c *Config) Postgres() database.PostgresConfig {
	return database.PostgresConfig{
		Host:     c.PostgresHost,
		Port:     c.PostgresPort,
		User:     c.PostgresUser,
		Password: c.PostgresPass,
		DBName:   c.PostgresDB,
		SSLMode:  c.PostgresSSL,
		MaxConns: c.DBMaxConns,
		MinConns: c.DBMinConns,
	}
}

// Redis returns the cache connection configuration.
func (c *Config) Redis() database.RedisConfig {
	return database.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}

// CacheTTL returns the brand cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// PublishTimeout returns the Kafka publish timeout as a duration.
func (c *Config) PublishTimeout() time.Duration {
	return time.Duration(c.PublishTimeoutMS) * time.Millisecond
}
