package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// RedisConfig holds the optional Redis cache settings. Caching is disabled
// when no address is configured.
type RedisConfig struct {
	Addr          string        `env:"REDIS_ADDR"`
	Password      string        `env:"REDIS_PASSWORD"`
	Database      int           `env:"REDIS_DB" envDefault:"0"`
	MovieCacheTTL time.Duration `env:"MOVIE_CACHE_TTL" envDefault:"5m"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// CatalogConfig holds all configuration for the catalog module.
type CatalogConfig struct {
	MongoDBURI   string `env:"MONGODB_URI"`
	DatabaseName string `env:"MONGODB_DATABASE" envDefault:"movie_rental"`
	Redis        RedisConfig
}

// LoadConfig loads configuration from environment variables and applies
// defaults.
func LoadConfig() (*CatalogConfig, error) {
	cfg := &CatalogConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load catalog configuration from environment: " + err.Error())
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, errors.New("failed to load redis configuration from environment: " + err.Error())
	}

	if cfg.MongoDBURI == "" {
		return nil, errors.New("MONGODB_URI environment variable is not set")
	}
	if cfg.Redis.MovieCacheTTL <= 0 {
		cfg.Redis.MovieCacheTTL = 5 * time.Minute
	}

	return cfg, nil
}
