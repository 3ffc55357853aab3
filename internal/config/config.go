package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	Store     StoreConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Invite    InviteConfig
	Analytics AnalyticsConfig
}

// storage backend configuration; the memory backend needs no DSN
type StoreConfig struct {
	Backend string `envconfig:"STORE_BACKEND" default:"memory"`
	DSN     string `envconfig:"DATABASE_URL"`
}

// redis configuration; the analytics cache is disabled when Addr is empty
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// simulated invite email configuration
type InviteConfig struct {
	SendDelay time.Duration `envconfig:"INVITE_SEND_DELAY" default:"1500ms"`
}

type AnalyticsConfig struct {
	CacheTTL time.Duration `envconfig:"ANALYTICS_CACHE_TTL" default:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	switch cfg.Store.Backend {
	case "memory":
	case "postgres":
		if cfg.Store.DSN == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	return &cfg, nil
}
