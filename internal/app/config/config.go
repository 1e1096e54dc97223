package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	NATS     NATS       `mapstructure:",squash"`
	Vikor    Vikor      `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT" validate:"gt=0,lte=65535"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// NATS is optional. An empty URL disables calculation events.
type NATS struct {
	URL     string `mapstructure:"NATS_URL"`
	Subject string `mapstructure:"NATS_SUBJECT"`
}

type Vikor struct {
	DefaultV        float64       `mapstructure:"VIKOR_DEFAULT_V" validate:"gte=0,lte=1"`
	CacheExpiration time.Duration `mapstructure:"VIKOR_CACHE_EXPIRATION" validate:"gt=0"`
	LockTimeout     time.Duration `mapstructure:"VIKOR_LOCK_TIMEOUT" validate:"gt=0"`
	// RateLimitRPS caps calculate requests per client; 0 disables the limit.
	RateLimitRPS int `mapstructure:"VIKOR_RATE_LIMIT_RPS" validate:"gte=0"`
}
