package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/event"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
	"github.com/spf13/viper"
)

// MustInitConfig reads configFile (dotenv format) when present, lets
// environment variables override it and panics when the result is invalid.
func MustInitConfig(configFile string) Config {
	cfg, err := load(configFile)
	if err != nil {
		slog.Error("cannot load config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

func load(configFile string) (Config, error) {
	var cfg Config

	vpr := viper.New()
	setDefaults(vpr)
	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	// AutomaticEnv only covers keys viper already knows about; keys without
	// a default must be bound for Unmarshal to see them.
	bindEnv(vpr, reflect.TypeOf(cfg))

	if err := vpr.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("LOG_LEVEL", "info")
	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "30s")
	vpr.SetDefault("VIKOR_DEFAULT_V", vikor.DefaultV)
	vpr.SetDefault("VIKOR_CACHE_EXPIRATION", "10m")
	vpr.SetDefault("VIKOR_LOCK_TIMEOUT", "5s")
	vpr.SetDefault("NATS_SUBJECT", event.SubjectCalculationCompleted)
}

// bindEnv binds every mapstructure key of t, descending into squashed
// sections.
func bindEnv(vpr *viper.Viper, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		key, opts, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if opts == "squash" && field.Type.Kind() == reflect.Struct {
			bindEnv(vpr, field.Type)
			continue
		}

		if key != "" && key != "-" {
			_ = vpr.BindEnv(key)
		}
	}
}
