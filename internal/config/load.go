package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "COSMIC"

// Default values applied before any file or environment source.
const (
	DefaultPort         = 5555
	DefaultLogLevel     = "info"
	DefaultDatabaseURL  = "sqlite://app.db"
	DefaultMaxOpenConns = 10
	DefaultServiceName  = "cosmic-api"
)

var dbURLSchemes = []string{"sqlite://", "file:", "postgres://", "postgresql://"}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// DB_URI is honored as an alias for COSMIC_DATABASE_URL.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.metrics_enabled", true)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.service_name", DefaultServiceName)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DB_URI"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("dburl", validateDatabaseURL); err != nil {
		return fmt.Errorf("failed to register dburl validation: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func validateDatabaseURL(fl validator.FieldLevel) bool {
	url := strings.ToLower(fl.Field().String())
	for _, scheme := range dbURLSchemes {
		if strings.HasPrefix(url, scheme) && len(url) > len(scheme) {
			return true
		}
	}
	return false
}
