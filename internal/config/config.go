package config

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" validate:"required"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Port           int    `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	LogLevel       string `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

// DatabaseConfig defines the relational store connection.
// URL accepts sqlite://<path>, file:<path>, postgres:// and postgresql:// forms.
type DatabaseConfig struct {
	URL          string `mapstructure:"url"            validate:"required,dburl"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
}

// TelemetryConfig defines opt-in trace export.
// Tracing is disabled when OTLPEndpoint is empty.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint" validate:"omitempty,url"`
	ServiceName  string `mapstructure:"service_name"  validate:"required"`
}
