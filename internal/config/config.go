package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port              int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel          string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains the PostgreSQL connection and pool settings.
type DatabaseConfig struct {
	URL               string        `mapstructure:"url" validate:"required,url"`
	MaxConns          int32         `mapstructure:"max_conns" validate:"gt=0"`
	MinConns          int32         `mapstructure:"min_conns" validate:"gte=0,ltefield=MaxConns"`
	MaxConnLifetime   time.Duration `mapstructure:"max_conn_lifetime" validate:"gt=0"`
	MaxConnIdleTime   time.Duration `mapstructure:"max_conn_idle_time" validate:"gt=0"`
	HealthCheckPeriod time.Duration `mapstructure:"health_check_period" validate:"gt=0"`
	MigrateOnStart    bool          `mapstructure:"migrate_on_start"`

	// ConnectAttempts and ConnectBackoff control how often the initial
	// connection is retried, with exponential backoff, before giving up.
	ConnectAttempts uint64        `mapstructure:"connect_attempts" validate:"gt=0"`
	ConnectBackoff  time.Duration `mapstructure:"connect_backoff" validate:"gt=0"`
}
