package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// MaxBodyBytes caps accumulated request body size; zero means unlimited.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"gte=0"`

	// BodyChunkBytes is the read size used when assembling request bodies.
	BodyChunkBytes int `mapstructure:"body_chunk_bytes" validate:"required,gt=0"`

	// ShutdownTimeoutSeconds bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}
