package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Identity   IdentityConfig   `mapstructure:"identity" validate:"required"`
	Classifier ClassifierConfig `mapstructure:"classifier" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"required,gt=0"`

	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"required,gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0"`
}

// IdentityConfig contains the fixed identity fields attached to every response.
// They are deployment settings and are never derived from request input.
type IdentityConfig struct {
	UserID     string `mapstructure:"user_id" validate:"required"`
	Email      string `mapstructure:"email" validate:"required,email"`
	RollNumber string `mapstructure:"roll_number" validate:"required"`
}

// ClassifierConfig selects the classifier policies.
type ClassifierConfig struct {
	// SpecialPolicy is "characters" to decompose mixed tokens or "tokens" to keep them whole.
	SpecialPolicy string `mapstructure:"special_policy" validate:"required,oneof=characters tokens"`

	// PoolCase is "upper" to upper-case letters entering the concatenation pool
	// or "preserve" to keep their original case.
	PoolCase string `mapstructure:"pool_case" validate:"required,oneof=upper preserve"`
}
