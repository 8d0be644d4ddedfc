package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "BFHL"

// Default values applied before any file or environment source.
const (
	DefaultPort              = 5000
	DefaultLogLevel          = "info"
	DefaultMaxBodyBytes      = 1 << 20
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second

	DefaultUserID     = "john_doe_17091999"
	DefaultEmail      = "john@xyz.com"
	DefaultRollNumber = "ABCD123"

	DefaultSpecialPolicy = "characters"
	DefaultPoolCase      = "upper"
)

// configFileEnv names the variable that points Load at an explicit config file.
const configFileEnv = EnvPrefix + "_CONFIG_FILE"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory, if present, is loaded into the
// environment first without overriding variables that are already set.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	v := viper.New()
	setDefaults(v)

	// Configure the config file source
	v.SetConfigType("yaml")
	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnvs(v); err != nil {
		return nil, err
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

// Validate checks a Config against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// setDefaults registers every default value with viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("server.read_header_timeout", DefaultReadHeaderTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("identity.user_id", DefaultUserID)
	v.SetDefault("identity.email", DefaultEmail)
	v.SetDefault("identity.roll_number", DefaultRollNumber)

	v.SetDefault("classifier.special_policy", DefaultSpecialPolicy)
	v.SetDefault("classifier.pool_case", DefaultPoolCase)
}

// bindEnvs binds keys explicitly so Unmarshal sees them even without a
// config file. The listening port also honours the conventional PORT variable.
func bindEnvs(v *viper.Viper) error {
	bindings := []struct {
		key     string
		envVars []string
	}{
		{"server.port", []string{"BFHL_SERVER_PORT", "PORT"}},
		{"server.log_level", []string{"BFHL_SERVER_LOG_LEVEL"}},
		{"server.max_body_bytes", []string{"BFHL_SERVER_MAX_BODY_BYTES"}},
		{"server.read_header_timeout", []string{"BFHL_SERVER_READ_HEADER_TIMEOUT"}},
		{"server.shutdown_timeout", []string{"BFHL_SERVER_SHUTDOWN_TIMEOUT"}},
		{"identity.user_id", []string{"BFHL_IDENTITY_USER_ID"}},
		{"identity.email", []string{"BFHL_IDENTITY_EMAIL"}},
		{"identity.roll_number", []string{"BFHL_IDENTITY_ROLL_NUMBER"}},
		{"classifier.special_policy", []string{"BFHL_CLASSIFIER_SPECIAL_POLICY"}},
		{"classifier.pool_case", []string{"BFHL_CLASSIFIER_POOL_CASE"}},
	}

	for _, b := range bindings {
		input := append([]string{b.key}, b.envVars...)
		if err := v.BindEnv(input...); err != nil {
			return fmt.Errorf("error binding environment variable %s: %w", b.envVars[0], err)
		}
	}
	return nil
}
