package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultPort            = 3040
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds the process settings read from the environment.
type Config struct {
	Port            int           `validate:"min=1,max=65535"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogFile         string
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

var validate = validator.New()

// Load reads an optional .env file from the working directory and then builds
// the configuration from the process environment. Variables already present in
// the environment take precedence over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, applying defaults for unset keys.
func FromEnv(lookup LookupFunc) (*Config, error) {
	cfg := &Config{
		Port:            DefaultPort,
		LogLevel:        DefaultLogLevel,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %w", err)
		}
		cfg.Port = port
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT value: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
