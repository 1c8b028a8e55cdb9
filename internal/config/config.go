package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the server and logging settings.
type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
	HTTP      HTTP   `yaml:"http"`
}

// HTTP configures the listener and its timeouts.
type HTTP struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080" validate:"required,numeric"`
	ReadTimeout     time.Duration `yaml:"read-timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle-timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"30s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s" validate:"gt=0"`
}

// Addr returns the listen address for the HTTP server.
func (h HTTP) Addr() string {
	return ":" + h.Port
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the yaml file at path when it exists and the environment
// otherwise. Environment variables override file values either way.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	case path == "" || errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config %s: %w", path, statErr)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}
	return cfg
}
