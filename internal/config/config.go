// Package config loads the server settings from ASTORIA_* environment
// variables. Command line flags override the loaded values in cmd/server.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Saichiiro/astoria-sub001/internal/errors"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ServerConfig holds everything `server` needs to start.
type ServerConfig struct {
	GRPCPort        int           `env:"ASTORIA_GRPC_PORT" envDefault:"50051"`
	RedisAddr       string        `env:"ASTORIA_REDIS_ADDR" envDefault:"localhost:6379"`
	LogLevel        string        `env:"ASTORIA_LOG_LEVEL" envDefault:"info"`
	HiddenStats     []string      `env:"ASTORIA_HIDDEN_STATS" envSeparator:","`
	ShutdownTimeout time.Duration `env:"ASTORIA_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment and validates the result.
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ServerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	if c.ShutdownTimeout <= 0 {
		vb.Field("shutdown_timeout", "must be positive")
	}
	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *ServerConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelInfo
}
