// Package config loads the server settings shared by the binaries.
package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/kilterboard/jwt-middleware/signing"
)

// Server holds the HTTP server settings. Token signing settings are loaded
// separately by signing.FromEnv.
type Server struct {
	Host     string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port     int    `env:"SERVER_PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// RedisURL selects the Redis user store. Empty means in-memory.
	RedisURL string `env:"REDIS_URL"`
}

// Load reads the .env file, if any, and parses the server settings from
// the environment.
func Load() (*Server, error) {
	if err := signing.LoadEnv(); err != nil {
		return nil, err
	}

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse server config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT out of range: %d", cfg.Port)
	}

	return &cfg, nil
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// NewLogger returns a JSON logrus logger at the configured level.
func (s *Server) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(level)
	return logger, nil
}
