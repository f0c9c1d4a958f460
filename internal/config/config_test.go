package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetServerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SERVER_HOST", "SERVER_PORT", "LOG_LEVEL", "REDIS_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetServerEnv(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, &Server{Host: "0.0.0.0", Port: 3000, LogLevel: "info"}, cfg)
		assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	})

	t.Run("from environment", func(t *testing.T) {
		unsetServerEnv(t)
		t.Setenv("SERVER_HOST", "127.0.0.1")
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
		assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	})

	t.Run("invalid port", func(t *testing.T) {
		unsetServerEnv(t)
		t.Setenv("SERVER_PORT", "not-a-number")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		unsetServerEnv(t)
		t.Setenv("SERVER_PORT", "70000")

		_, err := Load()
		assert.EqualError(t, err, "SERVER_PORT out of range: 70000")
	})
}

func TestServer_NewLogger(t *testing.T) {
	logger, err := (&Server{LogLevel: "warn"}).NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = (&Server{LogLevel: "loud"}).NewLogger()
	assert.Error(t, err)
}
