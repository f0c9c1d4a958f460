package jwtmiddleware

import (
	"github.com/sirupsen/logrus"

	"github.com/kilterboard/jwt-middleware/internal/logging"
)

// NewLogrusLogger returns a Logger backed by a logrus.FieldLogger.
// Key/value pairs become logrus fields; error values are logged by message
// and a trailing value without a key is stored under !BADKEY.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return logging.NewLogrus(l)
}
