package signing

import (
	"errors"
	"fmt"
	"time"

	"github.com/kilterboard/jwt-middleware/core"
)

// Option configures how a Config is built.
// Options return errors to enable validation during construction.
type Option func(*settings) error

type settings struct {
	algorithm  Algorithm
	expiration time.Duration
	logger     core.Logger
	envFile    []string
}

// WithAlgorithm sets the signature algorithm.
//
// Default: HS256. Supported algorithms: HS256, HS384, HS512.
func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *settings) error {
		if !allowedAlgorithms[algorithm] {
			return fmt.Errorf("unsupported signature algorithm: %s", algorithm)
		}
		s.algorithm = algorithm
		return nil
	}
}

// WithExpiration sets the lifetime of issued tokens.
//
// Default: 24 hours. With FromEnv, JWT_EXPIRATION_HOURS takes precedence
// when it holds a positive number.
func WithExpiration(d time.Duration) Option {
	return func(s *settings) error {
		if d <= 0 {
			return errors.New("expiration must be positive")
		}
		s.expiration = d
		return nil
	}
}

// WithLogger sets the logger FromEnv reports the insecure placeholder to.
//
// Default: logrus' standard logger.
func WithLogger(logger core.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithEnvFile makes FromEnv load the given dotenv files first. Missing
// files are ignored. Variables already set in the process are kept.
func WithEnvFile(filenames ...string) Option {
	return func(s *settings) error {
		if len(filenames) == 0 {
			return errors.New("at least one env file is required")
		}
		s.envFile = filenames
		return nil
	}
}
