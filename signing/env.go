package signing

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/kilterboard/jwt-middleware/core"
	"github.com/kilterboard/jwt-middleware/internal/logging"
)

// DefaultSecret is the placeholder used when JWT_SECRET is unset and
// JWT_INSECURE_DEV_MODE is enabled. It must never reach production.
const DefaultSecret = "your-secret-key-change-this-in-production"

type envConfig struct {
	Secret          string `env:"JWT_SECRET"`
	ExpirationHours string `env:"JWT_EXPIRATION_HOURS"`
	InsecureDevMode string `env:"JWT_INSECURE_DEV_MODE"`
}

// LoadEnv loads variables from the given dotenv files (".env" when none are
// given) without overriding variables already set. A missing file is not an
// error.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not load env file %q: %w", name, err)
		}
	}
	return nil
}

// FromEnv builds a Config from the process environment.
//
//   - JWT_SECRET is the shared secret. When it is unset or empty, FromEnv
//     fails with a ConfigurationUnavailable error unless
//     JWT_INSECURE_DEV_MODE is true, in which case DefaultSecret is used,
//     Insecure reports true and a warning is logged.
//   - JWT_EXPIRATION_HOURS is the token lifetime in whole hours. Missing,
//     unparsable or non-positive values fall back to the configured
//     expiration (24 hours by default).
func FromEnv(opts ...Option) (*Config, error) {
	s := &settings{
		algorithm:  HS256,
		expiration: DefaultExpiration,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if len(s.envFile) > 0 {
		if err := LoadEnv(s.envFile...); err != nil {
			return nil, core.NewError(core.ConfigurationUnavailable, err)
		}
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, core.NewError(core.ConfigurationUnavailable, fmt.Errorf("could not parse environment: %w", err))
	}

	if hours, ok := parseHours(ec.ExpirationHours); ok {
		s.expiration = time.Duration(hours) * time.Hour
	}

	if ec.Secret != "" {
		return newConfig([]byte(ec.Secret), s, false)
	}

	if !parseFlag(ec.InsecureDevMode) {
		return nil, core.NewError(core.ConfigurationUnavailable,
			errors.New("JWT_SECRET is not set (set JWT_INSECURE_DEV_MODE=true to use the development placeholder)"))
	}

	logger := s.logger
	if logger == nil {
		logger = logging.Default()
	}
	logger.Warn("JWT_SECRET is not set, using the insecure development placeholder secret",
		"algorithm", string(s.algorithm),
		"expiration", s.expiration)
	return newConfig([]byte(DefaultSecret), s, true)
}

func parseHours(value string) (int64, bool) {
	hours, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || hours <= 0 {
		return 0, false
	}
	// Beyond this the duration overflows.
	if hours > int64(1<<63-1)/int64(time.Hour) {
		return 0, false
	}
	return hours, true
}

func parseFlag(value string) bool {
	enabled, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && enabled
}
