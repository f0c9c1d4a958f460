package signing

import (
	"errors"
	"fmt"
	"time"

	"github.com/kilterboard/jwt-middleware/core"
)

// Signature algorithms
const (
	HS256 = Algorithm("HS256") // HMAC using SHA-256
	HS384 = Algorithm("HS384") // HMAC using SHA-384
	HS512 = Algorithm("HS512") // HMAC using SHA-512
)

// DefaultExpiration is the token lifetime used when none is configured.
const DefaultExpiration = 24 * time.Hour

// Algorithm is an HMAC signature algorithm.
type Algorithm string

var allowedAlgorithms = map[Algorithm]bool{
	HS256: true,
	HS384: true,
	HS512: true,
}

// Config holds the parameters for issuing and verifying tokens.
// A Config is immutable once built and safe to share between goroutines.
type Config struct {
	secret     []byte
	algorithm  Algorithm
	expiration time.Duration
	insecure   bool
}

// New builds a Config around secret. The secret is copied.
func New(secret []byte, opts ...Option) (*Config, error) {
	s := &settings{
		algorithm:  HS256,
		expiration: DefaultExpiration,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return newConfig(secret, s, false)
}

func newConfig(secret []byte, s *settings, insecure bool) (*Config, error) {
	if len(secret) == 0 {
		return nil, core.NewError(core.ConfigurationUnavailable, errors.New("signing secret is empty"))
	}

	return &Config{
		secret:     append([]byte(nil), secret...),
		algorithm:  s.algorithm,
		expiration: s.expiration,
		insecure:   insecure,
	}, nil
}

// Secret returns a copy of the shared secret.
func (c *Config) Secret() []byte {
	return append([]byte(nil), c.secret...)
}

// Algorithm returns the signature algorithm.
func (c *Config) Algorithm() Algorithm {
	return c.algorithm
}

// Expiration returns the lifetime of issued tokens.
func (c *Config) Expiration() time.Duration {
	return c.expiration
}

// Insecure reports whether the config uses the development placeholder secret.
func (c *Config) Insecure() bool {
	return c.insecure
}

// String implements fmt.Stringer without exposing the secret.
func (c *Config) String() string {
	return fmt.Sprintf("signing.Config{algorithm: %s, expiration: %s, insecure: %t}",
		c.algorithm, c.expiration, c.insecure)
}
