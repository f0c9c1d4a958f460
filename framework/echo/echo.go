package jwtecho

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kilterboard/jwt-middleware/core"
)

// Default keys the middleware stores its results under in the echo.Context.
const (
	DefaultClaimsKey   = "jwt"
	DefaultIdentityKey = "jwt_identity"
)

var (
	ErrMissingIdentity = errors.New("no identity found in context")
	ErrInvalidIdentity = errors.New("invalid identity type in context")
)

// echoMiddlewareConfig holds all configuration for the middleware
type echoMiddlewareConfig struct {
	errorHandler func(echo.Context, error) error
	claimsKey    string
	identityKey  string
	header       string
}

func newConfig(opts []Option) *echoMiddlewareConfig {
	config := &echoMiddlewareConfig{
		errorHandler: defaultEchoErrorHandler,
		claimsKey:    DefaultClaimsKey,
		identityKey:  DefaultIdentityKey,
		header:       echo.HeaderAuthorization,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// RequireAuth returns an Echo middleware that rejects requests without a
// valid bearer token.
func RequireAuth(authCore *core.Core, opts ...Option) echo.MiddlewareFunc {
	config := newConfig(opts)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			claims, err := authCore.Check(r.Context(), core.HeaderCredential(r.Header.Values(config.header)))
			if err != nil {
				return config.errorHandler(c, err)
			}

			c.Set(config.claimsKey, claims)
			c.SetRequest(r.WithContext(core.SetClaims(r.Context(), claims)))
			return next(c)
		}
	}
}

// AuthUser returns an Echo middleware that rejects requests without a valid
// bearer token for a user id. Read the identity with GetIdentity.
func AuthUser(authCore *core.Core, opts ...Option) echo.MiddlewareFunc {
	config := newConfig(opts)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			identity, err := authCore.AuthUser(r.Context(), core.HeaderCredential(r.Header.Values(config.header)))
			if err != nil {
				return config.errorHandler(c, err)
			}

			c.Set(config.identityKey, identity)
			c.SetRequest(r.WithContext(core.SetIdentity(r.Context(), identity)))
			return next(c)
		}
	}
}

func defaultEchoErrorHandler(c echo.Context, err error) error {
	resp := core.Classify(err)
	if resp.Status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return c.JSON(resp.Status, resp)
}

// GetIdentity returns the identity stored by AuthUser under
// DefaultIdentityKey. Use GetIdentityWithKey when AuthUser was configured
// with WithIdentityKey.
func GetIdentity(c echo.Context) (*core.Identity, error) {
	return GetIdentityWithKey(c, DefaultIdentityKey)
}

// GetIdentityWithKey returns the identity AuthUser stored under key. When
// nothing is stored there it falls back to the request context.
func GetIdentityWithKey(c echo.Context, key string) (*core.Identity, error) {
	value := c.Get(key)
	if value == nil {
		if identity, err := core.IdentityFromContext(c.Request().Context()); err == nil {
			return identity, nil
		}
		return nil, ErrMissingIdentity
	}

	identity, ok := value.(*core.Identity)
	if !ok {
		return nil, ErrInvalidIdentity
	}
	return identity, nil
}

// GetClaims returns the claims stored by RequireAuth.
func GetClaims(c echo.Context) (*core.Claims, error) {
	return core.ClaimsFromContext(c.Request().Context())
}
