package jwtgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kilterboard/jwt-middleware/core"
)

// Default keys the middleware stores its results under in the gin.Context.
const (
	DefaultClaimsKey   = "jwt"
	DefaultIdentityKey = "jwt_identity"
)

var (
	ErrMissingClaims   = errors.New("no JWT claims found in context")
	ErrMissingIdentity = errors.New("no identity found in context")
	ErrInvalidIdentity = errors.New("invalid identity type in context")
)

// GinMiddlewareConfig holds the adapter configuration.
type GinMiddlewareConfig struct {
	errorHandler func(*gin.Context, error)
	claimsKey    string
	identityKey  string
	header       string
}

func newConfig(opts []Option) *GinMiddlewareConfig {
	config := &GinMiddlewareConfig{
		errorHandler: defaultGinErrorHandler,
		claimsKey:    DefaultClaimsKey,
		identityKey:  DefaultIdentityKey,
		header:       "Authorization",
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

func (cfg *GinMiddlewareConfig) credential(c *gin.Context) core.Credential {
	return core.HeaderCredential(c.Request.Header.Values(cfg.header))
}

// RequireAuth returns a Gin middleware that aborts requests without a
// valid bearer token. The claims are stored under the claims key and in the
// request context.
func RequireAuth(authCore *core.Core, opts ...Option) gin.HandlerFunc {
	config := newConfig(opts)

	return func(c *gin.Context) {
		claims, err := authCore.Check(c.Request.Context(), config.credential(c))
		if err != nil {
			config.errorHandler(c, err)
			c.Abort()
			return
		}

		c.Set(config.claimsKey, claims)
		c.Request = c.Request.WithContext(core.SetClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// AuthUser returns a Gin middleware that aborts requests without a valid
// bearer token for a user id. The identity is stored under the identity key
// and in the request context. Read it with GetIdentity.
func AuthUser(authCore *core.Core, opts ...Option) gin.HandlerFunc {
	config := newConfig(opts)

	return func(c *gin.Context) {
		identity, err := authCore.AuthUser(c.Request.Context(), config.credential(c))
		if err != nil {
			config.errorHandler(c, err)
			c.Abort()
			return
		}

		c.Set(config.identityKey, identity)
		c.Request = c.Request.WithContext(core.SetIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func defaultGinErrorHandler(c *gin.Context, err error) {
	resp := core.Classify(err)
	if resp.Status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}

// GetIdentity returns the identity stored by AuthUser under
// DefaultIdentityKey. Use GetIdentityWithKey when AuthUser was configured
// with WithIdentityKey.
func GetIdentity(c *gin.Context) (*core.Identity, error) {
	return GetIdentityWithKey(c, DefaultIdentityKey)
}

// GetIdentityWithKey returns the identity AuthUser stored under key. When
// nothing is stored there it falls back to the request context.
func GetIdentityWithKey(c *gin.Context, key string) (*core.Identity, error) {
	value, exists := c.Get(key)
	if !exists {
		if identity, err := core.IdentityFromContext(c.Request.Context()); err == nil {
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
func GetClaims(c *gin.Context) (*core.Claims, error) {
	claims, err := core.ClaimsFromContext(c.Request.Context())
	if err != nil {
		return nil, ErrMissingClaims
	}
	return claims, nil
}
