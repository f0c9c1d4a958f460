package jwtgin

import (
	"github.com/gin-gonic/gin"
)

// Option defines a functional option for configuring the middleware
type Option func(*GinMiddlewareConfig)

// WithErrorHandler sets a custom error handler for the middleware.
// The request is aborted after the handler returns.
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(config *GinMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithIdentityKey sets the context key AuthUser stores the identity under.
// Read it back with GetIdentityWithKey.
func WithIdentityKey(key string) Option {
	return func(config *GinMiddlewareConfig) {
		config.identityKey = key
	}
}

// WithClaimsKey sets the gin.Context key RequireAuth stores the claims under.
func WithClaimsKey(key string) Option {
	return func(config *GinMiddlewareConfig) {
		config.claimsKey = key
	}
}

// WithHeader sets the header the credential is read from.
//
// Default: Authorization
func WithHeader(name string) Option {
	return func(config *GinMiddlewareConfig) {
		config.header = name
	}
}
