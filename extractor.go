package jwtmiddleware

import (
	"net/http"

	"github.com/kilterboard/jwt-middleware/core"
)

// CredentialExtractor reads the raw credential header from a request.
// It reports whether the header was sent and its value. Checking the
// value's format is left to the core pipeline.
type CredentialExtractor func(r *http.Request) core.Credential

// AuthHeaderCredential is a CredentialExtractor that reads the
// Authorization header. Only the first value is used.
func AuthHeaderCredential(r *http.Request) core.Credential {
	return core.HeaderCredential(r.Header.Values("Authorization"))
}

// HeaderCredential returns a CredentialExtractor that reads the named
// header instead of Authorization.
func HeaderCredential(name string) CredentialExtractor {
	return func(r *http.Request) core.Credential {
		return core.HeaderCredential(r.Header.Values(name))
	}
}
