package core

import (
	"errors"
	"strings"
)

// BearerPrefix is the literal scheme prefix a credential must start with.
// Matching is case-sensitive.
const BearerPrefix = "Bearer "

// Credential is the raw credential header as seen by a transport.
type Credential struct {
	// Value is the header value.
	Value string
	// Present reports whether the header was sent at all. A header sent with
	// an empty value is present.
	Present bool
}

// HeaderCredential builds a Credential from a list of header values, as
// returned by http.Header.Values or metadata.MD.Get.
func HeaderCredential(values []string) Credential {
	if len(values) == 0 {
		return Credential{}
	}
	return Credential{Value: values[0], Present: true}
}

// ParseBearer runs the presence, format and non-empty stages on a credential
// and returns the token.
func ParseBearer(cred Credential) (string, error) {
	if !cred.Present {
		return "", NewError(MissingCredential, nil)
	}

	if !strings.HasPrefix(cred.Value, BearerPrefix) {
		return "", NewError(MalformedCredential, errors.New("authorization header format must be Bearer {token}"))
	}

	token := cred.Value[len(BearerPrefix):]
	if token == "" {
		return "", NewError(MalformedCredential, errors.New("bearer token is empty"))
	}

	return token, nil
}
