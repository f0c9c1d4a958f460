package core

import (
	"errors"
	"net/http"
)

// Kind classifies why an authorization attempt failed. The set is closed;
// every failed attempt produces exactly one Kind.
type Kind int

const (
	// MissingCredential means no credential header was sent.
	MissingCredential Kind = iota + 1
	// MalformedCredential means the header was present but not "Bearer <token>".
	MalformedCredential
	// InvalidSignatureOrClaims means the token could not be parsed, its
	// signature did not verify, or its claims were unusable.
	InvalidSignatureOrClaims
	// ExpiredCredential means the signature verified but the token is past
	// its expiry.
	ExpiredCredential
	// ConfigurationUnavailable means the signing configuration could not be
	// constructed.
	ConfigurationUnavailable
)

// String returns a stable machine-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case MissingCredential:
		return "missing_credential"
	case MalformedCredential:
		return "malformed_credential"
	case InvalidSignatureOrClaims:
		return "invalid_signature_or_claims"
	case ExpiredCredential:
		return "expired_credential"
	case ConfigurationUnavailable:
		return "configuration_unavailable"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per kind. A *Error matches the sentinel of its kind
// with errors.Is.
var (
	ErrMissingCredential        = errors.New("missing credential")
	ErrMalformedCredential      = errors.New("malformed credential")
	ErrInvalidSignatureOrClaims = errors.New("invalid signature or claims")
	ErrExpiredCredential        = errors.New("expired credential")
	ErrConfigurationUnavailable = errors.New("configuration unavailable")

	// ErrIdentityNotFound is returned when no identity was stored in a context.
	ErrIdentityNotFound = errors.New("identity not found in context")
)

var sentinels = map[Kind]error{
	MissingCredential:        ErrMissingCredential,
	MalformedCredential:      ErrMalformedCredential,
	InvalidSignatureOrClaims: ErrInvalidSignatureOrClaims,
	ExpiredCredential:        ErrExpiredCredential,
	ConfigurationUnavailable: ErrConfigurationUnavailable,
}

// Error is an authorization failure of a single Kind.
//
// Details holds the underlying cause for logging. It is never rendered to
// clients; Classify only looks at Kind.
type Error struct {
	Kind    Kind
	Details error
}

// NewError creates an *Error of the given kind wrapping details (may be nil).
func NewError(kind Kind, details error) *Error {
	return &Error{Kind: kind, Details: details}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if s, ok := sentinels[e.Kind]; ok {
		msg = s.Error()
	}
	if e.Details != nil {
		return msg + ": " + e.Details.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Details
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && target == s
}

// KindOf returns the Kind carried by err. Errors that were not classified
// by this package report ConfigurationUnavailable. A nil error has no kind
// and reports the zero Kind.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}

	var authErr *Error
	if errors.As(err, &authErr) {
		if _, ok := sentinels[authErr.Kind]; ok {
			return authErr.Kind
		}
	}
	return ConfigurationUnavailable
}

// Response is the transport-level rendering of an authorization failure.
type Response struct {
	Message string `json:"error"`
	Status  int    `json:"code"`
}

// Classify maps err to its status and client-facing message. err must be
// non-nil; a nil error is not a failure and has no response of its own, so
// it falls through to the internal error.
func Classify(err error) Response {
	switch KindOf(err) {
	case MissingCredential:
		return Response{Status: http.StatusUnauthorized, Message: "Missing authentication token"}
	case MalformedCredential, InvalidSignatureOrClaims:
		return Response{Status: http.StatusUnauthorized, Message: "Invalid authentication token"}
	case ExpiredCredential:
		return Response{Status: http.StatusUnauthorized, Message: "Authentication token expired"}
	default:
		return Response{Status: http.StatusInternalServerError, Message: "Internal authentication error"}
	}
}
