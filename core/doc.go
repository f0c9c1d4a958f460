/*
Package core provides the framework-agnostic authorization pipeline that turns
a raw credential header into verified claims, or into a classified error.

The Core type does not depend on any transport. The net/http middleware, the
Gin and Echo adapters and the gRPC interceptor all wrap the same Core, so every
transport runs the same stages and reports the same error kinds.

# Architecture

	┌─────────────────────────────────────────────┐
	│         Transport Adapters                  │
	│  (net/http, Gin, Echo, gRPC)                │
	└────────────────┬────────────────────────────┘
	                 │ Credential{Value, Present}
	                 ▼
	┌─────────────────────────────────────────────┐
	│          Core (THIS PACKAGE)                │
	│  1. presence   -> MissingCredential         │
	│  2. "Bearer "  -> MalformedCredential       │
	│  3. non-empty  -> MalformedCredential       │
	│  4. verify     -> InvalidSignatureOrClaims  │
	│                   / ExpiredCredential       │
	└────────────────┬────────────────────────────┘
	                 │
	                 ▼
	┌─────────────────────────────────────────────┐
	│          Verifier (package token)           │
	└─────────────────────────────────────────────┘

# Basic Usage

	codec, err := token.New(cfg)
	if err != nil {
	    log.Fatal(err)
	}

	c, err := core.New(core.WithVerifier(codec))
	if err != nil {
	    log.Fatal(err)
	}

	// Presence-only mode
	err = c.RequireAuth(ctx, core.HeaderCredential(r.Header.Values("Authorization")))

	// Identity mode
	identity, err := c.AuthUser(ctx, core.HeaderCredential(r.Header.Values("Authorization")))

# Error Handling

Every failure is a *Error carrying exactly one Kind. Use errors.Is with the
sentinels, or Classify to obtain the HTTP status and message:

	if errors.Is(err, core.ErrExpiredCredential) {
	    // ask the client to log in again
	}

	resp := core.Classify(err) // {Message: "Authentication token expired", Status: 401}

Errors that did not originate in this package classify as
ConfigurationUnavailable (500).
*/
package core
