/*
Package signing holds the shared-secret configuration used to issue and
verify session tokens.

A Config is built once at startup, either programmatically:

	cfg, err := signing.New([]byte(secret), signing.WithExpiration(time.Hour))

or from the environment:

	if err := signing.LoadEnv(); err != nil {
	    log.Fatal(err)
	}
	cfg, err := signing.FromEnv(signing.WithLogger(logger))
	if err != nil {
	    log.Fatal(err)
	}

# Environment

	JWT_SECRET              shared HMAC secret
	JWT_EXPIRATION_HOURS    token lifetime in hours (default 24)
	JWT_INSECURE_DEV_MODE   allow the placeholder secret when JWT_SECRET is unset

Without JWT_SECRET, FromEnv returns a core.Error of kind
ConfigurationUnavailable. Local development can opt into DefaultSecret with
JWT_INSECURE_DEV_MODE=true; the resulting Config reports Insecure and a
warning is logged.

The Config is then handed to token.New, which captures it for the lifetime
of the process. Nothing on the request path reads the environment.
*/
package signing
