/*
Package jwtmiddleware provides net/http middleware that authorizes requests
carrying an HMAC-signed bearer token.

The middleware is a thin transport adapter over package core. core runs the
authorization pipeline; this package reads the Authorization header, stores
the result in the request context and renders failures as JSON.

# Quick Start

	import (
	    jwtmiddleware "github.com/kilterboard/jwt-middleware"
	    "github.com/kilterboard/jwt-middleware/signing"
	    "github.com/kilterboard/jwt-middleware/token"
	)

	func main() {
	    cfg, err := signing.FromEnv()
	    if err != nil {
	        log.Fatal(err)
	    }

	    codec, err := token.New(cfg)
	    if err != nil {
	        log.Fatal(err)
	    }

	    middleware, err := jwtmiddleware.New(
	        jwtmiddleware.WithVerifier(codec),
	    )
	    if err != nil {
	        log.Fatal(err)
	    }

	    mux := http.NewServeMux()
	    mux.Handle("/protected", middleware.RequireAuth(protectedHandler))
	    mux.Handle("/user-info", middleware.AuthUser(userInfoHandler))
	    log.Fatal(http.ListenAndServe(":3000", mux))
	}

# Modes

RequireAuth only requires a valid token. The verified claims are available
through ClaimsFromContext.

AuthUser additionally requires the token subject to be a UUID and exposes
the caller as a *core.Identity:

	func userInfoHandler(w http.ResponseWriter, r *http.Request) {
	    identity, err := jwtmiddleware.IdentityFromContext(r.Context())
	    if err != nil {
	        http.Error(w, "no identity", http.StatusInternalServerError)
	        return
	    }
	    fmt.Fprintf(w, "Hello, %s!", identity.Username)
	}

# Error Responses

Failures never reach the wrapped handler. DefaultErrorHandler answers with

	401 {"error": "Missing authentication token", "code": 401}
	401 {"error": "Invalid authentication token", "code": 401}
	401 {"error": "Authentication token expired", "code": 401}
	500 {"error": "Internal authentication error", "code": 500}

and a "WWW-Authenticate: Bearer" header on 401. Use WithErrorHandler to
render errors differently; core.KindOf tells the failure kinds apart.

# Observability

	logger := jwtmiddleware.NewLogrusLogger(logrus.StandardLogger())
	metrics, err := jwtmiddleware.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	middleware, err := jwtmiddleware.New(
	    jwtmiddleware.WithVerifier(codec),
	    jwtmiddleware.WithLogger(logger),
	    jwtmiddleware.WithMetrics(metrics),
	    jwtmiddleware.WithTracer(otel.Tracer("api")),
	)

Failures are logged at Warn with their kind, never with the token.

# Other Options

  - WithExclusionUrls: paths or full URLs served without authorization
  - WithValidateOnOptions: set to false to let CORS preflight requests through
  - WithCredentialExtractor: read the credential from another header

For Gin, Echo and gRPC see the framework/gin, framework/echo and
integrations/grpc packages.
*/
package jwtmiddleware
