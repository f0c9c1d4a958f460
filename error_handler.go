package jwtmiddleware

import (
	"encoding/json"
	"net/http"

	"github.com/kilterboard/jwt-middleware/core"
)

// ErrorHandler is called when authorization fails. err is a *core.Error
// for every failure the pipeline produces; core.KindOf and errors.Is with
// the core sentinels tell the cases apart. If you implement your own
// ErrorHandler it MUST end the response, the wrapped handler is not called.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler is the default error handler implementation for the
// JWTMiddleware. It writes the status and body chosen by core.Classify:
//
//	{"error": "Missing authentication token", "code": 401}
//
// 401 responses also carry a "WWW-Authenticate: Bearer" header.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	resp := core.Classify(err)

	w.Header().Set("Content-Type", "application/json")
	if resp.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}
