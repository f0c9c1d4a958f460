package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	jwtmiddleware "github.com/kilterboard/jwt-middleware"
	"github.com/kilterboard/jwt-middleware/internal/userstore"
)

type server struct {
	auth     *jwtmiddleware.JWTMiddleware
	users    userstore.Store
	logger   logrus.FieldLogger
	gatherer prometheus.Gatherer
	now      func() time.Time
}

type errorBody struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /protected", s.auth.RequireAuth(http.HandlerFunc(s.handleProtected)))
	mux.Handle("GET /user-info", s.auth.AuthUser(http.HandlerFunc(s.handleUserInfo)))
	mux.Handle("GET /users/me", s.auth.AuthUser(http.HandlerFunc(s.handleCurrentUser)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return mux
}

func (s *server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Kilter Board API"))
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}

func (s *server) handleProtected(w http.ResponseWriter, r *http.Request) {
	claims, err := jwtmiddleware.ClaimsFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Internal authentication error")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Access granted",
		"subject": claims.Subject,
	})
}

func (s *server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	identity, err := jwtmiddleware.IdentityFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Internal authentication error")
		return
	}
	s.writeJSON(w, http.StatusOK, identity)
}

func (s *server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, err := jwtmiddleware.IdentityFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Internal authentication error")
		return
	}

	user, err := s.users.Get(r.Context(), identity.ID)
	switch {
	case errors.Is(err, userstore.ErrUserNotFound):
		s.writeError(w, http.StatusNotFound, "User not found")
	case err != nil:
		s.logger.WithError(err).WithField("user_id", identity.ID).Error("user lookup failed")
		s.writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		s.writeJSON(w, http.StatusOK, user)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorBody{Message: message, Code: status})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Warn("failed to write response")
	}
}
