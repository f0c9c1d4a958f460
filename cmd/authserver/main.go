// Command authserver runs a small API protected by bearer tokens.
//
// Configuration comes from the environment (and a .env file):
//
//	JWT_SECRET, JWT_EXPIRATION_HOURS, JWT_INSECURE_DEV_MODE
//	SERVER_HOST, SERVER_PORT, LOG_LEVEL, REDIS_URL
//
// Mint a token with the minttoken command, then:
//
//	curl -H "Authorization: Bearer $TOKEN" http://localhost:3000/user-info
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	jwtmiddleware "github.com/kilterboard/jwt-middleware"
	"github.com/kilterboard/jwt-middleware/internal/config"
	"github.com/kilterboard/jwt-middleware/internal/userstore"
	"github.com/kilterboard/jwt-middleware/signing"
	"github.com/kilterboard/jwt-middleware/token"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("authserver failed")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	authLogger := jwtmiddleware.NewLogrusLogger(logger)

	signingCfg, err := signing.FromEnv(signing.WithLogger(authLogger))
	if err != nil {
		return err
	}

	codec, err := token.New(signingCfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := jwtmiddleware.NewPrometheusMetrics(registry)
	if err != nil {
		return err
	}

	auth, err := jwtmiddleware.New(
		jwtmiddleware.WithVerifier(codec),
		jwtmiddleware.WithLogger(authLogger),
		jwtmiddleware.WithMetrics(metrics),
		jwtmiddleware.WithTracer(otel.Tracer("github.com/kilterboard/jwt-middleware/cmd/authserver")),
	)
	if err != nil {
		return err
	}

	users, closeUsers, err := openUserStore(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer closeUsers()

	srv := &server{
		auth:     auth,
		users:    users,
		logger:   logger,
		gatherer: registry,
		now:      time.Now,
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"addr":       cfg.Addr(),
			"expiration": signingCfg.Expiration().String(),
			"insecure":   signingCfg.Insecure(),
		}).Info("server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func openUserStore(ctx context.Context, redisURL string) (userstore.Store, func(), error) {
	if redisURL == "" {
		return userstore.NewMemoryStore(), func() {}, nil
	}

	store, err := userstore.OpenRedis(ctx, redisURL)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
