// Command minttoken issues a signed token using the same environment
// configuration as authserver.
//
//	minttoken --email climber@example.com --username climber
//
// With --store the user is also written to the Redis user store at
// REDIS_URL so that authserver's /users/me finds it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	jwtmiddleware "github.com/kilterboard/jwt-middleware"
	"github.com/kilterboard/jwt-middleware/internal/config"
	"github.com/kilterboard/jwt-middleware/internal/userstore"
	"github.com/kilterboard/jwt-middleware/signing"
	"github.com/kilterboard/jwt-middleware/token"
)

type options struct {
	subject  string
	email    string
	username string
	envFile  string
	curl     bool
	store    bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("minttoken", pflag.ContinueOnError)
	fs.StringVar(&opts.subject, "subject", "", "token subject (defaults to a random UUID)")
	fs.StringVar(&opts.email, "email", "test@example.com", "email claim")
	fs.StringVar(&opts.username, "username", "testuser", "username claim")
	fs.StringVar(&opts.envFile, "env-file", ".env", "environment file to load before reading JWT_* variables")
	fs.BoolVar(&opts.curl, "curl", false, "print a curl example using the token")
	fs.BoolVar(&opts.store, "store", false, "save the user to the Redis store at REDIS_URL")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.subject == "" {
		opts.subject = uuid.NewString()
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cfg, err := signing.FromEnv(
		signing.WithEnvFile(opts.envFile),
		signing.WithLogger(jwtmiddleware.NewLogrusLogger(logger)),
	)
	if err != nil {
		return err
	}

	tok, err := token.Issue(cfg, opts.subject, opts.email, opts.username)
	if err != nil {
		return err
	}

	if opts.store {
		if err := storeUser(opts); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, tok)
	if opts.curl {
		fmt.Fprintf(stdout, "\ncurl -H \"Authorization: Bearer %s\" http://localhost:3000/user-info\n", tok)
	}
	return nil
}

func storeUser(opts *options) error {
	id, err := uuid.Parse(opts.subject)
	if err != nil {
		return fmt.Errorf("--store needs a UUID subject: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.RedisURL == "" {
		return errors.New("--store needs REDIS_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := userstore.OpenRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Put(ctx, &userstore.User{
		ID:        id,
		Email:     opts.email,
		Username:  opts.username,
		CreatedAt: time.Now().UTC(),
	})
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "minttoken:", err)
		os.Exit(1)
	}
}
