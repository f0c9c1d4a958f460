package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/kilterboard/jwt-middleware/core"
	"github.com/kilterboard/jwt-middleware/signing"
)

// Names of the private claims carried by a session token.
const (
	ClaimEmail    = "email"
	ClaimUsername = "username"
)

var algorithms = map[signing.Algorithm]jwa.SignatureAlgorithm{
	signing.HS256: jwa.HS256,
	signing.HS384: jwa.HS384,
	signing.HS512: jwa.HS512,
}

// Codec issues and verifies tokens for a single signing.Config.
// It is safe for concurrent use.
type Codec struct {
	config    *signing.Config
	algorithm jwa.SignatureAlgorithm
	secret    []byte
	now       func() time.Time
}

// New returns a Codec bound to cfg.
func New(cfg *signing.Config, opts ...Option) (*Codec, error) {
	if cfg == nil {
		return nil, core.NewError(core.ConfigurationUnavailable, errors.New("signing config is required but was nil"))
	}

	alg, ok := algorithms[cfg.Algorithm()]
	if !ok {
		return nil, core.NewError(core.ConfigurationUnavailable,
			fmt.Errorf("unsupported signature algorithm: %s", cfg.Algorithm()))
	}

	c := &Codec{
		config:    cfg,
		algorithm: alg,
		secret:    cfg.Secret(),
		now:       time.Now,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Issue creates a signed token for the given user. The token is issued at
// the current second and expires after the configured expiration.
func (c *Codec) Issue(subject, email, username string) (string, error) {
	issuedAt := c.currentTime()

	tok, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(issuedAt).
		Expiration(issuedAt.Add(c.config.Expiration())).
		Claim(ClaimEmail, email).
		Claim(ClaimUsername, username).
		Build()
	if err != nil {
		return "", core.NewError(core.ConfigurationUnavailable, fmt.Errorf("could not build token: %w", err))
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(c.algorithm, c.secret))
	if err != nil {
		return "", core.NewError(core.ConfigurationUnavailable, fmt.Errorf("could not sign token: %w", err))
	}

	return string(signed), nil
}

// Verify checks the token's signature and claims and returns the claims.
//
// Parse, signature and claim failures are reported as
// InvalidSignatureOrClaims. A token with a valid signature is reported as
// ExpiredCredential once the clock is past exp, by any amount. There is no
// leeway, and neither nbf nor iat are checked against the clock.
func (c *Codec) Verify(_ context.Context, tokenString string) (*core.Claims, error) {
	tok, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(c.algorithm, c.secret),
		jwt.WithValidate(false),
	)
	if err != nil {
		return nil, core.NewError(core.InvalidSignatureOrClaims, fmt.Errorf("could not parse the token: %w", err))
	}

	claims, err := claimsFromToken(tok)
	if err != nil {
		return nil, core.NewError(core.InvalidSignatureOrClaims, err)
	}

	if c.now().After(time.Unix(claims.ExpiresAt, 0)) {
		return nil, core.NewError(core.ExpiredCredential,
			fmt.Errorf("token expired at %s", time.Unix(claims.ExpiresAt, 0).UTC().Format(time.RFC3339)))
	}

	return claims, nil
}

func (c *Codec) currentTime() time.Time {
	return time.Unix(c.now().Unix(), 0)
}

func claimsFromToken(tok jwt.Token) (*core.Claims, error) {
	for _, name := range []string{jwt.SubjectKey, jwt.IssuedAtKey, jwt.ExpirationKey} {
		if _, ok := tok.Get(name); !ok {
			return nil, fmt.Errorf("required claim %q is missing", name)
		}
	}

	email, err := stringClaim(tok, ClaimEmail)
	if err != nil {
		return nil, err
	}
	username, err := stringClaim(tok, ClaimUsername)
	if err != nil {
		return nil, err
	}

	return &core.Claims{
		Subject:   tok.Subject(),
		Email:     email,
		Username:  username,
		IssuedAt:  tok.IssuedAt().Unix(),
		ExpiresAt: tok.Expiration().Unix(),
	}, nil
}

func stringClaim(tok jwt.Token, name string) (string, error) {
	raw, ok := tok.Get(name)
	if !ok {
		return "", fmt.Errorf("required claim %q is missing", name)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("claim %q must be a string, got %T", name, raw)
	}
	return value, nil
}

// Issue creates a token with a Codec built from cfg.
func Issue(cfg *signing.Config, subject, email, username string) (string, error) {
	c, err := New(cfg)
	if err != nil {
		return "", err
	}
	return c.Issue(subject, email, username)
}

// Verify verifies tokenString with a Codec built from cfg.
func Verify(cfg *signing.Config, tokenString string) (*core.Claims, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return c.Verify(context.Background(), tokenString)
}
