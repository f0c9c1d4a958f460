/*
Package token issues and verifies HMAC-signed session tokens.

A token is a compact JWS whose payload carries the claims

	{"sub": "<user id>", "email": "...", "username": "...", "iat": <unix>, "exp": <unix>}

with exp = iat + the configured expiration.

# Usage

	cfg, err := signing.FromEnv()
	if err != nil {
	    log.Fatal(err)
	}

	codec, err := token.New(cfg)
	if err != nil {
	    log.Fatal(err)
	}

	tok, err := codec.Issue(userID.String(), "user@example.com", "user")

	claims, err := codec.Verify(ctx, tok)
	switch {
	case errors.Is(err, core.ErrExpiredCredential):
	    // signature was valid, token is past exp
	case err != nil:
	    // any other problem: InvalidSignatureOrClaims
	}

A Codec implements core.Verifier and is what the middleware packages use
to verify bearer tokens.

# Validation

Verification accepts only the configured algorithm. All five claims are
required and email and username must be strings. A token is valid while
the current second is not after exp; nbf and iat are not checked.
*/
package token
