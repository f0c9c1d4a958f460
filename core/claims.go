package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Claims is the payload carried by a session token.
type Claims struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Identity is the trusted user identity derived from verified claims. It is
// scoped to a single request.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// Identity converts verified claims into an Identity. The subject must be the
// canonical text form of a UUID; anything else is InvalidSignatureOrClaims.
func (c *Claims) Identity() (*Identity, error) {
	if c == nil {
		return nil, NewError(InvalidSignatureOrClaims, errors.New("no claims"))
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil || !strings.EqualFold(id.String(), c.Subject) {
		return nil, NewError(InvalidSignatureOrClaims, fmt.Errorf("subject is not a canonical uuid: %q", c.Subject))
	}

	return &Identity{
		ID:       id,
		Email:    c.Email,
		Username: c.Username,
	}, nil
}
