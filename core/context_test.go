package core

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		claims := validClaims()
		ctx := SetClaims(context.Background(), claims)

		assert.True(t, HasClaims(ctx))
		got, err := ClaimsFromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, claims, got)
	})

	t.Run("missing claims", func(t *testing.T) {
		assert.False(t, HasClaims(context.Background()))
		_, err := ClaimsFromContext(context.Background())
		assert.ErrorIs(t, err, ErrIdentityNotFound)
	})

	t.Run("nil claims are treated as missing", func(t *testing.T) {
		ctx := SetClaims(context.Background(), nil)
		assert.False(t, HasClaims(ctx))
	})
}

func TestIdentityContext(t *testing.T) {
	identity := &Identity{ID: uuid.MustParse(testSubject), Email: "a@b.c", Username: "ab"}
	ctx := SetIdentity(context.Background(), identity)

	got, err := IdentityFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, identity, got)

	// Claims and identity use distinct keys.
	assert.False(t, HasClaims(ctx))

	_, err = IdentityFromContext(context.Background())
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}
