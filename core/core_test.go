package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockVerifier is a mock implementation of Verifier for testing.
type mockVerifier struct {
	verifyFunc func(ctx context.Context, token string) (*Claims, error)
	calls      []string
}

func (m *mockVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	m.calls = append(m.calls, token)
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

// mockLogger is a mock implementation of Logger for testing.
type mockLogger struct {
	debugCalls []logCall
	infoCalls  []logCall
	warnCalls  []logCall
	errorCalls []logCall
}

type logCall struct {
	msg  string
	args []any
}

func (m *mockLogger) Debug(msg string, args ...any) {
	m.debugCalls = append(m.debugCalls, logCall{msg, args})
}

func (m *mockLogger) Info(msg string, args ...any) {
	m.infoCalls = append(m.infoCalls, logCall{msg, args})
}

func (m *mockLogger) Warn(msg string, args ...any) {
	m.warnCalls = append(m.warnCalls, logCall{msg, args})
}

func (m *mockLogger) Error(msg string, args ...any) {
	m.errorCalls = append(m.errorCalls, logCall{msg, args})
}

type metricCall struct {
	mode    string
	outcome string
}

type mockMetrics struct {
	calls []metricCall
}

func (m *mockMetrics) ObserveCheck(mode, outcome string, _ time.Duration) {
	m.calls = append(m.calls, metricCall{mode, outcome})
}

const testSubject = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

func validClaims() *Claims {
	return &Claims{
		Subject:   testSubject,
		Email:     "test@example.com",
		Username:  "testuser",
		IssuedAt:  1700000000,
		ExpiresAt: 1700003600,
	}
}

func TestNew(t *testing.T) {
	verifier := &mockVerifier{}

	t.Run("successful creation with required options", func(t *testing.T) {
		c, err := New(WithVerifier(verifier))
		require.NoError(t, err)
		assert.NotNil(t, c)
		assert.NotNil(t, c.tracer)
	})

	t.Run("successful creation with all options", func(t *testing.T) {
		c, err := New(
			WithVerifier(verifier),
			WithLogger(&mockLogger{}),
			WithMetrics(&mockMetrics{}),
		)
		require.NoError(t, err)
		assert.NotNil(t, c.logger)
		assert.NotNil(t, c.metrics)
	})

	t.Run("error when verifier is missing", func(t *testing.T) {
		c, err := New()
		assert.Nil(t, c)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigurationUnavailable)
		assert.Contains(t, err.Error(), "verifier is required")
	})

	t.Run("error when verifier is nil", func(t *testing.T) {
		c, err := New(WithVerifier(nil))
		assert.Nil(t, c)
		assert.EqualError(t, err, "verifier cannot be nil")
	})

	t.Run("error when logger is nil", func(t *testing.T) {
		_, err := New(WithVerifier(verifier), WithLogger(nil))
		assert.EqualError(t, err, "logger cannot be nil")
	})

	t.Run("error when metrics is nil", func(t *testing.T) {
		_, err := New(WithVerifier(verifier), WithMetrics(nil))
		assert.EqualError(t, err, "metrics cannot be nil")
	})

	t.Run("error when tracer is nil", func(t *testing.T) {
		_, err := New(WithVerifier(verifier), WithTracer(nil))
		assert.EqualError(t, err, "tracer cannot be nil")
	})
}

func TestCore_HeaderStaging(t *testing.T) {
	testCases := []struct {
		name         string
		cred         Credential
		verify       func(context.Context, string) (*Claims, error)
		wantKind     Kind
		wantVerified bool
	}{
		{
			name:     "missing header",
			cred:     Credential{},
			wantKind: MissingCredential,
		},
		{
			name:     "header without bearer scheme",
			cred:     Credential{Value: "InvalidFormat", Present: true},
			wantKind: MalformedCredential,
		},
		{
			name:     "lowercase scheme is rejected",
			cred:     Credential{Value: "bearer abc", Present: true},
			wantKind: MalformedCredential,
		},
		{
			name:     "present but empty header",
			cred:     Credential{Value: "", Present: true},
			wantKind: MalformedCredential,
		},
		{
			name:     "empty bearer token",
			cred:     Credential{Value: "Bearer ", Present: true},
			wantKind: MalformedCredential,
		},
		{
			name: "verifier rejects the token",
			cred: Credential{Value: "Bearer some-token", Present: true},
			verify: func(context.Context, string) (*Claims, error) {
				return nil, errors.New("could not parse")
			},
			wantKind:     InvalidSignatureOrClaims,
			wantVerified: true,
		},
		{
			name: "expired propagates unchanged",
			cred: Credential{Value: "Bearer some-token", Present: true},
			verify: func(context.Context, string) (*Claims, error) {
				return nil, NewError(ExpiredCredential, errors.New("exp not satisfied"))
			},
			wantKind:     ExpiredCredential,
			wantVerified: true,
		},
		{
			name: "other classified verifier errors become invalid",
			cred: Credential{Value: "Bearer some-token", Present: true},
			verify: func(context.Context, string) (*Claims, error) {
				return nil, NewError(MissingCredential, nil)
			},
			wantKind:     InvalidSignatureOrClaims,
			wantVerified: true,
		},
		{
			name: "verifier returning no claims",
			cred: Credential{Value: "Bearer some-token", Present: true},
			verify: func(context.Context, string) (*Claims, error) {
				return nil, nil
			},
			wantKind:     InvalidSignatureOrClaims,
			wantVerified: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			verifier := &mockVerifier{verifyFunc: testCase.verify}
			c, err := New(WithVerifier(verifier))
			require.NoError(t, err)

			claims, err := c.Check(context.Background(), testCase.cred)
			assert.Nil(t, claims)
			require.Error(t, err)
			assert.Equal(t, testCase.wantKind, KindOf(err))
			assert.Equal(t, testCase.wantVerified, len(verifier.calls) == 1)
		})
	}
}

func TestCore_Check(t *testing.T) {
	verifier := &mockVerifier{
		verifyFunc: func(_ context.Context, token string) (*Claims, error) {
			return validClaims(), nil
		},
	}
	logger := &mockLogger{}
	metrics := &mockMetrics{}
	c, err := New(WithVerifier(verifier), WithLogger(logger), WithMetrics(metrics))
	require.NoError(t, err)

	claims, err := c.Check(context.Background(), Credential{Value: "Bearer abc.def.ghi", Present: true})
	require.NoError(t, err)
	assert.Equal(t, validClaims(), claims)
	assert.Equal(t, []string{"abc.def.ghi"}, verifier.calls)
	assert.Equal(t, []metricCall{{ModeRequireAuth, "success"}}, metrics.calls)
	require.Len(t, logger.debugCalls, 1)
	assert.Empty(t, logger.warnCalls)
}

func TestCore_RequireAuth(t *testing.T) {
	metrics := &mockMetrics{}
	c, err := New(
		WithVerifier(VerifierFunc(func(context.Context, string) (*Claims, error) {
			return &Claims{Subject: "not-a-uuid"}, nil
		})),
		WithMetrics(metrics),
	)
	require.NoError(t, err)

	// Presence-only mode never inspects the subject.
	err = c.RequireAuth(context.Background(), Credential{Value: "Bearer token", Present: true})
	assert.NoError(t, err)

	err = c.RequireAuth(context.Background(), Credential{})
	assert.ErrorIs(t, err, ErrMissingCredential)

	assert.Equal(t, []metricCall{
		{ModeRequireAuth, "success"},
		{ModeRequireAuth, "missing_credential"},
	}, metrics.calls)
}

func TestCore_AuthUser(t *testing.T) {
	t.Run("derives identity from a uuid subject", func(t *testing.T) {
		c, err := New(WithVerifier(VerifierFunc(func(context.Context, string) (*Claims, error) {
			return validClaims(), nil
		})))
		require.NoError(t, err)

		identity, err := c.AuthUser(context.Background(), Credential{Value: "Bearer token", Present: true})
		require.NoError(t, err)
		assert.Equal(t, testSubject, identity.ID.String())
		assert.Equal(t, "test@example.com", identity.Email)
		assert.Equal(t, "testuser", identity.Username)
	})

	t.Run("non-uuid subject is invalid even with a valid signature", func(t *testing.T) {
		logger := &mockLogger{}
		metrics := &mockMetrics{}
		c, err := New(
			WithVerifier(VerifierFunc(func(context.Context, string) (*Claims, error) {
				return &Claims{Subject: "user-42"}, nil
			})),
			WithLogger(logger),
			WithMetrics(metrics),
		)
		require.NoError(t, err)

		identity, err := c.AuthUser(context.Background(), Credential{Value: "Bearer token", Present: true})
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, ErrInvalidSignatureOrClaims)
		assert.Equal(t, []metricCall{{ModeAuthUser, "invalid_signature_or_claims"}}, metrics.calls)
		require.Len(t, logger.warnCalls, 1)
		assert.Equal(t, "authorization failed", logger.warnCalls[0].msg)
	})

	t.Run("pipeline failures short-circuit before identity derivation", func(t *testing.T) {
		verifier := &mockVerifier{}
		c, err := New(WithVerifier(verifier))
		require.NoError(t, err)

		_, err = c.AuthUser(context.Background(), Credential{Value: "Basic dXNlcjpwYXNz", Present: true})
		assert.ErrorIs(t, err, ErrMalformedCredential)
		assert.Empty(t, verifier.calls)
	})
}
