package jwtmiddleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilterboard/jwt-middleware/core"
)

func TestDefaultErrorHandler(t *testing.T) {
	testCases := []struct {
		name          string
		err           error
		wantStatus    int
		wantBody      string
		wantChallenge bool
	}{
		{
			name:          "missing credential",
			err:           core.NewError(core.MissingCredential, nil),
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"Missing authentication token","code":401}`,
			wantChallenge: true,
		},
		{
			name:          "malformed credential",
			err:           core.NewError(core.MalformedCredential, errors.New("no scheme")),
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"Invalid authentication token","code":401}`,
			wantChallenge: true,
		},
		{
			name:          "invalid signature",
			err:           core.NewError(core.InvalidSignatureOrClaims, errors.New("signature mismatch")),
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"Invalid authentication token","code":401}`,
			wantChallenge: true,
		},
		{
			name:          "expired",
			err:           fmt.Errorf("wrapped: %w", core.NewError(core.ExpiredCredential, nil)),
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"Authentication token expired","code":401}`,
			wantChallenge: true,
		},
		{
			name:       "configuration unavailable",
			err:        core.NewError(core.ConfigurationUnavailable, errors.New("JWT_SECRET missing")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal authentication error","code":500}`,
		},
		{
			name:       "unclassified error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal authentication error","code":500}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			DefaultErrorHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil), testCase.err)

			assert.Equal(t, testCase.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, testCase.wantBody, rec.Body.String())
			if testCase.wantChallenge {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
			}
			// Details never reach the client.
			assert.NotContains(t, rec.Body.String(), "JWT_SECRET")
			assert.NotContains(t, rec.Body.String(), "signature mismatch")
		})
	}
}
