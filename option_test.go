package jwtmiddleware

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/kilterboard/jwt-middleware/core"
)

func TestNew_Options(t *testing.T) {
	codec := newTestCodec(t, fixedNow)

	testCases := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "verifier is required",
			opts:    nil,
			wantErr: ErrVerifierNil,
		},
		{
			name:    "nil verifier",
			opts:    []Option{WithVerifier(nil)},
			wantErr: ErrVerifierNil,
		},
		{
			name:    "nil error handler",
			opts:    []Option{WithVerifier(codec), WithErrorHandler(nil)},
			wantErr: ErrErrorHandlerNil,
		},
		{
			name:    "nil credential extractor",
			opts:    []Option{WithVerifier(codec), WithCredentialExtractor(nil)},
			wantErr: ErrCredentialExtractorNil,
		},
		{
			name:    "empty exclusion list",
			opts:    []Option{WithVerifier(codec), WithExclusionUrls(nil)},
			wantErr: ErrExclusionUrlsEmpty,
		},
		{
			name:    "nil logger",
			opts:    []Option{WithVerifier(codec), WithLogger(nil)},
			wantErr: ErrLoggerNil,
		},
		{
			name:    "nil metrics",
			opts:    []Option{WithVerifier(codec), WithMetrics(nil)},
			wantErr: ErrMetricsNil,
		},
		{
			name:    "nil tracer",
			opts:    []Option{WithVerifier(codec), WithTracer(nil)},
			wantErr: ErrTracerNil,
		},
		{
			name: "all options",
			opts: []Option{
				WithVerifier(codec),
				WithErrorHandler(DefaultErrorHandler),
				WithCredentialExtractor(HeaderCredential("X-Auth")),
				WithExclusionUrls([]string{"/health"}),
				WithValidateOnOptions(false),
				WithLogger(NewLogrusLogger(logrus.New())),
				WithMetrics(mustMetrics(t, prometheus.NewRegistry())),
				WithTracer(noop.NewTracerProvider().Tracer("test")),
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			m, err := New(testCase.opts...)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m.core)
			assert.NotNil(t, m.errorHandler)
			assert.NotNil(t, m.credentialExtractor)
		})
	}
}

func TestWithExclusionUrls(t *testing.T) {
	m := &JWTMiddleware{}
	require.NoError(t, WithExclusionUrls([]string{"/health", "http://example.com/public"})(m))

	testCases := []struct {
		url  string
		want bool
	}{
		{url: "http://example.com/health", want: true},
		{url: "http://example.com/public", want: true},
		{url: "http://example.com/public/child", want: false},
		{url: "http://example.com/protected", want: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.url, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, testCase.url, nil)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, m.exclusionURLHandler(r))
		})
	}
}

func TestWithCredentialExtractor(t *testing.T) {
	codec := newTestCodec(t, fixedNow)
	m, err := New(
		WithVerifier(codec),
		WithCredentialExtractor(HeaderCredential("X-Auth")),
	)
	require.NoError(t, err)

	r, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	require.NoError(t, err)
	r.Header.Set("X-Auth", "Bearer "+issue(t, codec, testSubject))

	claims, err := m.core.Check(r.Context(), m.credentialExtractor(r))
	require.NoError(t, err)
	assert.Equal(t, testSubject, claims.Subject)

	_, err = m.core.Check(r.Context(), AuthHeaderCredential(r))
	assert.ErrorIs(t, err, core.ErrMissingCredential)
}
