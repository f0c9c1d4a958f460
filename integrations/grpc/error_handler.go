package grpc

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kilterboard/jwt-middleware/core"
)

// ErrorHandler converts authorization errors to gRPC status errors.
type ErrorHandler func(error) error

// DefaultErrorHandler maps authorization errors to gRPC status codes using
// the same messages as the HTTP middleware. 401 failures become
// codes.Unauthenticated, everything else codes.Internal.
func DefaultErrorHandler(err error) error {
	if err == nil {
		return nil
	}

	resp := core.Classify(err)
	if resp.Status == http.StatusUnauthorized {
		return status.Error(codes.Unauthenticated, resp.Message)
	}
	return status.Error(codes.Internal, resp.Message)
}
