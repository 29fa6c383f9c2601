package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/blockvest/smartfund-backend/internal/domain"
)

// callerContextKey is the context key the caller's fund address is stored under
type callerContextKey struct{}

// AuthInterceptor returns a gRPC unary server interceptor that validates the
// authorization token and extracts the caller's fund address from request
// metadata (x-caller-address).
// If the token is missing or invalid, it returns status.Unauthenticated.
// If valid, it calls the handler with the caller address attached to the context.
func AuthInterceptor(validToken string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		if authHeaders[0] != validToken {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		// The caller address identifies the depositor/manager an operation
		// acts as; read-only RPCs may omit it.
		if callers := md.Get("x-caller-address"); len(callers) > 0 {
			ctx = context.WithValue(ctx, callerContextKey{}, domain.Address(callers[0]))
		}

		return handler(ctx, req)
	}
}

// CallerFromContext returns the caller address attached by AuthInterceptor
func CallerFromContext(ctx context.Context) (domain.Address, bool) {
	caller, ok := ctx.Value(callerContextKey{}).(domain.Address)
	return caller, ok && caller != ""
}
