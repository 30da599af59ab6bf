package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	charityv1 "github.com/simaogato/charityflow-backend/internal/adapter/grpc/charity/v1"
	"github.com/simaogato/charityflow-backend/internal/auth"
)

// PublicMethods can be called without an access token
var PublicMethods = []string{
	charityv1.CharityService_GetProject_FullMethodName,
	charityv1.CharityService_ListProjects_FullMethodName,
	charityv1.CharityService_GetCompletionReport_FullMethodName,
}

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the bearer token from the "authorization" metadata.
// If the token is missing or invalid, it returns status.Unauthenticated,
// except that publicMethods may be called without any token.
// If valid, it calls the handler with the caller's principal in the context.
func AuthInterceptor(authenticator *auth.Authenticator, publicMethods ...string) grpc.UnaryServerInterceptor {
	public := make(map[string]bool, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = true
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			if public[info.FullMethod] {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			if public[info.FullMethod] {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		token := authHeaders[0]
		if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
			token = token[7:]
		}

		principal, err := authenticator.Parse(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(auth.WithPrincipal(ctx, principal), req)
	}
}

// LoggingInterceptor logs every unary call with its status code and duration
func LoggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		event := logger.Info()
		if code == codes.Internal || code == codes.Unknown {
			event = logger.Error().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", time.Since(start)).
			Msg("grpc call")

		return resp, err
	}
}
