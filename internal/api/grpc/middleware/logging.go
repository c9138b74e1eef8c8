package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrewouko/umoja-informatics/internal/logger"
)

// InterceptorLogger adapts the application logger to go-grpc-middleware.
func InterceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// UnaryLogging logs the outcome of each unary call.
func UnaryLogging(l *logger.Logger) grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(
		InterceptorLogger(l),
		logging.WithLogOnEvents(logging.FinishCall),
	)
}

// UnaryRecovery turns handler panics into codes.Internal.
func UnaryRecovery(l *logger.Logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(
		recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			l.ErrorContext(ctx, "gRPC handler panicked", "panic", fmt.Sprint(p))
			return status.Error(codes.Internal, "internal server error")
		}),
	)
}
