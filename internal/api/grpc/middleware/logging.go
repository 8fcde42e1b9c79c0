package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpcctx "github.com/dtroode/userdirectory/internal/api/grpc/context"
	"github.com/dtroode/userdirectory/internal/logger"
	"github.com/dtroode/userdirectory/internal/model"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger     *logger.Logger
	requestIDs model.RequestIDManager
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger, requestIDs model.RequestIDManager) *Logging {
	return &Logging{logger: logger, requestIDs: requestIDs}
}

// HandleGRPC tags the request with a request id and logs method name,
// duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	ctx, requestID := l.requestIDs.EnsureRequestID(ctx)
	// Fails only outside a real server stream, e.g. in unit tests.
	_ = grpc.SetHeader(ctx, metadata.Pairs(grpcctx.RequestIDKey, requestID))

	l.logger.Debug("gRPC request started",
		"method", info.FullMethod,
		"request_id", requestID)

	resp, err := handler(ctx, req)

	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	l.logger.Info("gRPC request completed",
		"method", info.FullMethod,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", statusCode.String())

	if err != nil {
		l.logger.Error("gRPC request failed",
			"method", info.FullMethod,
			"request_id", requestID,
			"error", err.Error(),
			"status", statusCode.String())
	}

	return resp, err
}

// InterceptorLogger adapts the application logger to go-grpc-middleware's logging interceptors.
func InterceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// StreamLogging logs start and finish of streaming calls.
func StreamLogging(l *logger.Logger) grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(
		InterceptorLogger(l),
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	)
}
