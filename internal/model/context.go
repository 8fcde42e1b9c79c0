package model

import "context"

// RequestIDManager carries request ids through gRPC metadata.
type RequestIDManager interface {
	SetRequestIDToContext(ctx context.Context, requestID string) context.Context
	GetRequestIDFromContext(ctx context.Context) (string, bool)
	EnsureRequestID(ctx context.Context) (context.Context, string)
}
