package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/userdirectory/internal/model"
)

// RequestIDKey is the metadata key carrying the request id.
const RequestIDKey = "x-request-id"

var _ model.RequestIDManager = (*Manager)(nil)

// Manager represents a gRPC context manager for request id operations.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetRequestIDToContext stores the request id in the incoming metadata of ctx.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{RequestIDKey: requestID})
	} else {
		md = md.Copy()
		md.Set(RequestIDKey, requestID)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetRequestIDFromContext returns the request id sent by the client, if any.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	ids := md.Get(RequestIDKey)
	if len(ids) == 0 || ids[0] == "" {
		return "", false
	}

	return ids[0], true
}

// EnsureRequestID returns the request id from ctx, generating and storing a
// new one when the client did not send it.
func (m *Manager) EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := m.GetRequestIDFromContext(ctx); ok {
		return ctx, id
	}

	id := uuid.NewString()
	return m.SetRequestIDToContext(ctx, id), id
}
