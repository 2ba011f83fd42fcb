package context

import (
	"context"

	"github.com/dtroode/carechain-server/internal/model"
)

type callerKey struct{}

// Manager represents a gRPC context manager for the verified caller identity.
// The identity lives in a private context value so it cannot be supplied by
// clients through request metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetCallerToContext returns a copy of ctx carrying caller.
func (m *Manager) SetCallerToContext(ctx context.Context, caller model.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// GetCallerFromContext returns the caller set by SetCallerToContext.
func (m *Manager) GetCallerFromContext(ctx context.Context) (model.Identity, bool) {
	caller, ok := ctx.Value(callerKey{}).(model.Identity)
	if !ok || caller.IsZero() {
		return "", false
	}
	return caller, true
}
