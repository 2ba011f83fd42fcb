package model

import (
	"context"
)

// ContextManager stores and retrieves the verified caller identity.
type ContextManager interface {
	SetCallerToContext(ctx context.Context, caller Identity) context.Context
	GetCallerFromContext(ctx context.Context) (Identity, bool)
}
