package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/carechain-server/internal/model"
)

func TestManager_SetAndGetCaller(t *testing.T) {
	m := NewManager()
	ctx := m.SetCallerToContext(stdctx.Background(), "alice")

	got, ok := m.GetCallerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.Identity("alice"), got)
}

func TestManager_GetCaller_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetCallerFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetCaller_Empty(t *testing.T) {
	m := NewManager()
	ctx := m.SetCallerToContext(stdctx.Background(), "")

	_, ok := m.GetCallerFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_IgnoresIncomingMetadata(t *testing.T) {
	m := NewManager()
	ctx := metadata.NewIncomingContext(stdctx.Background(), metadata.Pairs("caller", "mallory"))

	_, ok := m.GetCallerFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_OverridesCaller(t *testing.T) {
	m := NewManager()
	ctx := m.SetCallerToContext(stdctx.Background(), "alice")
	ctx = m.SetCallerToContext(ctx, "bob")

	got, ok := m.GetCallerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.Identity("bob"), got)
}
