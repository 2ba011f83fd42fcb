package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
)

func TestConfig_Initialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		namespace string
		wantErr   error
		wantNS    string
	}{
		{name: "success", namespace: "carechain", wantNS: "carechain"},
		{name: "trimmed", namespace: "  carechain \t", wantNS: "carechain"},
		{name: "empty", namespace: "   ", wantErr: model.ErrInvalidArgument},
		{name: "too long", namespace: strings.Repeat("n", model.MaxNamespaceLen+1), wantErr: model.ErrTooLong},
		{name: "at bound", namespace: strings.Repeat("n", model.MaxNamespaceLen), wantNS: strings.Repeat("n", model.MaxNamespaceLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			cfg, err := f.config.Initialize(context.Background(), authorityID, tt.namespace)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.sink.Events())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, authorityID, cfg.Authority)
			assert.False(t, cfg.Paused)
			assert.Equal(t, tt.wantNS, cfg.Namespace)
			assert.Equal(t, testNow, cfg.CreatedAt)
			assert.Equal(t, []model.EventType{model.EventConfigInitialized}, f.sink.Types())
		})
	}
}

func TestConfig_Initialize_Twice(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.config.Initialize(ctx, authorityID, "carechain")
	require.NoError(t, err)

	_, err = f.config.Initialize(ctx, strangerID, "other")
	require.ErrorIs(t, err, model.ErrAlreadyInitialized)

	cfg, err := f.config.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, authorityID, cfg.Authority)
	assert.Equal(t, "carechain", cfg.Namespace)
}

func TestConfig_SetPaused(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.config.SetPaused(ctx, authorityID, true)
	require.ErrorIs(t, err, model.ErrNotInitialized)

	_, err = f.config.Initialize(ctx, authorityID, "carechain")
	require.NoError(t, err)

	_, err = f.config.SetPaused(ctx, strangerID, true)
	require.ErrorIs(t, err, model.ErrUnauthorized)

	cfg, err := f.config.SetPaused(ctx, authorityID, true)
	require.NoError(t, err)
	assert.True(t, cfg.Paused)

	// Same value again is a silent no-op.
	cfg, err = f.config.SetPaused(ctx, authorityID, true)
	require.NoError(t, err)
	assert.True(t, cfg.Paused)

	cfg, err = f.config.SetPaused(ctx, authorityID, false)
	require.NoError(t, err)
	assert.False(t, cfg.Paused)

	assert.Equal(t, []model.EventType{
		model.EventConfigInitialized,
		model.EventProgramPauseUpdated,
		model.EventProgramPauseUpdated,
	}, f.sink.Types())

	last, ok := f.sink.Last()
	require.True(t, ok)
	assert.Equal(t, model.ProgramPauseUpdated{Paused: false, SetBy: authorityID, At: testNow}, last.Payload)
}

func TestConfig_Get_NotInitialized(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.config.Get(context.Background())
	require.ErrorIs(t, err, model.ErrNotInitialized)
}

func TestConfig_Paused_BlocksMutations(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	ctx := context.Background()
	f.grant(t, hospitalID, model.ScopeWrite)

	_, err := f.config.SetPaused(ctx, authorityID, true)
	require.NoError(t, err)

	_, err = f.hospitals.Register(ctx, authorityID, "other-hospital", "Other", "kms://other")
	assert.ErrorIs(t, err, model.ErrPaused)

	_, err = f.patients.Upsert(ctx, patientID, patientID, "did:example:2")
	assert.ErrorIs(t, err, model.ErrPaused)

	_, _, err = f.trustees.Add(ctx, patientID, trusteeID)
	assert.ErrorIs(t, err, model.ErrPaused)

	_, err = f.grants.Grant(ctx, patientID, model.GrantParams{Patient: patientID, Grantee: readerID, Scope: model.ScopeRead})
	assert.ErrorIs(t, err, model.ErrPaused)

	_, err = f.createRecord(0)
	assert.ErrorIs(t, err, model.ErrPaused)

	_, err = f.records.Read(ctx, readerID, patientID, 0)
	assert.ErrorIs(t, err, model.ErrPaused)

	// Revocations still go through so access can be withdrawn during a pause.
	_, err = f.grants.Revoke(ctx, patientID, patientID, hospitalID, model.ScopeWrite)
	assert.NoError(t, err)
}
