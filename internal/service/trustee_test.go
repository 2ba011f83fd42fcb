package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
)

func TestTrusteeStore_Add(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	ctx := context.Background()

	tr, created, err := f.trustees.Add(ctx, patientID, trusteeID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.TrusteeAddress(model.PatientAddress(patientID), trusteeID), tr.Address)
	assert.Equal(t, patientID, tr.AddedBy)
	assert.False(t, tr.Revoked)
	assert.Nil(t, tr.RevokedAt)

	f.clock.Advance(time.Hour)
	again, created, err := f.trustees.Add(ctx, patientID, trusteeID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, tr.CreatedAt, again.CreatedAt)

	last, ok := f.sink.Last()
	require.True(t, ok)
	assert.Equal(t, model.EventTrusteeAdded, last.Type)
	assert.False(t, last.Payload.(model.TrusteeAdded).Created)
}

func TestTrusteeStore_Add_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		patient model.Identity
		trustee model.Identity
		wantErr error
	}{
		{name: "unknown patient", patient: strangerID, trustee: trusteeID, wantErr: model.ErrNotFound},
		{name: "empty trustee", patient: patientID, trustee: "", wantErr: model.ErrInvalidArgument},
		{name: "self", patient: patientID, trustee: patientID, wantErr: model.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newReadyFixture(t)

			_, _, err := f.trustees.Add(context.Background(), tt.patient, tt.trustee)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTrusteeStore_Revoke(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	ctx := context.Background()

	_, _, err := f.trustees.Add(ctx, patientID, trusteeID)
	require.NoError(t, err)

	_, err = f.trustees.Revoke(ctx, strangerID, patientID, trusteeID)
	require.ErrorIs(t, err, model.ErrUnauthorized)

	f.clock.Advance(time.Minute)
	tr, err := f.trustees.Revoke(ctx, patientID, patientID, trusteeID)
	require.NoError(t, err)
	assert.True(t, tr.Revoked)
	require.NotNil(t, tr.RevokedAt)
	assert.Equal(t, testNow.Add(time.Minute), *tr.RevokedAt)

	_, err = f.trustees.Revoke(ctx, patientID, patientID, trusteeID)
	require.ErrorIs(t, err, model.ErrAlreadyRevoked)

	// Revocation is terminal: the trustee cannot be re-added.
	_, _, err = f.trustees.Add(ctx, patientID, trusteeID)
	require.ErrorIs(t, err, model.ErrAlreadyRevoked)

	stored, err := f.trustees.Get(ctx, patientID, trusteeID)
	require.NoError(t, err)
	assert.True(t, stored.Revoked)

	_, err = f.trustees.Revoke(ctx, patientID, patientID, "unknown")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTrusteeStore_RevokedTrusteeCannotGrant(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	ctx := context.Background()

	_, _, err := f.trustees.Add(ctx, patientID, trusteeID)
	require.NoError(t, err)
	_, err = f.trustees.Revoke(ctx, patientID, patientID, trusteeID)
	require.NoError(t, err)

	_, err = f.grants.Grant(ctx, trusteeID, model.GrantParams{
		Patient: patientID,
		Grantee: readerID,
		Scope:   model.ScopeRead,
	})
	require.ErrorIs(t, err, model.ErrUnauthorizedGrant)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}
