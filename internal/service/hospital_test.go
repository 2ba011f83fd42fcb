package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
)

func TestHospitalRegistry_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		caller    model.Identity
		authority model.Identity
		hName     string
		kmsRef    string
		wantErr   error
	}{
		{name: "success", caller: authorityID, authority: "h1", hName: " General ", kmsRef: "kms://h1"},
		{name: "not the config authority", caller: strangerID, authority: "h1", hName: "General", kmsRef: "kms://h1", wantErr: model.ErrUnauthorized},
		{name: "empty identity", caller: authorityID, authority: "", hName: "General", kmsRef: "kms://h1", wantErr: model.ErrInvalidArgument},
		{name: "empty name", caller: authorityID, authority: "h1", hName: "  ", kmsRef: "kms://h1", wantErr: model.ErrInvalidArgument},
		{name: "name too long", caller: authorityID, authority: "h1", hName: strings.Repeat("a", model.MaxHospitalNameLen+1), kmsRef: "kms://h1", wantErr: model.ErrTooLong},
		{name: "empty kms ref", caller: authorityID, authority: "h1", hName: "General", kmsRef: "", wantErr: model.ErrInvalidArgument},
		{name: "kms ref too long", caller: authorityID, authority: "h1", hName: "General", kmsRef: strings.Repeat("k", model.MaxKMSRefLen+1), wantErr: model.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			ctx := context.Background()
			_, err := f.config.Initialize(ctx, authorityID, "carechain")
			require.NoError(t, err)

			h, err := f.hospitals.Register(ctx, tt.caller, tt.authority, tt.hName, tt.kmsRef)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, []model.EventType{model.EventConfigInitialized}, f.sink.Types())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.HospitalAddress(tt.authority), h.Address)
			assert.Equal(t, "General", h.Name)
			assert.Equal(t, authorityID, h.RegisteredBy)
			assert.Equal(t, testNow, h.CreatedAt)

			got, err := f.hospitals.Get(ctx, tt.authority)
			require.NoError(t, err)
			assert.Equal(t, h, got)
		})
	}
}

func TestHospitalRegistry_Register_NotInitialized(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.hospitals.Register(context.Background(), authorityID, hospitalID, "General", "kms://general")
	require.ErrorIs(t, err, model.ErrNotInitialized)
}

func TestHospitalRegistry_Register_Duplicate(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)

	_, err := f.hospitals.Register(context.Background(), authorityID, hospitalID, "Another", "kms://another")
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	h, err := f.hospitals.Get(context.Background(), hospitalID)
	require.NoError(t, err)
	assert.Equal(t, "General", h.Name)
}

func TestHospitalRegistry_Get_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.hospitals.Get(context.Background(), "missing")
	require.ErrorIs(t, err, model.ErrNotFound)
}
