package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	other := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "nil", err: nil, wantErr: nil},
		{name: "no rows", err: pgx.ErrNoRows, wantErr: model.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), wantErr: model.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: uniqueViolation, ConstraintName: "records_patient_seq_key"}, wantErr: model.ErrAlreadyExists},
		{name: "other pg error", err: &pgconn.PgError{Code: "23503"}, wantErr: nil},
		{name: "other", err: other, wantErr: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapError(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			if tt.wantErr == nil {
				assert.Same(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestMapError_KeepsConstraintName(t *testing.T) {
	t.Parallel()

	err := mapError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "hospitals_pkey"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "hospitals_pkey")
}

func TestFixedBytes(t *testing.T) {
	t.Parallel()

	var a model.Address
	src := make([]byte, len(a))
	for i := range src {
		src[i] = byte(i)
	}

	require.NoError(t, fixedBytes(a[:]).ScanBytes(src))
	assert.Equal(t, src, a[:])

	var d model.Digest
	assert.Error(t, fixedBytes(d[:]).ScanBytes([]byte{1, 2, 3}))
	assert.Equal(t, model.Digest{}, d)
}
