package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/testutil"
)

func TestPatientRegistry_Upsert_Idempotent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.patients.Upsert(ctx, patientID, patientID, "did:example:1")
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, patientID, first.Patient.Owner)
	assert.Equal(t, uint64(0), first.Sequence.Next)
	assert.Equal(t, first.Patient.Address, first.Sequence.Patient)

	f.clock.Advance(time.Minute)
	second, err := f.patients.Upsert(ctx, patientID, patientID, "did:example:2")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, "did:example:2", second.Patient.DID)
	assert.Equal(t, testNow, second.Patient.CreatedAt)
	assert.Equal(t, testNow.Add(time.Minute), second.Patient.UpdatedAt)

	_, err = f.patients.Upsert(ctx, strangerID, patientID, "did:example:3")
	require.ErrorIs(t, err, model.ErrUnauthorized)

	stored, err := f.patients.Get(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, "did:example:2", stored.DID)

	evs := f.sink.Events()
	require.Len(t, evs, 2)
	assert.True(t, evs[0].Payload.(model.PatientUpserted).Created)
	assert.False(t, evs[1].Payload.(model.PatientUpserted).Created)
}

func TestPatientRegistry_Upsert_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  model.Identity
		owner   model.Identity
		did     string
		wantErr error
	}{
		{name: "did too long", caller: patientID, owner: patientID, did: strings.Repeat("d", model.MaxDIDLen+1), wantErr: model.ErrTooLong},
		{name: "empty owner", caller: patientID, owner: "", did: "did:example:1", wantErr: model.ErrInvalidArgument},
		{name: "create for someone else", caller: strangerID, owner: patientID, did: "did:example:1", wantErr: model.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			_, err := f.patients.Upsert(context.Background(), tt.caller, tt.owner, tt.did)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, testutil.Committed(t, f.store))

			_, err = f.patients.Get(context.Background(), patientID)
			assert.ErrorIs(t, err, model.ErrNotFound)
		})
	}
}

func TestPatientRegistry_Upsert_EmptyDID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	res, err := f.patients.Upsert(context.Background(), patientID, patientID, "")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Empty(t, res.Patient.DID)
}

func TestPatientRegistry_Sequence(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	ctx := context.Background()
	f.grant(t, hospitalID, model.ScopeWrite)

	seq, err := f.patients.Sequence(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seq.Next)

	_, err = f.createRecord(0)
	require.NoError(t, err)

	seq, err = f.patients.Sequence(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq.Next)

	_, err = f.patients.Sequence(ctx, strangerID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

// staleStore hides existing patients from the first transaction it runs, the
// view a first upsert has when a concurrent one commits between its lookup and
// its insert.
type staleStore struct {
	model.Store
	stale int
}

type stalePatientTx struct {
	model.Tx
}

func (stalePatientTx) GetPatient(context.Context, model.Address) (model.Patient, error) {
	return model.Patient{}, model.ErrNotFound
}

func (s *staleStore) WithinTx(ctx context.Context, fn func(tx model.Tx) error) error {
	return s.Store.WithinTx(ctx, func(tx model.Tx) error {
		if s.stale > 0 {
			s.stale--
			return fn(stalePatientTx{Tx: tx})
		}
		return fn(tx)
	})
}

func TestPatientRegistry_Upsert_ConcurrentCreate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.patients.Upsert(ctx, patientID, patientID, "did:example:1")
	require.NoError(t, err)

	store := &staleStore{Store: f.store, stale: 1}
	racer := NewPatientRegistry(store, f.clock, f.sink, testutil.MakeNoopLogger())

	f.clock.Advance(time.Minute)
	res, err := racer.Upsert(ctx, patientID, patientID, "did:example:2")
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "did:example:2", res.Patient.DID)
	assert.Equal(t, testNow, res.Patient.CreatedAt)
	assert.Equal(t, uint64(0), res.Sequence.Next)
	assert.Zero(t, store.stale)

	got, err := f.patients.Get(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, "did:example:2", got.DID)

	assert.Equal(t, []model.EventType{model.EventPatientUpserted, model.EventPatientUpserted}, f.sink.Types())
}

func TestPatientRegistry_Upsert_RetriesOnce(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.patients.Upsert(ctx, patientID, patientID, "did:example:1")
	require.NoError(t, err)

	store := &staleStore{Store: f.store, stale: 2}
	racer := NewPatientRegistry(store, f.clock, f.sink, testutil.MakeNoopLogger())

	_, err = racer.Upsert(ctx, patientID, patientID, "did:example:2")
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}
