package service

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/testutil"
)

func TestRecordLedger_Scenario(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.config.Initialize(ctx, authorityID, "carechain")
	require.NoError(t, err)

	up, err := f.patients.Upsert(ctx, patientID, patientID, "did:example:1")
	require.NoError(t, err)
	assert.True(t, up.Created)
	assert.Equal(t, uint64(0), up.Sequence.Next)

	_, err = f.hospitals.Register(ctx, authorityID, hospitalID, "General", "kms://general")
	require.NoError(t, err)

	f.grant(t, hospitalID, model.ScopeWrite)

	rec, err := f.createRecord(0)
	require.NoError(t, err)
	assert.Equal(t, model.HospitalAddress(hospitalID), rec.Hospital)
	assert.Equal(t, model.RecordAddress(model.PatientAddress(patientID), 0), rec.Address)

	seq, err := f.patients.Sequence(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq.Next)

	_, err = f.createRecord(0)
	require.ErrorIs(t, err, model.ErrBadSeq)

	_, err = f.grants.Grant(ctx, patientID, model.GrantParams{
		Patient: patientID,
		Grantee: readerID,
		Scope:   model.ScopeRead,
		Expiry:  model.ExpireAfter(time.Hour),
	})
	require.NoError(t, err)

	got, err := f.records.Read(ctx, readerID, patientID, 0)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	last, ok := f.sink.Last()
	require.True(t, ok)
	assert.Equal(t, model.RecordRead{
		Record:   rec.Address,
		Patient:  rec.Patient,
		Hospital: rec.Hospital,
		Reader:   readerID,
		Seq:      0,
		At:       testNow,
	}, last.Payload)

	_, err = f.grants.Revoke(ctx, patientID, patientID, readerID, model.ScopeRead)
	require.NoError(t, err)

	_, err = f.records.Read(ctx, readerID, patientID, 0)
	require.ErrorIs(t, err, model.ErrGrantRevoked)

	assert.Equal(t, testutil.Committed(t, f.store), f.sink.Events())
}

func TestRecordLedger_Create_SequenceMonotonic(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	f.grant(t, hospitalID, model.ScopeWrite)

	for seq := uint64(0); seq < 5; seq++ {
		_, err := f.createRecord(seq + 1)
		require.ErrorIs(t, err, model.ErrBadSeq)

		rec, err := f.createRecord(seq)
		require.NoError(t, err)
		assert.Equal(t, seq, rec.Seq)

		if seq > 0 {
			_, err = f.createRecord(seq - 1)
			require.ErrorIs(t, err, model.ErrBadSeq)
		}
	}

	counter, err := f.patients.Sequence(context.Background(), patientID)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), counter.Next)
}

func TestRecordLedger_Create_SequenceOverflow(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	ctx := context.Background()
	f.grant(t, hospitalID, model.ScopeWrite)

	seqAddr := model.SequenceAddress(model.PatientAddress(patientID))
	err := f.store.WithinTx(ctx, func(tx model.Tx) error {
		counter, err := tx.GetSequence(ctx, seqAddr)
		if err != nil {
			return err
		}
		counter.Next = math.MaxUint64
		return tx.UpdateSequence(ctx, counter)
	})
	require.NoError(t, err)
	eventsBefore := len(f.sink.Events())

	_, err = f.createRecord(math.MaxUint64)
	require.ErrorIs(t, err, model.ErrSeqOverflow)

	counter, err := f.patients.Sequence(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), counter.Next)

	err = f.store.WithinTx(ctx, func(tx model.Tx) error {
		_, err := tx.GetRecord(ctx, model.RecordAddress(model.PatientAddress(patientID), math.MaxUint64))
		return err
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Len(t, f.sink.Events(), eventsBefore)
}

func TestRecordLedger_Create_ConcurrentSameSeq(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	f.grant(t, hospitalID, model.ScopeWrite)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		badSeq  int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.createRecord(0)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case assert.ErrorIs(t, err, model.ErrBadSeq):
				badSeq++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, badSeq)
}

func TestRecordLedger_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(p *model.CreateRecordParams)
		wantErr error
	}{
		{name: "empty cid", mutate: func(p *model.CreateRecordParams) { p.CIDEnc = "  " }, wantErr: model.ErrEmpty},
		{name: "cid too long", mutate: func(p *model.CreateRecordParams) { p.CIDEnc = strings.Repeat("c", model.MaxCIDLen+1) }, wantErr: model.ErrTooLong},
		{name: "empty mime", mutate: func(p *model.CreateRecordParams) { p.MetaMIME = "" }, wantErr: model.ErrEmpty},
		{name: "mime too long", mutate: func(p *model.CreateRecordParams) { p.MetaMIME = strings.Repeat("m", model.MaxMIMELen+1) }, wantErr: model.ErrTooLong},
		{name: "meta cid too long", mutate: func(p *model.CreateRecordParams) { p.MetaCID = strings.Repeat("c", model.MaxCIDLen+1) }, wantErr: model.ErrTooLong},
		{name: "kms ref too long", mutate: func(p *model.CreateRecordParams) { p.KMSRef = strings.Repeat("k", model.MaxKMSRefLen+1) }, wantErr: model.ErrTooLong},
		{name: "diagnosis too long", mutate: func(p *model.CreateRecordParams) { p.Clinical.Diagnosis = strings.Repeat("d", model.MaxDiagnosisLen+1) }, wantErr: model.ErrTooLong},
		{name: "description too long", mutate: func(p *model.CreateRecordParams) { p.Clinical.Description = strings.Repeat("d", model.MaxDescriptionLen+1) }, wantErr: model.ErrTooLong},
		{name: "doctor id too long", mutate: func(p *model.CreateRecordParams) { p.Clinical.DoctorID = strings.Repeat("d", model.MaxPartyIDLen+1) }, wantErr: model.ErrTooLong},
		{name: "zero size", mutate: func(p *model.CreateRecordParams) { p.SizeBytes = 0 }, wantErr: model.ErrSizeZero},
		{name: "missing patient key", mutate: func(p *model.CreateRecordParams) { p.PatientKey.Blob = nil }, wantErr: model.ErrEdekMissing},
		{name: "missing hospital key", mutate: func(p *model.CreateRecordParams) { p.HospitalKey.Blob = []byte{} }, wantErr: model.ErrEdekMissing},
		{name: "wrapped key too large", mutate: func(p *model.CreateRecordParams) { p.PatientKey.Blob = make([]byte, model.MaxWrappedKeyBytes+1) }, wantErr: model.ErrTooLong},
		{name: "unknown wrap algo", mutate: func(p *model.CreateRecordParams) { p.HospitalKey.Algo = 9 }, wantErr: model.ErrInvalidArgument},
		{name: "kms root without ref", mutate: func(p *model.CreateRecordParams) { p.KMSRef = " " }, wantErr: model.ErrKMSRefRequired},
		{name: "unknown enc algo", mutate: func(p *model.CreateRecordParams) { p.EncAlgo = 0 }, wantErr: model.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newReadyFixture(t)
			f.grant(t, hospitalID, model.ScopeWrite)
			before := len(testutil.Committed(t, f.store))

			params := recordParams(0)
			tt.mutate(&params)

			_, err := f.records.Create(context.Background(), hospitalID, params)
			require.ErrorIs(t, err, tt.wantErr)

			counter, err := f.patients.Sequence(context.Background(), patientID)
			require.NoError(t, err)
			assert.Equal(t, uint64(0), counter.Next)
			assert.Len(t, testutil.Committed(t, f.store), before)
		})
	}
}

func TestRecordLedger_Create_OptionalRootKey(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	f.grant(t, hospitalID, model.ScopeWrite)

	params := recordParams(0)
	params.RootKey = model.WrappedKey{}
	params.KMSRef = ""

	rec, err := f.records.Create(context.Background(), hospitalID, params)
	require.NoError(t, err)
	assert.Empty(t, rec.RootKey.Blob)

	params = recordParams(1)
	params.RootKey = model.WrappedKey{Blob: []byte("sealed"), Algo: model.WrapAlgoSealedBox}
	params.KMSRef = ""

	_, err = f.records.Create(context.Background(), hospitalID, params)
	require.NoError(t, err)
}

func TestRecordLedger_Create_FieldError(t *testing.T) {
	t.Parallel()
	f := newReadyFixture(t)
	f.grant(t, hospitalID, model.ScopeWrite)

	params := recordParams(0)
	params.Clinical.Keywords = strings.Repeat("k", model.MaxKeywordsLen+1)

	_, err := f.records.Create(context.Background(), hospitalID, params)
	var fieldErr *model.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "keywords", fieldErr.Field)
}

func TestRecordLedger_Create_Authorization(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("uploader mismatch", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)
		f.grant(t, hospitalID, model.ScopeWrite)

		_, err := f.records.Create(ctx, strangerID, recordParams(0))
		require.ErrorIs(t, err, model.ErrUploaderMismatch)
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("unknown hospital", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)

		params := recordParams(0)
		params.Hospital = strangerID
		_, err := f.records.Create(ctx, strangerID, params)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("no grant", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)

		_, err := f.createRecord(0)
		require.ErrorIs(t, err, model.ErrGrantMismatch)
	})

	t.Run("read grant does not allow writes", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)
		f.grant(t, hospitalID, model.ScopeRead)

		_, err := f.createRecord(0)
		require.ErrorIs(t, err, model.ErrGrantMismatch)
	})

	t.Run("revoked grant", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)
		f.grant(t, hospitalID, model.ScopeWrite)
		_, err := f.grants.Revoke(ctx, patientID, patientID, hospitalID, model.ScopeWrite)
		require.NoError(t, err)

		_, err = f.createRecord(0)
		require.ErrorIs(t, err, model.ErrGrantRevoked)
	})

	t.Run("expired grant", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)
		_, err := f.grants.Grant(ctx, patientID, model.GrantParams{
			Patient: patientID,
			Grantee: hospitalID,
			Scope:   model.ScopeWrite,
			Expiry:  model.ExpireAfter(time.Minute),
		})
		require.NoError(t, err)

		f.clock.Advance(time.Minute)
		_, err = f.createRecord(0)
		require.ErrorIs(t, err, model.ErrGrantExpired)
	})

	t.Run("combined scope grant", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)
		f.grant(t, hospitalID, model.ScopeRead|model.ScopeWrite)

		_, err := f.createRecord(0)
		require.NoError(t, err)

		_, err = f.records.Read(ctx, hospitalID, patientID, 0)
		require.NoError(t, err)
	})

	t.Run("revoked exact slot falls back to combined", func(t *testing.T) {
		t.Parallel()
		f := newReadyFixture(t)
		f.grant(t, hospitalID, model.ScopeWrite)
		f.grant(t, hospitalID, model.ScopeWrite|model.ScopeAdmin)
		_, err := f.grants.Revoke(ctx, patientID, patientID, hospitalID, model.ScopeWrite)
		require.NoError(t, err)

		_, err = f.createRecord(0)
		require.NoError(t, err)
	})
}

func TestRecordLedger_Read(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	setup := func(t *testing.T) *fixture {
		f := newReadyFixture(t)
		f.grant(t, hospitalID, model.ScopeWrite)
		_, err := f.createRecord(0)
		require.NoError(t, err)
		return f
	}

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.grant(t, readerID, model.ScopeRead)

		_, err := f.records.Read(ctx, readerID, patientID, 1)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("no grant", func(t *testing.T) {
		t.Parallel()
		f := setup(t)

		_, err := f.records.Read(ctx, readerID, patientID, 0)
		require.ErrorIs(t, err, model.ErrGrantMismatch)
	})

	t.Run("owner needs a grant too", func(t *testing.T) {
		t.Parallel()
		f := setup(t)

		_, err := f.records.Read(ctx, patientID, patientID, 0)
		require.ErrorIs(t, err, model.ErrGrantMismatch)

		f.grant(t, patientID, model.ScopeRead)
		_, err = f.records.Read(ctx, patientID, patientID, 0)
		require.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		_, err := f.grants.Grant(ctx, patientID, model.GrantParams{
			Patient: patientID,
			Grantee: readerID,
			Scope:   model.ScopeRead,
			Expiry:  model.ExpireAfter(time.Hour),
		})
		require.NoError(t, err)

		f.clock.Advance(59 * time.Minute)
		_, err = f.records.Read(ctx, readerID, patientID, 0)
		require.NoError(t, err)

		f.clock.Advance(time.Minute)
		_, err = f.records.Read(ctx, readerID, patientID, 0)
		require.ErrorIs(t, err, model.ErrGrantExpired)
	})

	t.Run("trustee granted reader", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		_, _, err := f.trustees.Add(ctx, patientID, trusteeID)
		require.NoError(t, err)
		_, err = f.grants.Grant(ctx, trusteeID, model.GrantParams{Patient: patientID, Grantee: readerID, Scope: model.ScopeRead})
		require.NoError(t, err)

		_, err = f.records.Read(ctx, readerID, patientID, 0)
		require.NoError(t, err)
	})

	t.Run("read does not mutate", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.grant(t, readerID, model.ScopeRead)

		before, err := f.patients.Sequence(ctx, patientID)
		require.NoError(t, err)
		_, err = f.records.Read(ctx, readerID, patientID, 0)
		require.NoError(t, err)
		after, err := f.patients.Sequence(ctx, patientID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
