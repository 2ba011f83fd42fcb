package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/repository/memory"
	"github.com/dtroode/carechain-server/internal/testutil"
)

const (
	authorityID model.Identity = "authority"
	patientID   model.Identity = "patient"
	hospitalID  model.Identity = "hospital"
	readerID    model.Identity = "reader"
	trusteeID   model.Identity = "trustee"
	strangerID  model.Identity = "stranger"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type fixture struct {
	store *memory.Store
	clock *testutil.Clock
	sink  *testutil.Recorder

	config    *Config
	hospitals *HospitalRegistry
	patients  *PatientRegistry
	trustees  *TrusteeStore
	grants    *GrantStore
	records   *RecordLedger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	clock := testutil.NewClock(testNow)
	sink := &testutil.Recorder{}
	log := testutil.MakeNoopLogger()

	return &fixture{
		store:     store,
		clock:     clock,
		sink:      sink,
		config:    NewConfig(store, clock, sink, log),
		hospitals: NewHospitalRegistry(store, clock, sink, log),
		patients:  NewPatientRegistry(store, clock, sink, log),
		trustees:  NewTrusteeStore(store, clock, sink, log),
		grants:    NewGrantStore(store, clock, sink, log),
		records:   NewRecordLedger(store, clock, sink, log),
	}
}

// newReadyFixture initializes config, the patient and the hospital.
func newReadyFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.config.Initialize(ctx, authorityID, "carechain")
	require.NoError(t, err)
	_, err = f.patients.Upsert(ctx, patientID, patientID, "did:example:1")
	require.NoError(t, err)
	_, err = f.hospitals.Register(ctx, authorityID, hospitalID, "General", "kms://general")
	require.NoError(t, err)
	return f
}

func (f *fixture) grant(t *testing.T, grantee model.Identity, scope model.Scope) model.Grant {
	t.Helper()
	g, err := f.grants.Grant(context.Background(), patientID, model.GrantParams{
		Patient: patientID,
		Grantee: grantee,
		Scope:   scope,
		Expiry:  model.NoExpiry(),
	})
	require.NoError(t, err)
	return g
}

func (f *fixture) createRecord(seq uint64) (model.Record, error) {
	return f.records.Create(context.Background(), hospitalID, recordParams(seq))
}

func recordParams(seq uint64) model.CreateRecordParams {
	return model.CreateRecordParams{
		Patient:     patientID,
		Hospital:    hospitalID,
		Seq:         seq,
		CIDEnc:      "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		MetaMIME:    "application/pdf",
		MetaCID:     "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku",
		SizeBytes:   2048,
		Digest:      model.Digest{1, 2, 3},
		RootKey:     model.WrappedKey{Blob: []byte("root"), Algo: model.WrapAlgoKMS},
		PatientKey:  model.WrappedKey{Blob: []byte("patient"), Algo: model.WrapAlgoSealedBox},
		HospitalKey: model.WrappedKey{Blob: []byte("hospital"), Algo: model.WrapAlgoSealedBox},
		KMSRef:      "kms://general/key-1",
		EncVersion:  1,
		EncAlgo:     model.EncAlgoXChaCha20,
		Clinical: model.ClinicalInfo{
			HospitalName: "General",
			DoctorName:   "Dr. Who",
			Diagnosis:    "seasonal allergy",
		},
	}
}
