package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/carechain-server/internal/mocks"
	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/testutil"
)

const (
	testCaller  model.Identity = "0xcaller"
	testPatient model.Identity = "0xpatient"
	testGrantee model.Identity = "0xgrantee"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type ledgerMocks struct {
	config    *mocks.ConfigService
	hospitals *mocks.HospitalService
	patients  *mocks.PatientService
	trustees  *mocks.TrusteeService
	grants    *mocks.GrantService
	records   *mocks.RecordService
	consent   *mocks.ConsentVerifier
	ctxMgr    *mocks.ContextManager
}

func newTestLedger(t *testing.T) (*Ledger, *ledgerMocks) {
	t.Helper()

	m := &ledgerMocks{
		config:    mocks.NewConfigService(t),
		hospitals: mocks.NewHospitalService(t),
		patients:  mocks.NewPatientService(t),
		trustees:  mocks.NewTrusteeService(t),
		grants:    mocks.NewGrantService(t),
		records:   mocks.NewRecordService(t),
		consent:   mocks.NewConsentVerifier(t),
		ctxMgr:    mocks.NewContextManager(t),
	}

	h := NewLedger(Services{
		Config:    m.config,
		Hospitals: m.hospitals,
		Patients:  m.patients,
		Trustees:  m.trustees,
		Grants:    m.grants,
		Records:   m.records,
	}, m.consent, m.ctxMgr, testutil.MakeNoopLogger())

	return h, m
}

// authenticated makes the context manager report caller, or no caller when
// it is empty.
func (m *ledgerMocks) authenticated(caller model.Identity) {
	m.ctxMgr.On("GetCallerFromContext", mock.Anything).Return(caller, caller != "")
}
