package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// ConfigService administers the ledger singleton.
type ConfigService interface {
	Initialize(ctx context.Context, caller model.Identity, namespace string) (model.LedgerConfig, error)
	SetPaused(ctx context.Context, caller model.Identity, paused bool) (model.LedgerConfig, error)
	Get(ctx context.Context) (model.LedgerConfig, error)
}

// HospitalService registers record-producing organizations.
type HospitalService interface {
	Register(ctx context.Context, caller model.Identity, authority model.Identity, name string, kmsRef string) (model.Hospital, error)
	Get(ctx context.Context, authority model.Identity) (model.Hospital, error)
}

// PatientService manages patient profiles and their sequence counters.
type PatientService interface {
	Upsert(ctx context.Context, caller model.Identity, owner model.Identity, did string) (model.PatientUpsert, error)
	Get(ctx context.Context, owner model.Identity) (model.Patient, error)
	Sequence(ctx context.Context, owner model.Identity) (model.SequenceCounter, error)
}

// TrusteeService manages read-only proxies of patients.
type TrusteeService interface {
	Add(ctx context.Context, patientCaller model.Identity, trustee model.Identity) (model.Trustee, bool, error)
	Revoke(ctx context.Context, caller model.Identity, patient model.Identity, trustee model.Identity) (model.Trustee, error)
	Get(ctx context.Context, patient model.Identity, trustee model.Identity) (model.Trustee, error)
}

// GrantService issues and revokes scoped authorizations.
type GrantService interface {
	Grant(ctx context.Context, caller model.Identity, params model.GrantParams) (model.Grant, error)
	Revoke(ctx context.Context, caller model.Identity, patient model.Identity, grantee model.Identity, scope model.Scope) (model.Grant, error)
	Get(ctx context.Context, patient model.Identity, grantee model.Identity, scope model.Scope) (model.Grant, error)
}

// RecordService appends and reads record envelopes.
type RecordService interface {
	Create(ctx context.Context, caller model.Identity, params model.CreateRecordParams) (model.Record, error)
	Read(ctx context.Context, reader model.Identity, patient model.Identity, seq uint64) (model.Record, error)
}

// ConsentVerifier validates trustee consent tokens.
type ConsentVerifier interface {
	ParseTrusteeConsent(token string) (trustee model.Identity, patient model.Identity, err error)
}

// Services groups the ledger components served by Ledger.
type Services struct {
	Config    ConfigService
	Hospitals HospitalService
	Patients  PatientService
	Trustees  TrusteeService
	Grants    GrantService
	Records   RecordService
}

// Ledger handles gRPC endpoints of the Ledger service.
type Ledger struct {
	wire.UnimplementedLedgerServer
	services       Services
	consent        ConsentVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

var _ wire.LedgerServer = (*Ledger)(nil)

// NewLedger creates a new Ledger handler.
func NewLedger(services Services, consent ConsentVerifier, contextManager model.ContextManager, logger *logger.Logger) *Ledger {
	return &Ledger{
		services:       services,
		consent:        consent,
		contextManager: contextManager,
		logger:         logger,
	}
}

var errNoCaller = errors.New("caller identity not found in context")

func (h *Ledger) caller(ctx context.Context) (model.Identity, error) {
	caller, ok := h.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, errNoCaller.Error())
	}
	return caller, nil
}

// fail converts err to a status error, logging unexpected failures.
func (h *Ledger) fail(op string, err error, args ...any) error {
	st := handleError(err)
	args = append(args, "error", err.Error())
	if status.Code(st) == codes.Internal {
		h.logger.Error("Ledger handler: "+op+" failed", args...)
	} else {
		h.logger.Debug("Ledger handler: "+op+" rejected", args...)
	}
	return st
}
