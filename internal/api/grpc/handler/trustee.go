package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

// AddTrustee adds a trustee to the caller's profile. The trustee co-signs by
// issuing a consent token bound to the caller.
func (h *Ledger) AddTrustee(ctx context.Context, req *wire.AddTrusteeRequest) (*wire.AddTrusteeResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	trustee := model.Identity(req.Trustee)
	consentTrustee, consentPatient, err := h.consent.ParseTrusteeConsent(req.Consent)
	if err != nil {
		h.logger.Debug("Ledger handler: invalid trustee consent", "caller", caller, "error", err.Error())
		return nil, status.Error(codes.PermissionDenied, "invalid trustee consent")
	}
	if consentTrustee != trustee || consentPatient != caller {
		return nil, status.Error(codes.PermissionDenied, "trustee consent does not match request")
	}

	record, created, err := h.services.Trustees.Add(ctx, caller, trustee)
	if err != nil {
		return nil, h.fail("add trustee", err, "caller", caller, "trustee", trustee)
	}

	return &wire.AddTrusteeResponse{Trustee: toWireTrustee(record), Created: created}, nil
}

func (h *Ledger) RevokeTrustee(ctx context.Context, req *wire.RevokeTrusteeRequest) (*wire.TrusteeResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	patient := model.Identity(req.Patient)
	if patient.IsZero() {
		patient = caller
	}

	record, err := h.services.Trustees.Revoke(ctx, caller, patient, model.Identity(req.Trustee))
	if err != nil {
		return nil, h.fail("revoke trustee", err, "caller", caller, "trustee", req.Trustee)
	}

	return &wire.TrusteeResponse{Trustee: toWireTrustee(record)}, nil
}

func (h *Ledger) GetTrustee(ctx context.Context, req *wire.GetTrusteeRequest) (*wire.TrusteeResponse, error) {
	record, err := h.services.Trustees.Get(ctx, model.Identity(req.Patient), model.Identity(req.Trustee))
	if err != nil {
		return nil, h.fail("get trustee", err, "patient", req.Patient, "trustee", req.Trustee)
	}

	return &wire.TrusteeResponse{Trustee: toWireTrustee(record)}, nil
}
