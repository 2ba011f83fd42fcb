package handler

import (
	"context"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

// CreateGrant creates or overwrites a grant on behalf of a patient or one of
// its trustees.
func (h *Ledger) CreateGrant(ctx context.Context, req *wire.CreateGrantRequest) (*wire.GrantResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	expiry, err := fromWireExpiry(req)
	if err != nil {
		return nil, h.fail("create grant", err, "caller", caller)
	}

	scope, err := fromWireScope(req.Scope)
	if err != nil {
		return nil, h.fail("create grant", err, "caller", caller)
	}

	grant, err := h.services.Grants.Grant(ctx, caller, model.GrantParams{
		Patient: model.Identity(req.Patient),
		Grantee: model.Identity(req.Grantee),
		Scope:   scope,
		Expiry:  expiry,
	})
	if err != nil {
		return nil, h.fail("create grant", err, "caller", caller, "grantee", req.Grantee, "scope", req.Scope)
	}

	return &wire.GrantResponse{Grant: toWireGrant(grant)}, nil
}

func (h *Ledger) RevokeGrant(ctx context.Context, req *wire.RevokeGrantRequest) (*wire.GrantResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	patient := model.Identity(req.Patient)
	if patient.IsZero() {
		patient = caller
	}

	scope, err := fromWireScope(req.Scope)
	if err != nil {
		return nil, h.fail("revoke grant", err, "caller", caller)
	}

	grant, err := h.services.Grants.Revoke(ctx, caller, patient, model.Identity(req.Grantee), scope)
	if err != nil {
		return nil, h.fail("revoke grant", err, "caller", caller, "grantee", req.Grantee, "scope", req.Scope)
	}

	return &wire.GrantResponse{Grant: toWireGrant(grant)}, nil
}

func (h *Ledger) GetGrant(ctx context.Context, req *wire.GetGrantRequest) (*wire.GrantResponse, error) {
	scope, err := fromWireScope(req.Scope)
	if err != nil {
		return nil, h.fail("get grant", err, "patient", req.Patient)
	}

	grant, err := h.services.Grants.Get(ctx, model.Identity(req.Patient), model.Identity(req.Grantee), scope)
	if err != nil {
		return nil, h.fail("get grant", err, "patient", req.Patient, "grantee", req.Grantee)
	}

	return &wire.GrantResponse{Grant: toWireGrant(grant)}, nil
}
