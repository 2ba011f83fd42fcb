package handler

import (
	"context"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

// RegisterHospital registers a hospital on behalf of the config authority.
func (h *Ledger) RegisterHospital(ctx context.Context, req *wire.RegisterHospitalRequest) (*wire.HospitalResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	hospital, err := h.services.Hospitals.Register(ctx, caller, model.Identity(req.Authority), req.Name, req.KmsRef)
	if err != nil {
		return nil, h.fail("register hospital", err, "caller", caller, "hospital", req.Authority)
	}

	return &wire.HospitalResponse{Hospital: toWireHospital(hospital)}, nil
}

func (h *Ledger) GetHospital(ctx context.Context, req *wire.GetHospitalRequest) (*wire.HospitalResponse, error) {
	hospital, err := h.services.Hospitals.Get(ctx, model.Identity(req.Authority))
	if err != nil {
		return nil, h.fail("get hospital", err, "hospital", req.Authority)
	}

	return &wire.HospitalResponse{Hospital: toWireHospital(hospital)}, nil
}
