package handler

import (
	"context"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

// UpsertPatient creates or updates a patient profile.
func (h *Ledger) UpsertPatient(ctx context.Context, req *wire.UpsertPatientRequest) (*wire.UpsertPatientResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	owner := model.Identity(req.Owner)
	if owner.IsZero() {
		owner = caller
	}

	res, err := h.services.Patients.Upsert(ctx, caller, owner, req.Did)
	if err != nil {
		return nil, h.fail("upsert patient", err, "caller", caller, "owner", owner)
	}

	return &wire.UpsertPatientResponse{
		Patient: toWirePatient(res.Patient),
		Created: res.Created,
		NextSeq: res.Sequence.Next,
	}, nil
}

func (h *Ledger) GetPatient(ctx context.Context, req *wire.GetPatientRequest) (*wire.PatientResponse, error) {
	patient, err := h.services.Patients.Get(ctx, model.Identity(req.Owner))
	if err != nil {
		return nil, h.fail("get patient", err, "owner", req.Owner)
	}

	return &wire.PatientResponse{Patient: toWirePatient(patient)}, nil
}

// GetSequence returns the seq the next record of a patient must carry.
func (h *Ledger) GetSequence(ctx context.Context, req *wire.GetSequenceRequest) (*wire.SequenceResponse, error) {
	seq, err := h.services.Patients.Sequence(ctx, model.Identity(req.Owner))
	if err != nil {
		return nil, h.fail("get sequence", err, "owner", req.Owner)
	}

	return &wire.SequenceResponse{
		Address: seq.Address.String(),
		Patient: seq.Patient.String(),
		Next:    seq.Next,
	}, nil
}
