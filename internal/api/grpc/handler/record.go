package handler

import (
	"context"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

// CreateRecord appends a record on behalf of the uploading hospital.
func (h *Ledger) CreateRecord(ctx context.Context, req *wire.CreateRecordRequest) (*wire.RecordResponse, error) {
	h.logger.Debug("Ledger handler: processing create record request",
		"patient", req.Patient,
		"hospital", req.Hospital,
		"seq", req.Seq)

	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	params, err := fromWireCreateRecord(req)
	if err != nil {
		return nil, h.fail("create record", err, "caller", caller)
	}

	record, err := h.services.Records.Create(ctx, caller, params)
	if err != nil {
		return nil, h.fail("create record", err, "caller", caller, "seq", req.Seq)
	}

	return &wire.RecordResponse{Record: toWireRecord(record)}, nil
}

// ReadRecord returns a record to a grantee and leaves an audit event.
func (h *Ledger) ReadRecord(ctx context.Context, req *wire.ReadRecordRequest) (*wire.RecordResponse, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return nil, err
	}

	record, err := h.services.Records.Read(ctx, caller, model.Identity(req.Patient), req.Seq)
	if err != nil {
		return nil, h.fail("read record", err, "caller", caller, "patient", req.Patient, "seq", req.Seq)
	}

	return &wire.RecordResponse{Record: toWireRecord(record)}, nil
}
