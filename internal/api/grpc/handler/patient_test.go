package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

func TestLedger_UpsertPatient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		reqOwner  string
		wantOwner model.Identity
	}{
		{name: "owner defaults to caller", reqOwner: "", wantOwner: testCaller},
		{name: "explicit owner", reqOwner: string(testPatient), wantOwner: testPatient},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, m := newTestLedger(t)
			m.authenticated(testCaller)

			addr := model.PatientAddress(tt.wantOwner)
			m.patients.On("Upsert", mock.Anything, testCaller, tt.wantOwner, "did:example:1").Return(model.PatientUpsert{
				Patient:  model.Patient{Address: addr, Owner: tt.wantOwner, DID: "did:example:1", CreatedAt: testNow, UpdatedAt: testNow},
				Sequence: model.SequenceCounter{Address: model.SequenceAddress(addr), Patient: addr, Next: 3},
				Created:  true,
			}, nil)

			resp, err := h.UpsertPatient(context.Background(), &wire.UpsertPatientRequest{Owner: tt.reqOwner, Did: "did:example:1"})
			require.NoError(t, err)
			assert.True(t, resp.GetCreated())
			assert.Equal(t, uint64(3), resp.GetNextSeq())
			assert.Equal(t, string(tt.wantOwner), resp.GetPatient().GetOwner())
			assert.Equal(t, addr.String(), resp.GetPatient().GetAddress())
		})
	}
}

func TestLedger_UpsertPatient_Errors(t *testing.T) {
	t.Parallel()

	h, m := newTestLedger(t)
	m.authenticated(testCaller)
	m.patients.On("Upsert", mock.Anything, testCaller, testPatient, "").Return(model.PatientUpsert{}, model.ErrUnauthorized)

	_, err := h.UpsertPatient(context.Background(), &wire.UpsertPatientRequest{Owner: string(testPatient)})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestLedger_GetSequence(t *testing.T) {
	t.Parallel()

	addr := model.PatientAddress(testPatient)

	h, m := newTestLedger(t)
	m.patients.On("Sequence", mock.Anything, testPatient).Return(model.SequenceCounter{
		Address: model.SequenceAddress(addr),
		Patient: addr,
		Next:    7,
	}, nil)
	m.patients.On("Get", mock.Anything, model.Identity("0xnobody")).Return(model.Patient{}, model.ErrNotFound)

	resp, err := h.GetSequence(context.Background(), &wire.GetSequenceRequest{Owner: string(testPatient)})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), resp.GetNext())
	assert.Equal(t, addr.String(), resp.GetPatient())

	_, err = h.GetPatient(context.Background(), &wire.GetPatientRequest{Owner: "0xnobody"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
