package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

const testHospital model.Identity = "0xhospital"

func createRecordRequest() *wire.CreateRecordRequest {
	return &wire.CreateRecordRequest{
		Patient:      string(testPatient),
		Hospital:     string(testHospital),
		Seq:          4,
		CidEnc:       "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		MetaMime:     "application/pdf",
		SizeBytes:    2048,
		Digest:       strings.Repeat("0f", 32),
		EdekRoot:     &wire.WrappedKey{Blob: []byte("root"), Algo: "kms"},
		EdekPatient:  &wire.WrappedKey{Blob: []byte("patient"), Algo: "sealed_box"},
		EdekHospital: &wire.WrappedKey{Blob: []byte("hospital"), Algo: "sealed_box"},
		KmsRef:       "kms://general/key-1",
		EncVersion:   1,
		EncAlgo:      "aes256gcm",
		Clinical:     &wire.Clinical{DoctorName: "Dr. Who"},
	}
}

func TestLedger_CreateRecord(t *testing.T) {
	t.Parallel()

	h, m := newTestLedger(t)
	m.authenticated(testHospital)

	var digest model.Digest
	for i := range digest {
		digest[i] = 0x0f
	}

	wantParams := model.CreateRecordParams{
		Patient:     testPatient,
		Hospital:    testHospital,
		Seq:         4,
		CIDEnc:      "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		MetaMIME:    "application/pdf",
		SizeBytes:   2048,
		Digest:      digest,
		RootKey:     model.WrappedKey{Blob: []byte("root"), Algo: model.WrapAlgoKMS},
		PatientKey:  model.WrappedKey{Blob: []byte("patient"), Algo: model.WrapAlgoSealedBox},
		HospitalKey: model.WrappedKey{Blob: []byte("hospital"), Algo: model.WrapAlgoSealedBox},
		KMSRef:      "kms://general/key-1",
		EncVersion:  1,
		EncAlgo:     model.EncAlgoAES256GCM,
		Clinical:    model.ClinicalInfo{DoctorName: "Dr. Who"},
	}

	record := model.Record{
		Address:          model.RecordAddress(model.PatientAddress(testPatient), 4),
		Patient:          model.PatientAddress(testPatient),
		Hospital:         model.HospitalAddress(testHospital),
		Uploader:         testHospital,
		CIDEnc:           wantParams.CIDEnc,
		MetaMIME:         wantParams.MetaMIME,
		SizeBytes:        wantParams.SizeBytes,
		Digest:           digest,
		RootKey:          wantParams.RootKey,
		PatientKey:       wantParams.PatientKey,
		HospitalKey:      wantParams.HospitalKey,
		KMSRef:           wantParams.KMSRef,
		Seq:              4,
		EncVersion:       1,
		EncAlgo:          model.EncAlgoAES256GCM,
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
		PatientIdentity:  testPatient,
		HospitalIdentity: testHospital,
		Clinical:         wantParams.Clinical,
	}
	m.records.On("Create", mock.Anything, testHospital, wantParams).Return(record, nil)

	resp, err := h.CreateRecord(context.Background(), createRecordRequest())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0f", 32), resp.GetRecord().GetDigest())
	assert.Equal(t, "aes256gcm", resp.GetRecord().GetEncAlgo())
	assert.Equal(t, []byte("root"), resp.GetRecord().GetEdekRoot().GetBlob())
	assert.Equal(t, "kms", resp.GetRecord().GetEdekRoot().GetAlgo())
	assert.Equal(t, "Dr. Who", resp.GetRecord().GetClinical().GetDoctorName())
	assert.Equal(t, uint64(4), resp.GetRecord().GetSeq())
	assert.Equal(t, testNow, resp.GetRecord().GetCreatedAt().AsTime())
}

func TestLedger_CreateRecord_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*wire.CreateRecordRequest)
		svcErr    error
		callsSvc  bool
		wantCode  codes.Code
		wantField string
	}{
		{
			name:      "digest not hex",
			mutate:    func(r *wire.CreateRecordRequest) { r.Digest = "zz" },
			wantCode:  codes.InvalidArgument,
			wantField: "digest",
		},
		{
			name:      "digest short",
			mutate:    func(r *wire.CreateRecordRequest) { r.Digest = "0f0f" },
			wantCode:  codes.InvalidArgument,
			wantField: "digest",
		},
		{
			name:      "unknown wrap algorithm",
			mutate:    func(r *wire.CreateRecordRequest) { r.EdekPatient.Algo = "rot13" },
			wantCode:  codes.InvalidArgument,
			wantField: "edek_patient",
		},
		{
			name:      "unknown cipher",
			mutate:    func(r *wire.CreateRecordRequest) { r.EncAlgo = "des" },
			wantCode:  codes.InvalidArgument,
			wantField: "enc_algo",
		},
		{
			name:      "enc version wider than 16 bits",
			mutate:    func(r *wire.CreateRecordRequest) { r.EncVersion = 1 << 16 },
			wantCode:  codes.InvalidArgument,
			wantField: "enc_version",
		},
		{
			name:     "stale seq",
			mutate:   func(r *wire.CreateRecordRequest) {},
			svcErr:   model.ErrBadSeq,
			callsSvc: true,
			wantCode: codes.Aborted,
		},
		{
			name:     "uploader is not the hospital",
			mutate:   func(r *wire.CreateRecordRequest) {},
			svcErr:   model.ErrUploaderMismatch,
			callsSvc: true,
			wantCode: codes.PermissionDenied,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, m := newTestLedger(t)
			m.authenticated(testHospital)
			if tt.callsSvc {
				m.records.On("Create", mock.Anything, testHospital, mock.AnythingOfType("model.CreateRecordParams")).Return(model.Record{}, tt.svcErr)
			}

			req := createRecordRequest()
			tt.mutate(req)

			_, err := h.CreateRecord(context.Background(), req)
			require.Error(t, err)
			st, _ := status.FromError(err)
			assert.Equal(t, tt.wantCode, st.Code())
			if tt.wantField != "" {
				assert.True(t, strings.HasPrefix(st.Message(), tt.wantField+":"), st.Message())
			}
		})
	}
}

func TestLedger_ReadRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		caller   model.Identity
		svcErr   error
		wantCode codes.Code
	}{
		{name: "success", caller: testGrantee, wantCode: codes.OK},
		{name: "unauthenticated", wantCode: codes.Unauthenticated},
		{name: "no grant", caller: testGrantee, svcErr: model.ErrGrantMismatch, wantCode: codes.FailedPrecondition},
		{name: "grant expired", caller: testGrantee, svcErr: model.ErrGrantExpired, wantCode: codes.FailedPrecondition},
		{name: "paused", caller: testGrantee, svcErr: model.ErrPaused, wantCode: codes.Unavailable},
		{name: "missing record", caller: testGrantee, svcErr: model.ErrNotFound, wantCode: codes.NotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, m := newTestLedger(t)
			m.authenticated(tt.caller)
			if tt.caller != "" {
				m.records.On("Read", mock.Anything, tt.caller, testPatient, uint64(2)).
					Return(model.Record{Seq: 2, EncAlgo: model.EncAlgoXChaCha20}, tt.svcErr)
			}

			resp, err := h.ReadRecord(context.Background(), &wire.ReadRecordRequest{Patient: string(testPatient), Seq: 2})
			if tt.wantCode != codes.OK {
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint64(2), resp.GetRecord().GetSeq())
			assert.Equal(t, "xchacha20", resp.GetRecord().GetEncAlgo())
		})
	}
}
