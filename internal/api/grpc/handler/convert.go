package handler

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/carechain-server/internal/api/grpc/wire"
	"github.com/dtroode/carechain-server/internal/model"
)

func toWireTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func toWireConfig(c model.LedgerConfig) *wire.Config {
	return &wire.Config{
		Authority: c.Authority.String(),
		Paused:    c.Paused,
		Namespace: c.Namespace,
		CreatedAt: timestamppb.New(c.CreatedAt),
	}
}

func toWireHospital(h model.Hospital) *wire.Hospital {
	return &wire.Hospital{
		Address:      h.Address.String(),
		Authority:    h.Authority.String(),
		Name:         h.Name,
		KmsRef:       h.KMSRef,
		RegisteredBy: h.RegisteredBy.String(),
		CreatedAt:    timestamppb.New(h.CreatedAt),
	}
}

func toWirePatient(p model.Patient) *wire.Patient {
	return &wire.Patient{
		Address:   p.Address.String(),
		Owner:     p.Owner.String(),
		Did:       p.DID,
		CreatedAt: timestamppb.New(p.CreatedAt),
		UpdatedAt: timestamppb.New(p.UpdatedAt),
	}
}

func toWireTrustee(t model.Trustee) *wire.Trustee {
	return &wire.Trustee{
		Address:   t.Address.String(),
		Patient:   t.Patient.String(),
		Trustee:   t.Trustee.String(),
		AddedBy:   t.AddedBy.String(),
		CreatedAt: timestamppb.New(t.CreatedAt),
		Revoked:   t.Revoked,
		RevokedAt: toWireTime(t.RevokedAt),
	}
}

func toWireGrant(g model.Grant) *wire.Grant {
	return &wire.Grant{
		Address:    g.Address.String(),
		Patient:    g.Patient.String(),
		Grantee:    g.Grantee.String(),
		Scope:      uint32(g.Scope),
		CreatedBy:  g.CreatedBy.String(),
		CreatedAt:  timestamppb.New(g.CreatedAt),
		ExpiresAt:  toWireTime(g.ExpiresAt),
		ViaTrustee: g.ViaTrustee,
		Revoked:    g.Revoked,
		RevokedAt:  toWireTime(g.RevokedAt),
	}
}

func toWireKey(k model.WrappedKey) *wire.WrappedKey {
	out := &wire.WrappedKey{Blob: k.Blob}
	if k.Algo != 0 {
		out.Algo = k.Algo.String()
	}
	return out
}

func toWireRecord(r model.Record) *wire.Record {
	return &wire.Record{
		Address:          r.Address.String(),
		Patient:          r.Patient.String(),
		Hospital:         r.Hospital.String(),
		Uploader:         r.Uploader.String(),
		CidEnc:           r.CIDEnc,
		MetaMime:         r.MetaMIME,
		MetaCid:          r.MetaCID,
		SizeBytes:        r.SizeBytes,
		Digest:           r.Digest.String(),
		EdekRoot:         toWireKey(r.RootKey),
		EdekPatient:      toWireKey(r.PatientKey),
		EdekHospital:     toWireKey(r.HospitalKey),
		KmsRef:           r.KMSRef,
		Seq:              r.Seq,
		EncVersion:       uint32(r.EncVersion),
		EncAlgo:          r.EncAlgo.String(),
		CreatedAt:        timestamppb.New(r.CreatedAt),
		UpdatedAt:        timestamppb.New(r.UpdatedAt),
		PatientIdentity:  r.PatientIdentity.String(),
		HospitalIdentity: r.HospitalIdentity.String(),
		Clinical: &wire.Clinical{
			HospitalId:   r.Clinical.HospitalID,
			HospitalName: r.Clinical.HospitalName,
			DoctorName:   r.Clinical.DoctorName,
			DoctorId:     r.Clinical.DoctorID,
			Diagnosis:    r.Clinical.Diagnosis,
			Keywords:     r.Clinical.Keywords,
			Description:  r.Clinical.Description,
		},
	}
}

func fromWireScope(scope uint32) (model.Scope, error) {
	if scope > math.MaxUint8 {
		return 0, model.NewFieldError("scope", model.ErrInvalidScope)
	}
	return model.Scope(scope), nil
}

func fromWireExpiry(req *wire.CreateGrantRequest) (model.Expiry, error) {
	switch {
	case req.ExpiresAt != nil && req.ExpiresInSeconds != nil:
		return model.Expiry{}, fmt.Errorf("%w: expires_at and expires_in_seconds are exclusive", model.ErrInvalidArgument)
	case req.ExpiresAt != nil:
		if err := req.ExpiresAt.CheckValid(); err != nil {
			return model.Expiry{}, model.NewFieldError("expires_at", model.ErrBadExpiry)
		}
		return model.ExpireAt(req.ExpiresAt.AsTime()), nil
	case req.ExpiresInSeconds != nil:
		expiry, err := model.ExpireAfterSeconds(req.GetExpiresInSeconds())
		if err != nil {
			return model.Expiry{}, model.NewFieldError("expires_in_seconds", err)
		}
		return expiry, nil
	default:
		return model.NoExpiry(), nil
	}
}

func fromWireKey(field string, k *wire.WrappedKey) (model.WrappedKey, error) {
	out := model.WrappedKey{Blob: k.GetBlob()}
	if k.GetAlgo() == "" {
		return out, nil
	}
	if err := out.Algo.UnmarshalText([]byte(k.GetAlgo())); err != nil {
		return model.WrappedKey{}, model.NewFieldError(field, err)
	}
	return out, nil
}

func fromWireCreateRecord(req *wire.CreateRecordRequest) (model.CreateRecordParams, error) {
	digest, err := model.ParseDigest(req.GetDigest())
	if err != nil {
		return model.CreateRecordParams{}, model.NewFieldError("digest", err)
	}

	rootKey, err := fromWireKey("edek_root", req.GetEdekRoot())
	if err != nil {
		return model.CreateRecordParams{}, err
	}
	patientKey, err := fromWireKey("edek_patient", req.GetEdekPatient())
	if err != nil {
		return model.CreateRecordParams{}, err
	}
	hospitalKey, err := fromWireKey("edek_hospital", req.GetEdekHospital())
	if err != nil {
		return model.CreateRecordParams{}, err
	}

	if req.GetEncVersion() > math.MaxUint16 {
		return model.CreateRecordParams{}, model.NewFieldError("enc_version",
			fmt.Errorf("%w: must fit in 16 bits", model.ErrInvalidArgument))
	}

	var encAlgo model.EncAlgo
	if req.GetEncAlgo() != "" {
		if err := encAlgo.UnmarshalText([]byte(req.GetEncAlgo())); err != nil {
			return model.CreateRecordParams{}, model.NewFieldError("enc_algo", err)
		}
	}

	clinical := req.GetClinical()
	return model.CreateRecordParams{
		Patient:     model.Identity(req.GetPatient()),
		Hospital:    model.Identity(req.GetHospital()),
		Seq:         req.GetSeq(),
		CIDEnc:      req.GetCidEnc(),
		MetaMIME:    req.GetMetaMime(),
		MetaCID:     req.GetMetaCid(),
		SizeBytes:   req.GetSizeBytes(),
		Digest:      digest,
		RootKey:     rootKey,
		PatientKey:  patientKey,
		HospitalKey: hospitalKey,
		KMSRef:      req.GetKmsRef(),
		EncVersion:  uint16(req.GetEncVersion()),
		EncAlgo:     encAlgo,
		Clinical: model.ClinicalInfo{
			HospitalID:   clinical.GetHospitalId(),
			HospitalName: clinical.GetHospitalName(),
			DoctorName:   clinical.GetDoctorName(),
			DoctorID:     clinical.GetDoctorId(),
			Diagnosis:    clinical.GetDiagnosis(),
			Keywords:     clinical.GetKeywords(),
			Description:  clinical.GetDescription(),
		},
	}, nil
}
