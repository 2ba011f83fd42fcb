package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// RecordLedger appends encrypted record envelopes to per-patient lanes and
// audits their reads.
type RecordLedger struct {
	core
}

func NewRecordLedger(store model.Store, clock model.Clock, sink model.EventSink, logger *logger.Logger) *RecordLedger {
	return &RecordLedger{core: newCore(store, clock, sink, logger)}
}

// Create appends a record at params.Seq to the patient lane. The caller must
// be the hospital authority holding a usable WRITE grant and params.Seq must
// equal the lane counter.
func (s *RecordLedger) Create(ctx context.Context, caller model.Identity, params model.CreateRecordParams) (model.Record, error) {
	var record model.Record
	err := s.execute(ctx, "record.create", func(tx model.Tx, now time.Time, emit emitFunc) error {
		if _, err := activeConfig(ctx, tx); err != nil {
			return err
		}

		hospital, err := tx.GetHospital(ctx, model.HospitalAddress(params.Hospital))
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("hospital %s: %w", params.Hospital, model.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get hospital: %w", err)
		}
		if caller != hospital.Authority {
			return model.ErrUploaderMismatch
		}

		patient, err := loadPatient(ctx, tx, params.Patient)
		if err != nil {
			return err
		}
		if _, err := usableGrant(ctx, tx, patient.Address, hospital.Authority, model.ScopeWrite, now); err != nil {
			return err
		}

		record, err = buildRecord(params)
		if err != nil {
			return err
		}

		counter, err := tx.GetSequence(ctx, model.SequenceAddress(patient.Address))
		if err != nil {
			return fmt.Errorf("failed to get sequence: %w", err)
		}
		if counter.Patient != patient.Address {
			return model.ErrBadSeq
		}
		if err := counter.Advance(params.Seq); err != nil {
			return err
		}

		record.Address = model.RecordAddress(patient.Address, params.Seq)
		record.Patient = patient.Address
		record.Hospital = hospital.Address
		record.Uploader = caller
		record.Seq = params.Seq
		record.CreatedAt = now
		record.UpdatedAt = now
		record.PatientIdentity = patient.Owner
		record.HospitalIdentity = hospital.Authority

		if err := tx.UpdateSequence(ctx, counter); err != nil {
			return fmt.Errorf("failed to update sequence: %w", err)
		}
		if err := tx.CreateRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}

		emit(model.RecordCreated{
			Record:     record.Address,
			Patient:    patient.Address,
			Hospital:   hospital.Address,
			Uploader:   caller,
			Seq:        record.Seq,
			EncVersion: record.EncVersion,
			CreatedAt:  now,
		})
		return nil
	})
	if err != nil {
		return model.Record{}, err
	}

	s.logger.Info("Record ledger: record created", "record", record.Address, "seq", record.Seq)
	return record, nil
}

// Read returns the record at (patient, seq) to a reader holding a usable READ
// grant and emits an audit event. Ledger state is not changed.
func (s *RecordLedger) Read(ctx context.Context, reader model.Identity, patient model.Identity, seq uint64) (model.Record, error) {
	var record model.Record
	err := s.execute(ctx, "record.read", func(tx model.Tx, now time.Time, emit emitFunc) error {
		if _, err := activeConfig(ctx, tx); err != nil {
			return err
		}

		patientAddr := model.PatientAddress(patient)
		var err error
		record, err = tx.GetRecord(ctx, model.RecordAddress(patientAddr, seq))
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("record %d: %w", seq, model.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get record: %w", err)
		}
		if record.Patient != patientAddr {
			return model.ErrGrantMismatch
		}

		counter, err := tx.GetSequence(ctx, model.SequenceAddress(patientAddr))
		if err != nil {
			return fmt.Errorf("failed to get sequence: %w", err)
		}
		if counter.Patient != patientAddr {
			return model.ErrBadSeq
		}

		if _, err := usableGrant(ctx, tx, patientAddr, reader, model.ScopeRead, now); err != nil {
			return err
		}

		emit(model.RecordRead{
			Record:   record.Address,
			Patient:  patientAddr,
			Hospital: record.Hospital,
			Reader:   reader,
			Seq:      seq,
			At:       now,
		})
		return nil
	})
	if err != nil {
		return model.Record{}, err
	}

	s.logger.Info("Record ledger: record read", "record", record.Address, "reader", reader)
	return record, nil
}

// buildRecord validates the payload of params and copies it into a record.
func buildRecord(params model.CreateRecordParams) (model.Record, error) {
	var (
		r   model.Record
		err error
	)

	fields := []struct {
		name     string
		value    string
		max      int
		required bool
		dst      *string
	}{
		{"cid_enc", params.CIDEnc, model.MaxCIDLen, true, &r.CIDEnc},
		{"meta_mime", params.MetaMIME, model.MaxMIMELen, true, &r.MetaMIME},
		{"meta_cid", params.MetaCID, model.MaxCIDLen, false, &r.MetaCID},
		{"kms_ref", params.KMSRef, model.MaxKMSRefLen, false, &r.KMSRef},
		{"hospital_id", params.Clinical.HospitalID, model.MaxPartyIDLen, false, &r.Clinical.HospitalID},
		{"hospital_name", params.Clinical.HospitalName, model.MaxHospitalNameLen, false, &r.Clinical.HospitalName},
		{"doctor_name", params.Clinical.DoctorName, model.MaxDoctorNameLen, false, &r.Clinical.DoctorName},
		{"doctor_id", params.Clinical.DoctorID, model.MaxPartyIDLen, false, &r.Clinical.DoctorID},
		{"diagnosis", params.Clinical.Diagnosis, model.MaxDiagnosisLen, false, &r.Clinical.Diagnosis},
		{"keywords", params.Clinical.Keywords, model.MaxKeywordsLen, false, &r.Clinical.Keywords},
		{"description", params.Clinical.Description, model.MaxDescriptionLen, false, &r.Clinical.Description},
	}
	for _, f := range fields {
		*f.dst, err = boundedString(f.name, f.value, f.max, f.required)
		if err != nil {
			return model.Record{}, err
		}
	}

	if params.SizeBytes == 0 {
		return model.Record{}, model.ErrSizeZero
	}

	if err := validateWrappedKey("edek_patient", params.PatientKey, true); err != nil {
		return model.Record{}, err
	}
	if err := validateWrappedKey("edek_hospital", params.HospitalKey, true); err != nil {
		return model.Record{}, err
	}
	if err := validateWrappedKey("edek_root", params.RootKey, false); err != nil {
		return model.Record{}, err
	}

	if len(params.RootKey.Blob) > 0 || params.RootKey.Algo != 0 {
		needsRef, err := params.RootKey.Algo.RequiresKMSRef()
		if err != nil {
			return model.Record{}, model.NewFieldError("edek_root", err)
		}
		if needsRef && r.KMSRef == "" {
			return model.Record{}, model.ErrKMSRefRequired
		}
	}

	if err := params.EncAlgo.Validate(); err != nil {
		return model.Record{}, model.NewFieldError("enc_algo", err)
	}

	r.SizeBytes = params.SizeBytes
	r.Digest = params.Digest
	r.RootKey = params.RootKey
	r.PatientKey = params.PatientKey
	r.HospitalKey = params.HospitalKey
	r.EncVersion = params.EncVersion
	r.EncAlgo = params.EncAlgo
	return r, nil
}

func validateWrappedKey(field string, key model.WrappedKey, required bool) error {
	if len(key.Blob) == 0 {
		if required {
			return model.NewFieldError(field, model.ErrEdekMissing)
		}
		return nil
	}
	if len(key.Blob) > model.MaxWrappedKeyBytes {
		return model.NewFieldError(field, fmt.Errorf("%w: %d > %d bytes", model.ErrTooLong, len(key.Blob), model.MaxWrappedKeyBytes))
	}
	if _, err := key.Algo.RequiresKMSRef(); err != nil {
		return model.NewFieldError(field, err)
	}
	return nil
}
