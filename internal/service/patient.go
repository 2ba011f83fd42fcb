package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

type PatientRegistry struct {
	core
}

func NewPatientRegistry(store model.Store, clock model.Clock, sink model.EventSink, logger *logger.Logger) *PatientRegistry {
	return &PatientRegistry{core: newCore(store, clock, sink, logger)}
}

// Upsert creates the patient profile of owner together with its sequence
// counter, or updates its DID. Only owner itself may do either.
func (s *PatientRegistry) Upsert(ctx context.Context, caller model.Identity, owner model.Identity, did string) (model.PatientUpsert, error) {
	if err := requireIdentity("owner", owner); err != nil {
		return model.PatientUpsert{}, err
	}
	if len(did) > model.MaxDIDLen {
		return model.PatientUpsert{}, model.NewFieldError("did", fmt.Errorf("%w: %d > %d bytes", model.ErrTooLong, len(did), model.MaxDIDLen))
	}

	res, err := s.upsert(ctx, caller, owner, did)
	if errors.Is(err, model.ErrAlreadyExists) {
		// A concurrent first upsert created the profile after this one looked
		// it up. The retry sees the row and takes the update path.
		res, err = s.upsert(ctx, caller, owner, did)
	}
	if err != nil {
		return model.PatientUpsert{}, err
	}

	s.logger.Info("Patient registry: patient upserted", "patient", res.Patient.Address, "created", res.Created)
	return res, nil
}

func (s *PatientRegistry) upsert(ctx context.Context, caller model.Identity, owner model.Identity, did string) (model.PatientUpsert, error) {
	var res model.PatientUpsert
	err := s.execute(ctx, "patient.upsert", func(tx model.Tx, now time.Time, emit emitFunc) error {
		if err := ensureNotPaused(ctx, tx); err != nil {
			return err
		}

		addr := model.PatientAddress(owner)
		patient, err := tx.GetPatient(ctx, addr)
		switch {
		case errors.Is(err, model.ErrNotFound):
			if caller != owner {
				return model.ErrUnauthorized
			}
			res, err = s.create(ctx, tx, addr, owner, did, now)
			if err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("failed to get patient: %w", err)
		default:
			if caller != patient.Owner {
				return model.ErrUnauthorized
			}
			patient.DID = did
			patient.UpdatedAt = now
			if err := tx.UpdatePatient(ctx, patient); err != nil {
				return fmt.Errorf("failed to update patient: %w", err)
			}
			seq, err := tx.GetSequence(ctx, model.SequenceAddress(addr))
			if err != nil {
				return fmt.Errorf("failed to get sequence: %w", err)
			}
			res = model.PatientUpsert{Patient: patient, Sequence: seq}
		}

		emit(model.PatientUpserted{
			Patient:   addr,
			Owner:     owner,
			Created:   res.Created,
			CreatedAt: res.Patient.CreatedAt,
			UpdatedAt: res.Patient.UpdatedAt,
		})
		return nil
	})
	return res, err
}

func (s *PatientRegistry) create(
	ctx context.Context,
	tx model.Tx,
	addr model.Address,
	owner model.Identity,
	did string,
	now time.Time,
) (model.PatientUpsert, error) {
	patient := model.Patient{
		Address:   addr,
		Owner:     owner,
		DID:       did,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.CreatePatient(ctx, patient); err != nil {
		return model.PatientUpsert{}, fmt.Errorf("failed to create patient: %w", err)
	}

	seq := model.SequenceCounter{
		Address: model.SequenceAddress(addr),
		Patient: addr,
		Next:    0,
	}
	if err := tx.CreateSequence(ctx, seq); err != nil {
		return model.PatientUpsert{}, fmt.Errorf("failed to create sequence: %w", err)
	}

	return model.PatientUpsert{Patient: patient, Sequence: seq, Created: true}, nil
}

func (s *PatientRegistry) Get(ctx context.Context, owner model.Identity) (model.Patient, error) {
	var patient model.Patient
	err := s.view(ctx, func(tx model.Tx) error {
		var err error
		patient, err = loadPatient(ctx, tx, owner)
		return err
	})
	if err != nil {
		return model.Patient{}, err
	}
	return patient, nil
}

// Sequence returns the counter of owner. Its Next value is the seq the next
// record must carry.
func (s *PatientRegistry) Sequence(ctx context.Context, owner model.Identity) (model.SequenceCounter, error) {
	var seq model.SequenceCounter
	err := s.view(ctx, func(tx model.Tx) error {
		patient, err := loadPatient(ctx, tx, owner)
		if err != nil {
			return err
		}
		seq, err = tx.GetSequence(ctx, model.SequenceAddress(patient.Address))
		if err != nil {
			return fmt.Errorf("failed to get sequence: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.SequenceCounter{}, err
	}
	return seq, nil
}
