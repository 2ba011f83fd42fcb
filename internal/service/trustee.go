package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// TrusteeStore keeps the read-only proxies of each patient.
type TrusteeStore struct {
	core
}

func NewTrusteeStore(store model.Store, clock model.Clock, sink model.EventSink, logger *logger.Logger) *TrusteeStore {
	return &TrusteeStore{core: newCore(store, clock, sink, logger)}
}

// Add makes trustee a proxy of the patient owned by patientCaller. The
// caller is the patient itself; trustee consent is verified before Add runs.
// Adding an active trustee again succeeds without changes. A revoked trustee
// stays revoked.
func (s *TrusteeStore) Add(ctx context.Context, patientCaller model.Identity, trustee model.Identity) (model.Trustee, bool, error) {
	if err := requireIdentity("trustee", trustee); err != nil {
		return model.Trustee{}, false, err
	}
	if trustee == patientCaller {
		return model.Trustee{}, false, model.NewFieldError("trustee", fmt.Errorf("%w: patient cannot be its own trustee", model.ErrInvalidArgument))
	}

	var (
		record  model.Trustee
		created bool
	)
	err := s.execute(ctx, "trustee.add", func(tx model.Tx, now time.Time, emit emitFunc) error {
		if err := ensureNotPaused(ctx, tx); err != nil {
			return err
		}
		patient, err := loadPatient(ctx, tx, patientCaller)
		if err != nil {
			return err
		}

		addr := model.TrusteeAddress(patient.Address, trustee)
		record, err = tx.GetTrustee(ctx, addr)
		switch {
		case errors.Is(err, model.ErrNotFound):
			record = model.Trustee{
				Address:   addr,
				Patient:   patient.Address,
				Trustee:   trustee,
				AddedBy:   patientCaller,
				CreatedAt: now,
				Revoked:   false,
				RevokedAt: nil,
			}
			if err := tx.PutTrustee(ctx, record); err != nil {
				return fmt.Errorf("failed to put trustee: %w", err)
			}
			created = true
		case err != nil:
			return fmt.Errorf("failed to get trustee: %w", err)
		case record.Revoked:
			return fmt.Errorf("trustee %s: %w", trustee, model.ErrAlreadyRevoked)
		}

		emit(model.TrusteeAdded{
			TrusteeAccount: addr,
			Patient:        patient.Address,
			Trustee:        trustee,
			Created:        created,
			AddedAt:        now,
		})
		return nil
	})
	if err != nil {
		return model.Trustee{}, false, err
	}

	s.logger.Info("Trustee store: trustee added", "trustee", record.Address, "created", created)
	return record, created, nil
}

// Revoke permanently disables trustee for the patient owned by patient.
// Only the patient owner may revoke.
func (s *TrusteeStore) Revoke(ctx context.Context, caller model.Identity, patient model.Identity, trustee model.Identity) (model.Trustee, error) {
	var record model.Trustee
	err := s.execute(ctx, "trustee.revoke", func(tx model.Tx, now time.Time, emit emitFunc) error {
		p, err := loadPatient(ctx, tx, patient)
		if err != nil {
			return err
		}
		if caller != p.Owner {
			return model.ErrUnauthorized
		}

		record, err = tx.GetTrustee(ctx, model.TrusteeAddress(p.Address, trustee))
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("trustee %s: %w", trustee, model.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get trustee: %w", err)
		}
		if record.Revoked {
			return fmt.Errorf("trustee %s: %w", trustee, model.ErrAlreadyRevoked)
		}

		record.Revoked = true
		record.RevokedAt = timePtr(now)
		if err := tx.PutTrustee(ctx, record); err != nil {
			return fmt.Errorf("failed to put trustee: %w", err)
		}

		emit(model.TrusteeRevoked{
			TrusteeAccount: record.Address,
			Patient:        p.Address,
			Trustee:        trustee,
			RevokedBy:      caller,
			RevokedAt:      now,
		})
		return nil
	})
	if err != nil {
		return model.Trustee{}, err
	}

	s.logger.Info("Trustee store: trustee revoked", "trustee", record.Address)
	return record, nil
}

func (s *TrusteeStore) Get(ctx context.Context, patient model.Identity, trustee model.Identity) (model.Trustee, error) {
	var record model.Trustee
	err := s.view(ctx, func(tx model.Tx) error {
		var err error
		record, err = tx.GetTrustee(ctx, model.TrusteeAddress(model.PatientAddress(patient), trustee))
		return err
	})
	if err != nil {
		return model.Trustee{}, fmt.Errorf("failed to get trustee: %w", err)
	}
	return record, nil
}
