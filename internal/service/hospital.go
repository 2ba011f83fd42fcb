package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

type HospitalRegistry struct {
	core
}

func NewHospitalRegistry(store model.Store, clock model.Clock, sink model.EventSink, logger *logger.Logger) *HospitalRegistry {
	return &HospitalRegistry{core: newCore(store, clock, sink, logger)}
}

// Register records a hospital identified by authority. Only the config
// authority may register hospitals.
func (s *HospitalRegistry) Register(
	ctx context.Context,
	caller model.Identity,
	authority model.Identity,
	name string,
	kmsRef string,
) (model.Hospital, error) {
	var hospital model.Hospital
	err := s.execute(ctx, "hospital.register", func(tx model.Tx, now time.Time, emit emitFunc) error {
		cfg, err := tx.GetConfig(ctx)
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotInitialized
		}
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}
		if caller != cfg.Authority {
			return model.ErrUnauthorized
		}
		if cfg.Paused {
			return model.ErrPaused
		}

		if err := requireIdentity("hospital", authority); err != nil {
			return err
		}
		name, err := boundedString("name", name, model.MaxHospitalNameLen, true)
		if err != nil {
			return err
		}
		kmsRef, err := boundedString("kms_ref", kmsRef, model.MaxKMSRefLen, true)
		if err != nil {
			return err
		}

		hospital = model.Hospital{
			Address:      model.HospitalAddress(authority),
			Authority:    authority,
			Name:         name,
			KMSRef:       kmsRef,
			RegisteredBy: caller,
			CreatedAt:    now,
		}
		if err := tx.CreateHospital(ctx, hospital); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				return fmt.Errorf("hospital %s: %w", authority, model.ErrAlreadyExists)
			}
			return fmt.Errorf("failed to create hospital: %w", err)
		}

		emit(model.HospitalRegistered{
			Hospital:          hospital.Address,
			HospitalAuthority: authority,
			Name:              name,
			KMSRef:            kmsRef,
			RegisteredBy:      caller,
			CreatedAt:         now,
		})
		return nil
	})
	if err != nil {
		return model.Hospital{}, err
	}

	s.logger.Info("Hospital registry: hospital registered", "hospital", hospital.Address, "authority", authority)
	return hospital, nil
}

func (s *HospitalRegistry) Get(ctx context.Context, authority model.Identity) (model.Hospital, error) {
	var hospital model.Hospital
	err := s.view(ctx, func(tx model.Tx) error {
		var err error
		hospital, err = tx.GetHospital(ctx, model.HospitalAddress(authority))
		return err
	})
	if err != nil {
		return model.Hospital{}, fmt.Errorf("failed to get hospital: %w", err)
	}
	return hospital, nil
}
