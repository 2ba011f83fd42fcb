package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// GrantStore issues and revokes scoped authorizations over patient data.
type GrantStore struct {
	core
}

func NewGrantStore(store model.Store, clock model.Clock, sink model.EventSink, logger *logger.Logger) *GrantStore {
	return &GrantStore{core: newCore(store, clock, sink, logger)}
}

// Grant creates or overwrites the grant slot (patient, grantee, scope).
// The patient owner may grant any scope; an active trustee may grant READ
// only. Overwriting a slot resets its creator, timestamps, expiry and
// revocation.
func (s *GrantStore) Grant(ctx context.Context, caller model.Identity, params model.GrantParams) (model.Grant, error) {
	var grant model.Grant
	err := s.execute(ctx, "grant.create", func(tx model.Tx, now time.Time, emit emitFunc) error {
		if _, err := activeConfig(ctx, tx); err != nil {
			return err
		}
		if !params.Scope.Valid() {
			return model.ErrInvalidScope
		}
		if err := requireIdentity("grantee", params.Grantee); err != nil {
			return err
		}

		patient, err := loadPatient(ctx, tx, params.Patient)
		if err != nil {
			return err
		}

		authority, err := resolveGrantAuthority(ctx, tx, caller, patient)
		if err != nil {
			return err
		}
		if err := authority.permits(params.Scope); err != nil {
			return err
		}

		expiresAt, err := params.Expiry.Resolve(now)
		if err != nil {
			return err
		}

		addr := model.GrantAddress(patient.Address, params.Grantee, params.Scope)
		trustee, viaTrustee := authority.trustee()
		if viaTrustee {
			existing, err := tx.GetGrant(ctx, addr)
			if err != nil && !errors.Is(err, model.ErrNotFound) {
				return fmt.Errorf("failed to get grant: %w", err)
			}
			if err == nil && existing.Revoked {
				return model.ErrUnauthorizedGrant
			}
		}

		grant = model.Grant{
			Address:    addr,
			Patient:    patient.Address,
			Grantee:    params.Grantee,
			Scope:      params.Scope,
			CreatedBy:  authority.actor(),
			CreatedAt:  now,
			ExpiresAt:  expiresAt,
			ViaTrustee: viaTrustee,
			Revoked:    false,
			RevokedAt:  nil,
		}
		if err := tx.PutGrant(ctx, grant); err != nil {
			return fmt.Errorf("failed to put grant: %w", err)
		}

		created := model.GrantCreated{
			Grant:     addr,
			Patient:   patient.Address,
			Grantee:   params.Grantee,
			Scope:     params.Scope,
			ExpiresAt: expiresAt,
			CreatedBy: grant.CreatedBy,
			CreatedAt: now,
		}
		if viaTrustee {
			emit(model.GrantCreatedByTrustee{GrantCreated: created, Trustee: trustee})
		} else {
			emit(created)
		}
		return nil
	})
	if err != nil {
		return model.Grant{}, err
	}

	s.logger.Info("Grant store: grant created",
		"grant", grant.Address,
		"scope", grant.Scope.String(),
		"via_trustee", grant.ViaTrustee,
	)
	return grant, nil
}

// Revoke permanently disables the grant slot (patient, grantee, scope).
// Only the patient owner may revoke.
func (s *GrantStore) Revoke(
	ctx context.Context,
	caller model.Identity,
	patient model.Identity,
	grantee model.Identity,
	scope model.Scope,
) (model.Grant, error) {
	var grant model.Grant
	err := s.execute(ctx, "grant.revoke", func(tx model.Tx, now time.Time, emit emitFunc) error {
		p, err := loadPatient(ctx, tx, patient)
		if err != nil {
			return err
		}
		if caller != p.Owner {
			return model.ErrUnauthorized
		}
		if !scope.Valid() {
			return model.ErrInvalidScope
		}

		grant, err = tx.GetGrant(ctx, model.GrantAddress(p.Address, grantee, scope))
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("grant %s/%s: %w", grantee, scope, model.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get grant: %w", err)
		}
		if grant.Revoked {
			return model.ErrAlreadyRevoked
		}

		grant.Revoked = true
		grant.RevokedAt = timePtr(now)
		if err := tx.PutGrant(ctx, grant); err != nil {
			return fmt.Errorf("failed to put grant: %w", err)
		}

		emit(model.GrantRevoked{
			Grant:     grant.Address,
			Patient:   p.Address,
			Grantee:   grantee,
			Scope:     scope,
			RevokedBy: caller,
			RevokedAt: now,
		})
		return nil
	})
	if err != nil {
		return model.Grant{}, err
	}

	s.logger.Info("Grant store: grant revoked", "grant", grant.Address)
	return grant, nil
}

func (s *GrantStore) Get(ctx context.Context, patient model.Identity, grantee model.Identity, scope model.Scope) (model.Grant, error) {
	if !scope.Valid() {
		return model.Grant{}, model.ErrInvalidScope
	}

	var grant model.Grant
	err := s.view(ctx, func(tx model.Tx) error {
		var err error
		grant, err = tx.GetGrant(ctx, model.GrantAddress(model.PatientAddress(patient), grantee, scope))
		return err
	})
	if err != nil {
		return model.Grant{}, fmt.Errorf("failed to get grant: %w", err)
	}
	return grant, nil
}
