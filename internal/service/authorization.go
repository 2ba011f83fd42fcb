package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/model"
)

// grantAuthority is the relationship of a grant caller to the patient,
// resolved once per call.
type grantAuthority interface {
	actor() model.Identity
	permits(scope model.Scope) error
	trustee() (model.Identity, bool)
}

// ownerAuthority is the patient acting for itself. It may grant any scope.
type ownerAuthority struct {
	owner model.Identity
}

func (a ownerAuthority) actor() model.Identity           { return a.owner }
func (a ownerAuthority) permits(model.Scope) error       { return nil }
func (a ownerAuthority) trustee() (model.Identity, bool) { return "", false }

// trusteeAuthority is an active trustee acting as a read-only proxy.
type trusteeAuthority struct {
	record model.Trustee
}

func (a trusteeAuthority) actor() model.Identity { return a.record.Trustee }

func (a trusteeAuthority) permits(scope model.Scope) error {
	if scope != model.ScopeRead {
		return model.ErrReadOnlyRestriction
	}
	return nil
}

func (a trusteeAuthority) trustee() (model.Identity, bool) { return a.record.Trustee, true }

func resolveGrantAuthority(ctx context.Context, tx model.Tx, caller model.Identity, patient model.Patient) (grantAuthority, error) {
	if caller == patient.Owner {
		return ownerAuthority{owner: caller}, nil
	}

	record, err := tx.GetTrustee(ctx, model.TrusteeAddress(patient.Address, caller))
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrUnauthorizedGrant
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trustee: %w", err)
	}
	if record.Revoked || record.Patient != patient.Address {
		return nil, model.ErrUnauthorizedGrant
	}
	return trusteeAuthority{record: record}, nil
}

// usableGrant finds a grant giving grantee every bit of want over patient.
// The exact scope slot is consulted first, then the combined scopes that
// contain it. When no slot is usable the error of the first existing slot is
// returned, or ErrGrantMismatch when none exists.
func usableGrant(
	ctx context.Context,
	tx model.Tx,
	patient model.Address,
	grantee model.Identity,
	want model.Scope,
	now time.Time,
) (model.Grant, error) {
	var firstErr error
	for _, scope := range want.Supersets() {
		g, err := tx.GetGrant(ctx, model.GrantAddress(patient, grantee, scope))
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return model.Grant{}, fmt.Errorf("failed to get grant: %w", err)
		}
		if err := g.Usable(patient, grantee, now); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return g, nil
	}

	if firstErr != nil {
		return model.Grant{}, firstErr
	}
	return model.Grant{}, model.ErrGrantMismatch
}
