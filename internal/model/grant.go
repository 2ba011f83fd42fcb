package model

import (
	"math"
	"strings"
	"time"
)

// Scope is a bitmask of permissions carried by a grant.
type Scope uint8

const (
	ScopeRead  Scope = 1 << 0
	ScopeWrite Scope = 1 << 1
	ScopeAdmin Scope = 1 << 2

	scopeAll = ScopeRead | ScopeWrite | ScopeAdmin
)

// Valid reports whether the scope is non-zero and has no unknown bits.
func (s Scope) Valid() bool {
	return s != 0 && s&^scopeAll == 0
}

// Has reports whether every bit of other is present in s.
func (s Scope) Has(other Scope) bool {
	return other != 0 && s&other == other
}

// String renders the scope as READ|WRITE|ADMIN.
func (s Scope) String() string {
	var parts []string
	if s&ScopeRead != 0 {
		parts = append(parts, "READ")
	}
	if s&ScopeWrite != 0 {
		parts = append(parts, "WRITE")
	}
	if s&ScopeAdmin != 0 {
		parts = append(parts, "ADMIN")
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// Supersets returns every valid scope containing all bits of s, starting
// with s itself.
func (s Scope) Supersets() []Scope {
	out := []Scope{s}
	for c := Scope(1); c <= scopeAll; c++ {
		if c != s && c.Has(s) {
			out = append(out, c)
		}
	}
	return out
}

// Grant authorizes one grantee to act with Scope over one patient's data.
type Grant struct {
	Address    Address
	Patient    Address
	Grantee    Identity
	Scope      Scope
	CreatedBy  Identity
	CreatedAt  time.Time
	ExpiresAt  *time.Time
	ViaTrustee bool
	Revoked    bool
	RevokedAt  *time.Time
}

// Usable checks the grant against the requested patient and grantee at now.
func (g Grant) Usable(patient Address, grantee Identity, now time.Time) error {
	if g.Revoked {
		return ErrGrantRevoked
	}
	if g.Patient != patient || g.Grantee != grantee {
		return ErrGrantMismatch
	}
	if g.ExpiresAt != nil && !g.ExpiresAt.After(now) {
		return ErrGrantExpired
	}
	return nil
}

// Trustee is a delegated read-only proxy of a patient.
type Trustee struct {
	Address   Address
	Patient   Address
	Trustee   Identity
	AddedBy   Identity
	CreatedAt time.Time
	Revoked   bool
	RevokedAt *time.Time
}

type expiryKind uint8

const (
	expiryNever expiryKind = iota
	expiryAt
	expiryAfter
)

// maxExpirySeconds is the largest relative expiry representable as a
// time.Duration.
const maxExpirySeconds = int64(math.MaxInt64 / int64(time.Second))

// Expiry describes when a grant stops being usable.
type Expiry struct {
	kind  expiryKind
	at    time.Time
	after time.Duration
}

// NoExpiry is a grant that never expires.
func NoExpiry() Expiry { return Expiry{kind: expiryNever} }

// ExpireAt expires the grant at an absolute time.
func ExpireAt(t time.Time) Expiry { return Expiry{kind: expiryAt, at: t} }

// ExpireAfter expires the grant d after it is created.
func ExpireAfter(d time.Duration) Expiry { return Expiry{kind: expiryAfter, after: d} }

// ExpireAfterSeconds expires the grant secs seconds after it is created. It
// rejects non-positive values and values that overflow a time.Duration.
func ExpireAfterSeconds(secs int64) (Expiry, error) {
	if secs <= 0 || secs > maxExpirySeconds {
		return Expiry{}, ErrBadExpiry
	}
	return ExpireAfter(time.Duration(secs) * time.Second), nil
}

// Resolve returns the absolute expiry for a grant created at now.
func (e Expiry) Resolve(now time.Time) (*time.Time, error) {
	switch e.kind {
	case expiryNever:
		return nil, nil
	case expiryAt:
		if !e.at.After(now) {
			return nil, ErrBadExpiry
		}
		at := e.at.UTC()
		return &at, nil
	case expiryAfter:
		if e.after <= 0 {
			return nil, ErrBadExpiry
		}
		at := now.Add(e.after)
		return &at, nil
	default:
		return nil, ErrBadExpiry
	}
}

// GrantParams contains parameters to create or overwrite a grant.
type GrantParams struct {
	Patient Identity
	Grantee Identity
	Scope   Scope
	Expiry  Expiry
}
