package model

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Identity is a verified caller or party identity (a wallet public key in
// its textual form). The ledger never interprets it beyond equality.
type Identity string

// String implements fmt.Stringer.
func (i Identity) String() string { return string(i) }

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool { return strings.TrimSpace(string(i)) == "" }

// Address seeds. Changing any of them breaks compatibility with persisted data.
const (
	SeedConfig     = "config"
	SeedHospital   = "hospital"
	SeedPatient    = "patient"
	SeedPatientSeq = "patient_seq"
	SeedTrustee    = "trustee"
	SeedGrant      = "grant"
	SeedRecord     = "record"
)

// Address is the deterministic storage key of a ledger entity.
type Address [32]byte

// DeriveAddress hashes the seeds in order into an entity address.
func DeriveAddress(seeds ...[]byte) Address {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// String returns the lowercase hex form of the address.
func (a Address) String() string { return hex.EncodeToString(a[:]) }

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool { return a == Address{} }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress parses a hex encoded address.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("%w: address: %v", ErrInvalidArgument, err)
	}
	if len(b) != len(a) {
		return a, fmt.Errorf("%w: address must be %d bytes, got %d", ErrInvalidArgument, len(a), len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ConfigAddress is the address of the config singleton.
func ConfigAddress() Address {
	return DeriveAddress([]byte(SeedConfig))
}

// HospitalAddress derives the hospital address for its signing authority.
func HospitalAddress(authority Identity) Address {
	return DeriveAddress([]byte(SeedHospital), []byte(authority))
}

// PatientAddress derives the patient address for its owner.
func PatientAddress(owner Identity) Address {
	return DeriveAddress([]byte(SeedPatient), []byte(owner))
}

// SequenceAddress derives the sequence counter address of a patient.
func SequenceAddress(patient Address) Address {
	return DeriveAddress([]byte(SeedPatientSeq), patient[:])
}

// TrusteeAddress derives the (patient, trustee) slot address.
func TrusteeAddress(patient Address, trustee Identity) Address {
	return DeriveAddress([]byte(SeedTrustee), patient[:], []byte(trustee))
}

// GrantAddress derives the (patient, grantee, scope) slot address.
func GrantAddress(patient Address, grantee Identity, scope Scope) Address {
	return DeriveAddress([]byte(SeedGrant), patient[:], []byte(grantee), []byte{byte(scope)})
}

// RecordAddress derives the address of the record at seq in a patient lane.
func RecordAddress(patient Address, seq uint64) Address {
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], seq)
	return DeriveAddress([]byte(SeedRecord), patient[:], le[:])
}
