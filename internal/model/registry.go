package model

import (
	"math"
	"time"
)

// Length bounds, in bytes after trimming.
const (
	MaxNamespaceLen    = 128
	MaxHospitalNameLen = 64
	MaxKMSRefLen       = 128
	MaxDIDLen          = 128
)

// LedgerConfig is the process-wide singleton gating every mutation.
type LedgerConfig struct {
	Authority Identity
	Paused    bool
	Namespace string
	CreatedAt time.Time
}

// Hospital is a registered record-producing organization.
type Hospital struct {
	Address      Address
	Authority    Identity
	Name         string
	KMSRef       string
	RegisteredBy Identity
	CreatedAt    time.Time
}

// Patient is a record owner profile.
type Patient struct {
	Address   Address
	Owner     Identity
	DID       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SequenceCounter orders the records of one patient.
type SequenceCounter struct {
	Address Address
	Patient Address
	Next    uint64
}

// Advance checks seq against the counter and moves it forward by one.
func (c *SequenceCounter) Advance(seq uint64) error {
	if seq != c.Next {
		return ErrBadSeq
	}
	if c.Next == math.MaxUint64 {
		return ErrSeqOverflow
	}
	c.Next++
	return nil
}

// PatientUpsert is the outcome of a patient create-or-update.
type PatientUpsert struct {
	Patient  Patient
	Sequence SequenceCounter
	Created  bool
}
