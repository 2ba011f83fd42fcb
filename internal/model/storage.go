package model

import (
	"context"
	"time"
)

// Store runs ledger operations as atomic units.
//
// WithinTx commits every write made through tx when fn returns nil and
// discards all of them otherwise. Implementations serialize transactions that
// touch the same entity so read-modify-write sequences are safe.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the entity view of a single transaction. Getters return ErrNotFound
// for absent entities and Create* returns ErrAlreadyExists on collision.
type Tx interface {
	// GetConfig takes a shared lock on the config. GetConfigForUpdate takes
	// an exclusive one and must precede UpdateConfig.
	GetConfig(ctx context.Context) (LedgerConfig, error)
	GetConfigForUpdate(ctx context.Context) (LedgerConfig, error)
	CreateConfig(ctx context.Context, cfg LedgerConfig) error
	UpdateConfig(ctx context.Context, cfg LedgerConfig) error

	GetHospital(ctx context.Context, addr Address) (Hospital, error)
	CreateHospital(ctx context.Context, h Hospital) error

	GetPatient(ctx context.Context, addr Address) (Patient, error)
	CreatePatient(ctx context.Context, p Patient) error
	UpdatePatient(ctx context.Context, p Patient) error

	GetSequence(ctx context.Context, addr Address) (SequenceCounter, error)
	CreateSequence(ctx context.Context, c SequenceCounter) error
	UpdateSequence(ctx context.Context, c SequenceCounter) error

	GetTrustee(ctx context.Context, addr Address) (Trustee, error)
	PutTrustee(ctx context.Context, t Trustee) error

	GetGrant(ctx context.Context, addr Address) (Grant, error)
	PutGrant(ctx context.Context, g Grant) error

	GetRecord(ctx context.Context, addr Address) (Record, error)
	CreateRecord(ctx context.Context, r Record) error

	// AppendEvent writes ev to the outbox as part of the transaction.
	AppendEvent(ctx context.Context, ev Event) error
}

// OutboxEvent is a committed event with its position in the outbox.
type OutboxEvent struct {
	Position int64
	Event    Event
}

// Outbox reads committed events in commit order.
type Outbox interface {
	// EventsAfter returns up to limit events with a position greater than after.
	EventsAfter(ctx context.Context, after int64, limit int) ([]OutboxEvent, error)
}

// ObjectStore keeps immutable blobs by key.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Clock is the ledger time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock with second precision in UTC.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
