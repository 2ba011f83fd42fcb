package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names a committed ledger state change.
type EventType string

const (
	EventConfigInitialized     EventType = "ConfigInitialized"
	EventProgramPauseUpdated   EventType = "ProgramPauseUpdated"
	EventHospitalRegistered    EventType = "HospitalRegistered"
	EventPatientUpserted       EventType = "PatientUpserted"
	EventTrusteeAdded          EventType = "TrusteeAdded"
	EventTrusteeRevoked        EventType = "TrusteeRevoked"
	EventGrantCreated          EventType = "GrantCreated"
	EventGrantCreatedByTrustee EventType = "GrantCreatedByTrustee"
	EventGrantRevoked          EventType = "GrantRevoked"
	EventRecordCreated         EventType = "RecordCreated"
	EventRecordRead            EventType = "RecordRead"
)

// EventPayload is implemented by every typed event body.
type EventPayload interface {
	EventType() EventType
}

// Event envelopes a payload with its identity and commit time.
type Event struct {
	ID      uuid.UUID
	Type    EventType
	At      time.Time
	Payload EventPayload
}

// NewEvent wraps payload into an Event stamped at.
func NewEvent(payload EventPayload, at time.Time) Event {
	return Event{
		ID:      uuid.New(),
		Type:    payload.EventType(),
		At:      at,
		Payload: payload,
	}
}

// EventSink receives events after the operation that produced them committed.
type EventSink interface {
	Publish(ctx context.Context, events ...Event) error
}

type ConfigInitialized struct {
	Authority Identity  `json:"authority"`
	Namespace string    `json:"namespace"`
	CreatedAt time.Time `json:"created_at"`
}

func (ConfigInitialized) EventType() EventType { return EventConfigInitialized }

type ProgramPauseUpdated struct {
	Paused bool      `json:"paused"`
	SetBy  Identity  `json:"set_by"`
	At     time.Time `json:"at"`
}

func (ProgramPauseUpdated) EventType() EventType { return EventProgramPauseUpdated }

type HospitalRegistered struct {
	Hospital          Address   `json:"hospital"`
	HospitalAuthority Identity  `json:"hospital_authority"`
	Name              string    `json:"name"`
	KMSRef            string    `json:"kms_ref"`
	RegisteredBy      Identity  `json:"registered_by"`
	CreatedAt         time.Time `json:"created_at"`
}

func (HospitalRegistered) EventType() EventType { return EventHospitalRegistered }

type PatientUpserted struct {
	Patient   Address   `json:"patient"`
	Owner     Identity  `json:"owner"`
	Created   bool      `json:"created"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PatientUpserted) EventType() EventType { return EventPatientUpserted }

type TrusteeAdded struct {
	TrusteeAccount Address   `json:"trustee_account"`
	Patient        Address   `json:"patient"`
	Trustee        Identity  `json:"trustee"`
	Created        bool      `json:"created"`
	AddedAt        time.Time `json:"added_at"`
}

func (TrusteeAdded) EventType() EventType { return EventTrusteeAdded }

type TrusteeRevoked struct {
	TrusteeAccount Address   `json:"trustee_account"`
	Patient        Address   `json:"patient"`
	Trustee        Identity  `json:"trustee"`
	RevokedBy      Identity  `json:"revoked_by"`
	RevokedAt      time.Time `json:"revoked_at"`
}

func (TrusteeRevoked) EventType() EventType { return EventTrusteeRevoked }

type GrantCreated struct {
	Grant     Address    `json:"grant"`
	Patient   Address    `json:"patient"`
	Grantee   Identity   `json:"grantee"`
	Scope     Scope      `json:"scope"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedBy Identity   `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

func (GrantCreated) EventType() EventType { return EventGrantCreated }

type GrantCreatedByTrustee struct {
	GrantCreated
	Trustee Identity `json:"trustee"`
}

func (GrantCreatedByTrustee) EventType() EventType { return EventGrantCreatedByTrustee }

type GrantRevoked struct {
	Grant     Address   `json:"grant"`
	Patient   Address   `json:"patient"`
	Grantee   Identity  `json:"grantee"`
	Scope     Scope     `json:"scope"`
	RevokedBy Identity  `json:"revoked_by"`
	RevokedAt time.Time `json:"revoked_at"`
}

func (GrantRevoked) EventType() EventType { return EventGrantRevoked }

type RecordCreated struct {
	Record     Address   `json:"record"`
	Patient    Address   `json:"patient"`
	Hospital   Address   `json:"hospital"`
	Uploader   Identity  `json:"uploader"`
	Seq        uint64    `json:"seq"`
	EncVersion uint16    `json:"enc_version"`
	CreatedAt  time.Time `json:"created_at"`
}

func (RecordCreated) EventType() EventType { return EventRecordCreated }

type RecordRead struct {
	Record   Address   `json:"record"`
	Patient  Address   `json:"patient"`
	Hospital Address   `json:"hospital"`
	Reader   Identity  `json:"reader"`
	Seq      uint64    `json:"seq"`
	At       time.Time `json:"at"`
}

func (RecordRead) EventType() EventType { return EventRecordRead }
