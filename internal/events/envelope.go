// Package events delivers committed ledger events to observers.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/carechain-server/internal/model"
)

type envelope struct {
	ID      uuid.UUID       `json:"id"`
	Type    model.EventType `json:"type"`
	At      time.Time       `json:"at"`
	Payload json.RawMessage `json:"payload"`
}

// Encode renders ev as a self-describing JSON document.
func Encode(ev model.Event) ([]byte, error) {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", ev.Type, err)
	}
	return json.Marshal(envelope{ID: ev.ID, Type: ev.Type, At: ev.At, Payload: payload})
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (model.Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	payload, err := DecodePayload(env.Type, env.Payload)
	if err != nil {
		return model.Event{}, err
	}
	return model.Event{ID: env.ID, Type: env.Type, At: env.At, Payload: payload}, nil
}

// DecodePayload parses the JSON body of an event of type t.
func DecodePayload(t model.EventType, raw []byte) (model.EventPayload, error) {
	var p model.EventPayload
	switch t {
	case model.EventConfigInitialized:
		p = &model.ConfigInitialized{}
	case model.EventProgramPauseUpdated:
		p = &model.ProgramPauseUpdated{}
	case model.EventHospitalRegistered:
		p = &model.HospitalRegistered{}
	case model.EventPatientUpserted:
		p = &model.PatientUpserted{}
	case model.EventTrusteeAdded:
		p = &model.TrusteeAdded{}
	case model.EventTrusteeRevoked:
		p = &model.TrusteeRevoked{}
	case model.EventGrantCreated:
		p = &model.GrantCreated{}
	case model.EventGrantCreatedByTrustee:
		p = &model.GrantCreatedByTrustee{}
	case model.EventGrantRevoked:
		p = &model.GrantRevoked{}
	case model.EventRecordCreated:
		p = &model.RecordCreated{}
	case model.EventRecordRead:
		p = &model.RecordRead{}
	default:
		return nil, fmt.Errorf("unknown event type %q", t)
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s payload: %w", t, err)
	}
	return deref(p), nil
}

func deref(p model.EventPayload) model.EventPayload {
	switch v := p.(type) {
	case *model.ConfigInitialized:
		return *v
	case *model.ProgramPauseUpdated:
		return *v
	case *model.HospitalRegistered:
		return *v
	case *model.PatientUpserted:
		return *v
	case *model.TrusteeAdded:
		return *v
	case *model.TrusteeRevoked:
		return *v
	case *model.GrantCreated:
		return *v
	case *model.GrantCreatedByTrustee:
		return *v
	case *model.GrantRevoked:
		return *v
	case *model.RecordCreated:
		return *v
	case *model.RecordRead:
		return *v
	}
	return p
}
