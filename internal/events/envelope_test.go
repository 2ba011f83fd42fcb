package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carechain-server/internal/model"
)

var testAt = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newEvent(p model.EventPayload) model.Event {
	return model.Event{ID: uuid.New(), Type: p.EventType(), At: testAt, Payload: p}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	patient := model.PatientAddress("0xpatient")
	expires := testAt.Add(time.Hour)

	payloads := []model.EventPayload{
		model.ConfigInitialized{Authority: "0xauthority", Namespace: "carechain", CreatedAt: testAt},
		model.GrantCreatedByTrustee{
			GrantCreated: model.GrantCreated{
				Grant:     model.GrantAddress(patient, "0xreader", model.ScopeRead),
				Patient:   patient,
				Grantee:   "0xreader",
				Scope:     model.ScopeRead,
				ExpiresAt: &expires,
				CreatedBy: "0xtrustee",
				CreatedAt: testAt,
			},
			Trustee: "0xtrustee",
		},
		model.RecordRead{
			Record:   model.RecordAddress(patient, 3),
			Patient:  patient,
			Hospital: model.HospitalAddress("0xhospital"),
			Reader:   "0xreader",
			Seq:      3,
			At:       testAt,
		},
	}

	for _, p := range payloads {
		ev := newEvent(p)

		data, err := Encode(ev)
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, ev, got, "type %s", ev.Type)
	}
}

func TestEncode_AddressesAreHex(t *testing.T) {
	t.Parallel()

	patient := model.PatientAddress("0xpatient")
	data, err := Encode(newEvent(model.PatientUpserted{Patient: patient, Owner: "0xpatient", Created: true}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"patient":"`+patient.String()+`"`)
	assert.Contains(t, string(data), `"type":"PatientUpserted"`)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{"},
		{name: "unknown type", data: `{"id":"` + uuid.NewString() + `","type":"Nope","at":"2025-03-14T09:26:53Z","payload":{}}`},
		{name: "bad address", data: `{"id":"` + uuid.NewString() + `","type":"PatientUpserted","at":"2025-03-14T09:26:53Z","payload":{"patient":"xyz"}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
