package model

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddress(t *testing.T) {
	t.Parallel()

	want := sha256.Sum256([]byte("patientalice"))
	assert.Equal(t, Address(want), PatientAddress("alice"))
	assert.Equal(t, PatientAddress("alice"), PatientAddress("alice"))
	assert.NotEqual(t, PatientAddress("alice"), PatientAddress("bob"))
	assert.NotEqual(t, PatientAddress("alice"), HospitalAddress("alice"))
}

func TestGrantAddress_ScopeSlots(t *testing.T) {
	t.Parallel()

	patient := PatientAddress("alice")
	seen := make(map[Address]Scope)
	for scope := Scope(1); scope <= scopeAll; scope++ {
		addr := GrantAddress(patient, "bob", scope)
		prev, dup := seen[addr]
		require.False(t, dup, "scope %s collides with %s", scope, prev)
		seen[addr] = scope
	}
}

func TestRecordAddress_LittleEndianSeq(t *testing.T) {
	t.Parallel()

	patient := PatientAddress("alice")
	seed := append([]byte(SeedRecord), patient[:]...)
	seed = append(seed, 1, 0, 0, 0, 0, 0, 0, 0)

	assert.Equal(t, Address(sha256.Sum256(seed)), RecordAddress(patient, 1))
	assert.NotEqual(t, RecordAddress(patient, 1), RecordAddress(patient, 1<<56))
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	addr := TrusteeAddress(PatientAddress("alice"), "carol")
	parsed, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)

	_, err = ParseAddress("zz")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseAddress(strings.Repeat("ab", 31))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIdentity_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Identity("").IsZero())
	assert.True(t, Identity("  \t").IsZero())
	assert.False(t, Identity("alice").IsZero())
}
