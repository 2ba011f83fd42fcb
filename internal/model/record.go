package model

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Record field bounds, in bytes after trimming.
const (
	MaxCIDLen          = 128
	MaxMIMELen         = 64
	MaxDoctorNameLen   = 64
	MaxPartyIDLen      = 64
	MaxDiagnosisLen    = 256
	MaxKeywordsLen     = 256
	MaxDescriptionLen  = 512
	MaxWrappedKeyBytes = 512
)

// WrapAlgo names how a data-encryption key was wrapped for its recipient.
type WrapAlgo uint8

const (
	// WrapAlgoKMS defers unwrapping to an external key service.
	WrapAlgoKMS WrapAlgo = iota + 1
	// WrapAlgoSealedBox is an X25519 sealed box for the recipient key.
	WrapAlgoSealedBox
)

// RequiresKMSRef reports whether a blob wrapped with a needs an external key reference.
func (a WrapAlgo) RequiresKMSRef() (bool, error) {
	switch a {
	case WrapAlgoKMS:
		return true, nil
	case WrapAlgoSealedBox:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unknown wrap algorithm %d", ErrInvalidArgument, uint8(a))
	}
}

func (a WrapAlgo) String() string {
	switch a {
	case WrapAlgoKMS:
		return "kms"
	case WrapAlgoSealedBox:
		return "sealed_box"
	default:
		return fmt.Sprintf("wrap_algo(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a WrapAlgo) MarshalText() ([]byte, error) {
	if _, err := a.RequiresKMSRef(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *WrapAlgo) UnmarshalText(text []byte) error {
	switch string(text) {
	case "kms":
		*a = WrapAlgoKMS
	case "sealed_box":
		*a = WrapAlgoSealedBox
	default:
		return fmt.Errorf("%w: unknown wrap algorithm %q", ErrInvalidArgument, string(text))
	}
	return nil
}

// EncAlgo names the symmetric cipher used for the record content.
type EncAlgo uint8

const (
	EncAlgoXChaCha20 EncAlgo = iota + 1
	EncAlgoAES256GCM
)

// Validate fails for algorithms this ledger does not know.
func (a EncAlgo) Validate() error {
	switch a {
	case EncAlgoXChaCha20, EncAlgoAES256GCM:
		return nil
	default:
		return fmt.Errorf("%w: unknown encryption algorithm %d", ErrInvalidArgument, uint8(a))
	}
}

func (a EncAlgo) String() string {
	switch a {
	case EncAlgoXChaCha20:
		return "xchacha20"
	case EncAlgoAES256GCM:
		return "aes256gcm"
	default:
		return fmt.Sprintf("enc_algo(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a EncAlgo) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *EncAlgo) UnmarshalText(text []byte) error {
	switch string(text) {
	case "xchacha20":
		*a = EncAlgoXChaCha20
	case "aes256gcm":
		*a = EncAlgoAES256GCM
	default:
		return fmt.Errorf("%w: unknown encryption algorithm %q", ErrInvalidArgument, string(text))
	}
	return nil
}

// Digest is a 256-bit content digest of the encrypted payload.
type Digest [32]byte

// String returns the lowercase hex form of the digest.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// ParseDigest parses a hex encoded 32-byte digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("%w: digest: %v", ErrInvalidArgument, err)
	}
	if len(b) != len(d) {
		return d, fmt.Errorf("%w: digest must be %d bytes, got %d", ErrInvalidArgument, len(d), len(b))
	}
	copy(d[:], b)
	return d, nil
}

// WrappedKey is a data-encryption key wrapped for one recipient.
type WrappedKey struct {
	Blob []byte
	Algo WrapAlgo
}

// ClinicalInfo holds free-text descriptive fields. They are size-checked only.
type ClinicalInfo struct {
	HospitalID   string
	HospitalName string
	DoctorName   string
	DoctorID     string
	Diagnosis    string
	Keywords     string
	Description  string
}

// Record is an immutable envelope of one encrypted medical record.
type Record struct {
	Address  Address
	Patient  Address
	Hospital Address
	Uploader Identity

	CIDEnc    string
	MetaMIME  string
	MetaCID   string
	SizeBytes uint64
	Digest    Digest

	RootKey     WrappedKey
	PatientKey  WrappedKey
	HospitalKey WrappedKey
	KMSRef      string

	Seq        uint64
	EncVersion uint16
	EncAlgo    EncAlgo

	CreatedAt time.Time
	UpdatedAt time.Time

	PatientIdentity  Identity
	HospitalIdentity Identity

	Clinical ClinicalInfo
}

// CreateRecordParams contains parameters to append a record to a patient lane.
type CreateRecordParams struct {
	Patient  Identity
	Hospital Identity
	Seq      uint64

	CIDEnc    string
	MetaMIME  string
	MetaCID   string
	SizeBytes uint64
	Digest    Digest

	RootKey     WrappedKey
	PatientKey  WrappedKey
	HospitalKey WrappedKey
	KMSRef      string

	EncVersion uint16
	EncAlgo    EncAlgo

	Clinical ClinicalInfo
}
