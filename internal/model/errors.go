package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every failed ledger operation wraps exactly one of these.
var (
	ErrNotFound           = errors.New("not found")
	ErrNotInitialized     = errors.New("config not initialized")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPaused             = errors.New("program is paused")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrTooLong            = errors.New("too long")
	ErrAlreadyExists      = errors.New("already exists")
	ErrAlreadyInitialized = errors.New("config already initialized")
	ErrAlreadyRevoked     = errors.New("already revoked")

	ErrGrantRevoked        = errors.New("grant is revoked")
	ErrGrantExpired        = errors.New("grant is expired")
	ErrGrantMismatch       = errors.New("grant does not match patient/grantee")
	ErrInvalidScope        = errors.New("scope must only include READ/WRITE/ADMIN bits and not be zero")
	ErrReadOnlyRestriction = errors.New("trustee may only grant READ scope")
	ErrBadExpiry           = errors.New("expiry must be in the future")

	ErrBadSeq      = errors.New("bad sequence number")
	ErrSeqOverflow = errors.New("sequence overflow")

	ErrSizeZero       = errors.New("size_bytes must be > 0")
	ErrEdekMissing    = errors.New("wrapped key is empty")
	ErrKMSRefRequired = errors.New("kms_ref must be non-empty when the root key is wrapped by kms")
)

// Narrower errors that still match their parent kind with errors.Is.
var (
	ErrEmpty             = fmt.Errorf("%w: empty", ErrInvalidArgument)
	ErrUnauthorizedGrant = fmt.Errorf("%w: only the patient or one of its trustees may grant", ErrUnauthorized)
	ErrUploaderMismatch  = fmt.Errorf("%w: uploader must be the hospital authority", ErrUnauthorized)
)

// FieldError reports a validation failure on a named input field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError wraps err with the offending field name.
func NewFieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
