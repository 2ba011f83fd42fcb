package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/model"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{model.ErrUnauthorized, codes.PermissionDenied},
	{model.ErrPaused, codes.Unavailable},
	{model.ErrNotInitialized, codes.FailedPrecondition},
	{model.ErrNotFound, codes.NotFound},
	{model.ErrAlreadyInitialized, codes.AlreadyExists},
	{model.ErrAlreadyExists, codes.AlreadyExists},
	{model.ErrBadSeq, codes.Aborted},
	{model.ErrInvalidArgument, codes.InvalidArgument},
	{model.ErrTooLong, codes.InvalidArgument},
	{model.ErrInvalidScope, codes.InvalidArgument},
	{model.ErrBadExpiry, codes.InvalidArgument},
	{model.ErrSizeZero, codes.InvalidArgument},
	{model.ErrEdekMissing, codes.InvalidArgument},
	{model.ErrKMSRefRequired, codes.InvalidArgument},
	{model.ErrAlreadyRevoked, codes.FailedPrecondition},
	{model.ErrGrantRevoked, codes.FailedPrecondition},
	{model.ErrGrantExpired, codes.FailedPrecondition},
	{model.ErrGrantMismatch, codes.FailedPrecondition},
	{model.ErrReadOnlyRestriction, codes.FailedPrecondition},
	{model.ErrSeqOverflow, codes.FailedPrecondition},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// errorCode maps a ledger error kind to its gRPC status code.
func errorCode(err error) codes.Code {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return codes.Internal
}

func handleError(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := errorCode(err)
	if code == codes.Internal {
		return status.Error(codes.Internal, "internal server error")
	}
	return status.Error(code, err.Error())
}
