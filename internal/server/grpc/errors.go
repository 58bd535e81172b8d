package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/server/credential"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error onto a gRPC status. Internal failures are
// reported without detail.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.Is(err, credential.ErrTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrTokenInvalid), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorAlreadyVerified):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrSlugConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrDuplicateKey):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
