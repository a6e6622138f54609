package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC statuses. Only PublicError messages
// and validation details reach the client; anything unclassified is logged
// and reported as a bare internal error.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	code := codeOf(err)

	var pe *common.PublicError
	switch {
	case errors.As(err, &pe):
		return status.Error(code, pe.Message)
	case code == codes.InvalidArgument:
		return status.Error(code, err.Error())
	case code == codes.Internal:
		if !errors.Is(err, common.ErrorInternal) {
			s.logger.Error(ctx, "unhandled error", "error", err)
		}
		return status.Error(codes.Internal, "internal error")
	default:
		return status.Error(code, code.String())
	}
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrorConflict):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrorValidation):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
