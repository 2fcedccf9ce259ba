package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Belphemur/GameHub/internal/apperrors"
)

// toStatus maps a catalog error to a gRPC status. Not found errors carry a
// ResourceInfo detail naming the missing entity.
func toStatus(err error, operation string) error {
	var notFound *apperrors.ErrNotFound
	switch {
	case apperrors.IsCanceled(err):
		return status.Error(codes.Canceled, operation+" canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s timed out", operation)
	case errors.As(err, &notFound):
		st := status.New(codes.NotFound, notFound.Error())
		detailed, detailErr := st.WithDetails(&errdetails.ResourceInfo{
			ResourceType: notFound.Resource,
			ResourceName: fmt.Sprint(notFound.ID),
			Description:  notFound.Error(),
		})
		if detailErr != nil {
			return st.Err()
		}
		return detailed.Err()
	case errors.Is(err, &apperrors.ErrMalformedPayload{}):
		return status.Errorf(codes.DataLoss, "%s: %v", operation, err)
	default:
		return status.Errorf(codes.Unavailable, "%s: %v", operation, err)
	}
}
