package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Belphemur/GameHub/internal/config"
)

// unaryLogging logs every call at debug level and turns handler panics into
// Internal errors.
func unaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = recovered(info.FullMethod, r)
		}
		logCall(info.FullMethod, start, err)
	}()
	return handler(ctx, req)
}

func streamLogging(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = recovered(info.FullMethod, r)
		}
		logCall(info.FullMethod, start, err)
	}()
	return handler(srv, ss)
}

func recovered(method string, r any) error {
	logger := config.GetLogger()
	logger.Error().Str("method", method).Str("panic", fmt.Sprint(r)).Msg("Recovered from panic in gRPC handler")
	return status.Error(codes.Internal, "internal error")
}

func logCall(method string, start time.Time, err error) {
	logger := config.GetLogger()
	logger.Debug().
		Str("method", method).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")
}
