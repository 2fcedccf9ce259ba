package testutil

import (
	"context"

	"github.com/Belphemur/GameHub/internal/models"
)

// Collect consumes a stream until it is closed and returns its values.
// It stops at the first in-band error. This is a test helper and should not be used in production code.
func Collect[T any](ctx context.Context, stream <-chan models.StreamResult[T]) ([]T, error) {
	var values []T
	for {
		select {
		case result, ok := <-stream:
			if !ok {
				return values, nil
			}
			if result.Err != nil {
				return values, result.Err
			}
			values = append(values, result.Value)
		case <-ctx.Done():
			return values, ctx.Err()
		}
	}
}

// CollectAll consumes a stream until it is closed, keeping values and errors apart.
// This is a test helper and should not be used in production code.
func CollectAll[T any](stream <-chan models.StreamResult[T]) ([]T, []error) {
	var (
		values []T
		errs   []error
	)
	for result := range stream {
		if result.Err != nil {
			errs = append(errs, result.Err)
			continue
		}
		values = append(values, result.Value)
	}
	return values, errs
}
