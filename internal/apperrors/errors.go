package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// ErrUpstream is returned when the catalog service answers with an
// unexpected, non-success status code.
type ErrUpstream struct {
	Endpoint   string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("catalog endpoint %s returned status %d", e.Endpoint, e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstream) Is(target error) bool {
	_, ok := target.(*ErrUpstream)
	return ok
}

// ErrMalformedPayload is returned when a response body cannot be decoded or
// violates the expected schema.
type ErrMalformedPayload struct {
	Resource string
	Reason   string
	Err      error
}

// Error implements the error interface.
func (e *ErrMalformedPayload) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s payload: %s: %v", e.Resource, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed %s payload: %s", e.Resource, e.Reason)
}

// Unwrap returns the underlying decode error, if any.
func (e *ErrMalformedPayload) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedPayload) Is(target error) bool {
	_, ok := target.(*ErrMalformedPayload)
	return ok
}

// NewMalformedPayloadError creates a new ErrMalformedPayload.
func NewMalformedPayloadError(resource, reason string, err error) *ErrMalformedPayload {
	return &ErrMalformedPayload{
		Resource: resource,
		Reason:   reason,
		Err:      err,
	}
}

// Kind classifies a failure for callers that must decide how to surface it.
type Kind int

const (
	KindNone Kind = iota
	// KindCanceled is a superseded or aborted request. Never shown to users.
	KindCanceled
	// KindNotFound is a missing entity. Renders a terminal not-found view.
	KindNotFound
	// KindTransient covers network, status and parse failures. Logged; prior or empty state is kept.
	KindTransient
)

// String returns the lowercase name of the kind, used as a metric label
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCanceled:
		return "canceled"
	case KindNotFound:
		return "not_found"
	default:
		return "transient"
	}
}

// Classify maps any error returned by the catalog client to a Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case IsCanceled(err):
		return KindCanceled
	case errors.Is(err, &ErrNotFound{}):
		return KindNotFound
	default:
		return KindTransient
	}
}

// IsCanceled reports whether err comes from a cancelled context.
// Deadline expiry is a genuine failure and is not considered a cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTransient reports whether err is a failure worth logging and reporting.
func IsTransient(err error) bool {
	return Classify(err) == KindTransient
}
