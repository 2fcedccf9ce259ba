// Package apperrors tests verify the catalog error types (ErrNotFound,
// ErrUpstream, ErrMalformedPayload), their Error() messages, Is() matching
// semantics, and the Classify taxonomy used by callers to decide how a
// failure is surfaced.
package apperrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// ---------------------------------------------------------------------------
// ErrNotFound
// ---------------------------------------------------------------------------

func TestErrNotFound_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrNotFound
		expected string
	}{
		{
			name:     "with string ID",
			err:      &ErrNotFound{Resource: "genre", ID: "action"},
			expected: "genre with ID action not found",
		},
		{
			name:     "with int ID",
			err:      &ErrNotFound{Resource: "game", ID: 3498},
			expected: "game with ID 3498 not found",
		},
		{
			name:     "with nil ID",
			err:      &ErrNotFound{Resource: "game", ID: nil},
			expected: "game not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrNotFound_Is(t *testing.T) {
	t.Parallel()
	err := NewNotFoundError("game", 1)

	t.Run("matches ErrNotFound with different fields", func(t *testing.T) {
		if !errors.Is(err, &ErrNotFound{Resource: "other", ID: 99}) {
			t.Error("expected errors.Is to match *ErrNotFound regardless of field values")
		}
	})

	t.Run("does not match ErrUpstream", func(t *testing.T) {
		if errors.Is(err, &ErrUpstream{}) {
			t.Error("expected errors.Is not to match *ErrUpstream")
		}
	})

	t.Run("matches through fmt.Errorf wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("mid: %w", fmt.Errorf("inner: %w", err))
		if !errors.Is(wrapped, &ErrNotFound{}) {
			t.Error("expected errors.Is to match *ErrNotFound through double wrapping")
		}
	})
}

// ---------------------------------------------------------------------------
// ErrUpstream
// ---------------------------------------------------------------------------

func TestErrUpstream_Error(t *testing.T) {
	t.Parallel()
	err := &ErrUpstream{Endpoint: "games", StatusCode: 502}
	expected := "catalog endpoint games returned status 502"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(fmt.Errorf("wrap: %w", err), &ErrUpstream{}) {
		t.Error("expected errors.Is to match *ErrUpstream through wrapping")
	}
}

// ---------------------------------------------------------------------------
// ErrMalformedPayload
// ---------------------------------------------------------------------------

func TestErrMalformedPayload(t *testing.T) {
	t.Parallel()

	t.Run("without cause", func(t *testing.T) {
		err := NewMalformedPayloadError("games", "missing results", nil)
		if err.Error() != "malformed games payload: missing results" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if err.Unwrap() != nil {
			t.Error("expected nil cause")
		}
	})

	t.Run("with decode cause", func(t *testing.T) {
		var syntaxErr *json.SyntaxError
		cause := json.Unmarshal([]byte("{"), &struct{}{})
		err := NewMalformedPayloadError("game", "invalid JSON", cause)
		if !errors.As(err, &syntaxErr) {
			t.Errorf("expected cause to be reachable through Unwrap, got %v", err)
		}
		if !errors.Is(err, &ErrMalformedPayload{}) {
			t.Error("expected errors.Is to match *ErrMalformedPayload")
		}
	})
}

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "context canceled", err: context.Canceled, want: KindCanceled},
		{name: "wrapped context canceled", err: fmt.Errorf("do request: %w", context.Canceled), want: KindCanceled},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: KindTransient},
		{name: "not found", err: NewNotFoundError("game", 7), want: KindNotFound},
		{name: "upstream status", err: &ErrUpstream{Endpoint: "games", StatusCode: 500}, want: KindTransient},
		{name: "malformed", err: NewMalformedPayloadError("games", "missing results", nil), want: KindTransient},
		{name: "plain error", err: errors.New("connection refused"), want: KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	cases := map[Kind]string{
		KindNone:      "none",
		KindCanceled:  "canceled",
		KindNotFound:  "not_found",
		KindTransient: "transient",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}

func TestIsTransient(t *testing.T) {
	t.Parallel()
	if IsTransient(context.Canceled) {
		t.Error("expected cancellation not to be transient")
	}
	if IsTransient(NewNotFoundError("game", 1)) {
		t.Error("expected not found not to be transient")
	}
	if !IsTransient(errors.New("boom")) {
		t.Error("expected generic error to be transient")
	}
}
