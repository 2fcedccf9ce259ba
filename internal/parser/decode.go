package parser

import (
	"encoding/json"
	"io"
	"net/url"
	"time"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/models"
)

const releaseDateLayout = "2006-01-02"

// decodeEnvelope decodes a collection envelope and checks that it carries a results array
func decodeEnvelope[T any](body io.Reader, resource string) (*models.RawgListResponse[T], error) {
	var envelope models.RawgListResponse[T]
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return nil, apperrors.NewMalformedPayloadError(resource, "invalid JSON", err)
	}
	if envelope.Results == nil {
		return nil, apperrors.NewMalformedPayloadError(resource, "missing results array", nil)
	}
	return &envelope, nil
}

func decodeSingle[T any](body io.Reader, resource string) (*T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, apperrors.NewMalformedPayloadError(resource, "invalid JSON", err)
	}
	return &payload, nil
}

func newPage[T any, R any](envelope *models.RawgListResponse[R], results []T) *models.Page[T] {
	return &models.Page[T]{
		Count:    envelope.Count,
		Next:     deref(envelope.Next),
		Previous: deref(envelope.Previous),
		Results:  results,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseReleased returns nil for a missing or unparsable date
func parseReleased(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(releaseDateLayout, *raw)
	if err != nil {
		return nil
	}
	return &t
}

// httpURL keeps only absolute http(s) URLs
func httpURL(raw *string) string {
	if raw == nil {
		return ""
	}
	u, err := url.Parse(*raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return *raw
}
