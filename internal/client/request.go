package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/metrics"
	"github.com/Belphemur/GameHub/internal/parser"
)

// maxBodyBytes bounds how much of a response body is read
const maxBodyBytes = 8 << 20

// apiRequest describes one GET against the catalog
type apiRequest struct {
	endpoint string // Metric label, never contains identifiers
	path     string
	query    url.Values
	resource string // Used in not-found errors
	id       any
}

// get performs the request, maps the status code and hands the UTF-8 body to decode.
// The outcome is recorded in the upstream metrics.
func (c *client) get(ctx context.Context, r apiRequest, decode func(io.Reader) error) error {
	start := time.Now()
	err := c.do(ctx, r, decode)

	metrics.UpstreamRequestDuration.WithLabelValues(r.endpoint).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(r.endpoint, outcome(err)).Inc()

	if apperrors.IsTransient(err) {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("endpoint", r.endpoint).Msg("Catalog request failed")
	}
	return err
}

func (c *client) do(ctx context.Context, r apiRequest, decode func(io.Reader) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(r), nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", r.endpoint, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL, access key included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%s request: %w", r.endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return apperrors.NewNotFoundError(r.resource, r.id)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &apperrors.ErrUpstream{Endpoint: r.endpoint, StatusCode: resp.StatusCode}
	}

	body, err := parser.NewUTF8Reader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return apperrors.NewMalformedPayloadError(r.resource, "unsupported charset", err)
	}
	return decode(body)
}

func (c *client) requestURL(r apiRequest) string {
	query := url.Values{}
	for k, v := range r.query {
		query[k] = v
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}
	u := c.baseURL + r.path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return apperrors.Classify(err).String()
}

// cachedLookup serves a detail lookup from the cache, falling back to fetch and
// storing its result. Only successful results are cached.
func cachedLookup[T any](ctx context.Context, c *client, key string, fetch func() (*T, error)) (*T, error) {
	if c.detailCache != nil {
		if data, ok := c.detailCache.Get(ctx, key); ok {
			var cached T
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			logger := config.GetLogger()
			logger.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
			c.detailCache.Delete(ctx, key)
		}
	}

	value, err := fetch()
	if err != nil {
		return nil, err
	}

	if c.detailCache != nil {
		if data, err := json.Marshal(value); err == nil {
			c.detailCache.Set(ctx, key, data)
		}
	}
	return value, nil
}
