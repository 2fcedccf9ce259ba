package client

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/time/rate"

	"github.com/Belphemur/GameHub/internal/config"
)

const (
	// breakerFailureThreshold is the number of consecutive upstream failures that opens the breaker.
	breakerFailureThreshold = 5
	// breakerDelay is how long the breaker stays open before letting a trial request through.
	breakerDelay = 30 * time.Second
)

// newHTTPClient builds the outbound HTTP client. From the outside in, requests go
// through the circuit breaker, the rate limiter, the decompression layer and the
// cloned default transport.
func newHTTPClient(cfg *config.Config) *http.Client {
	logger := config.GetLogger()

	// Clone DefaultTransport to preserve its settings (timeouts, connection pooling, HTTP/2)
	base := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			base.Proxy = http.ProxyURL(proxyURL)
		}
	}

	var transport http.RoundTripper = newCompressionTransport(base)
	if cfg.Rawg.RequestsPerSecond > 0 {
		transport = newRateLimitTransport(transport, cfg.Rawg.RequestsPerSecond)
	}
	transport = newBreakerTransport(transport, breakerFailureThreshold, breakerDelay)

	return &http.Client{
		Timeout:   cfg.ClientTimeoutDuration(),
		Transport: transport,
	}
}

// newBreakerTransport fails fast with circuitbreaker.ErrOpen once the remote
// catalog keeps failing. It never retries.
func newBreakerTransport(next http.RoundTripper, threshold uint, delay time.Duration) http.RoundTripper {
	breaker := circuitbreaker.NewBuilder[*http.Response]().
		HandleIf(func(resp *http.Response, err error) bool {
			if err != nil {
				// A caller abandoning its request says nothing about upstream health
				return !errors.Is(err, context.Canceled)
			}
			return resp != nil && resp.StatusCode >= http.StatusInternalServerError
		}).
		WithFailureThreshold(threshold).
		WithDelay(delay).
		Build()
	return failsafehttp.NewRoundTripper(next, breaker)
}

// rateLimitTransport spaces outbound requests to stay within the catalog quota
type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func newRateLimitTransport(next http.RoundTripper, perSecond float64) http.RoundTripper {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &rateLimitTransport{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

// compressionTransport advertises gzip, brotli and zstd and transparently
// decodes the response body
type compressionTransport struct {
	next http.RoundTripper
}

func newCompressionTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &compressionTransport{next: next}
}

// acceptEncoding is sent unless the caller already set the header
const acceptEncoding = "gzip, br, zstd"

func (t *compressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		// RoundTrippers must not modify the caller's request
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	encoding, err := contentEncoding(strings.Join(resp.Header.Values("Content-Encoding"), ","))
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	decoded, err := decodeBody(encoding, resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	if decoded == nil {
		return resp, nil
	}

	resp.Body = decoded
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

// decodeBody wraps body with the decoder of encoding, or returns nil when the
// encoding is absent or unknown.
func decodeBody(encoding string, body io.ReadCloser) (io.ReadCloser, error) {
	var reader io.ReadCloser
	switch encoding {
	case "gzip":
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, err
		}
		reader = gz
	case "br":
		reader = io.NopCloser(brotli.NewReader(body))
	case "zstd":
		zr, err := zstd.NewReader(body)
		if err != nil {
			return nil, err
		}
		reader = zr.IOReadCloser()
	default:
		return nil, nil
	}
	return &decodedBody{ReadCloser: reader, raw: body}, nil
}

// decodedBody closes both the decoder and the underlying connection body
type decodedBody struct {
	io.ReadCloser
	raw io.ReadCloser
}

func (d *decodedBody) Close() error {
	return errors.Join(d.ReadCloser.Close(), d.raw.Close())
}

// errStackedEncoding rejects bodies encoded more than once ("gzip, br")
var errStackedEncoding = errors.New("multiple content codings are not supported")

// contentEncoding returns the single coding of a Content-Encoding header,
// lowercased. identity entries are ignored.
func contentEncoding(header string) (string, error) {
	var codings []string
	for _, part := range strings.Split(header, ",") {
		coding := strings.ToLower(strings.TrimSpace(part))
		if coding == "" || coding == "identity" {
			continue
		}
		codings = append(codings, coding)
	}
	switch len(codings) {
	case 0:
		return "", nil
	case 1:
		return codings[0], nil
	default:
		return "", fmt.Errorf("%w: %q", errStackedEncoding, header)
	}
}
