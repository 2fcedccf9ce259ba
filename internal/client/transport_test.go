package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/klauspost/compress/zstd"
)

func compress(t *testing.T, encoding string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch encoding {
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "br":
		w = brotli.NewWriter(&buf)
	case "zstd":
		// zstd.NewWriter() with default options never fails
		w, _ = zstd.NewWriter(&buf)
	default:
		return data
	}
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func TestCompressionTransport_Decodes(t *testing.T) {
	testData := []byte(`{"count": 0, "results": []}`)

	tests := []struct {
		name   string
		header string
		codec  string
	}{
		{"gzip", "gzip", "gzip"},
		{"brotli", "br", "br"},
		{"zstd", "zstd", "zstd"},
		{"uppercase with spaces", " GZIP ", "gzip"},
		{"identity", "", ""},
		{"unknown encoding passes through", "compress", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := compress(t, tt.codec, testData)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Accept-Encoding"); got != acceptEncoding {
					t.Errorf("Expected Accept-Encoding %q, got %q", acceptEncoding, got)
				}
				if tt.header != "" {
					w.Header().Set("Content-Encoding", tt.header)
				}
				_, _ = w.Write(payload)
			}))
			defer server.Close()

			httpClient := &http.Client{Transport: newCompressionTransport(nil)}
			resp, err := httpClient.Get(server.URL)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("Failed to read body: %v", err)
			}
			if tt.codec != "" {
				if !bytes.Equal(body, testData) {
					t.Errorf("Expected decoded body %q, got %q", testData, body)
				}
				if resp.Header.Get("Content-Encoding") != "" {
					t.Errorf("Expected Content-Encoding to be removed, got %q", resp.Header.Get("Content-Encoding"))
				}
			} else if !bytes.Equal(body, payload) {
				t.Errorf("Expected body to pass through, got %q", body)
			}
		})
	}
}

func TestCompressionTransport_InvalidGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write([]byte("definitely not gzip"))
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: newCompressionTransport(nil)}
	resp, err := httpClient.Get(server.URL)
	if err == nil {
		resp.Body.Close()
		t.Fatal("Expected an error for a corrupt gzip body")
	}
}

func TestCompressionTransport_KeepsCallerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Encoding"); got != "identity" {
			t.Errorf("Expected caller Accept-Encoding to be kept, got %q", got)
		}
	}))
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Accept-Encoding", "identity")
	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()
}

func TestContentEncoding(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"gzip":            "gzip",
		" ZSTD ":          "zstd",
		"identity, br":    "br",
		"deflate,  ":      "deflate",
		"gzip, identity,": "gzip",
	}
	for header, want := range tests {
		got, err := contentEncoding(header)
		if err != nil {
			t.Errorf("contentEncoding(%q) failed: %v", header, err)
			continue
		}
		if got != want {
			t.Errorf("contentEncoding(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestContentEncoding_RejectsStackedCodings(t *testing.T) {
	for _, header := range []string{"gzip, br", "br,zstd", "gzip, gzip"} {
		if _, err := contentEncoding(header); !errors.Is(err, errStackedEncoding) {
			t.Errorf("contentEncoding(%q) error = %v, want errStackedEncoding", header, err)
		}
	}
}

func TestCompressionTransport_StackedCodings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Encoding", "gzip")
		w.Header().Add("Content-Encoding", "br")
		_, _ = w.Write([]byte("twice encoded"))
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: newCompressionTransport(nil)}
	resp, err := httpClient.Get(server.URL)
	if err == nil {
		resp.Body.Close()
		t.Fatal("Expected an error for a body encoded twice")
	}
	if !errors.Is(err, errStackedEncoding) {
		t.Errorf("Expected errStackedEncoding, got %v", err)
	}
}

func TestBreakerTransport_OpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: newBreakerTransport(http.DefaultTransport, 2, time.Minute)}

	for i := 0; i < 2; i++ {
		resp, err := httpClient.Get(server.URL)
		if err != nil {
			t.Fatalf("Request %d: unexpected error %v", i, err)
		}
		resp.Body.Close()
	}

	_, err := httpClient.Get(server.URL)
	if !errors.Is(err, circuitbreaker.ErrOpen) {
		t.Fatalf("Expected the breaker to be open, got %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("Expected the open breaker to fail fast without a request, got %d hits", hits.Load())
	}
}

func TestBreakerTransport_ClientErrorsDoNotOpen(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: newBreakerTransport(http.DefaultTransport, 2, time.Minute)}
	for i := 0; i < 5; i++ {
		resp, err := httpClient.Get(server.URL)
		if err != nil {
			t.Fatalf("Request %d: unexpected error %v", i, err)
		}
		resp.Body.Close()
	}
	if hits.Load() != 5 {
		t.Errorf("Expected every request to reach the server, got %d", hits.Load())
	}
}

func TestRateLimitTransport_HonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	httpClient := &http.Client{Transport: newRateLimitTransport(http.DefaultTransport, 0.001)}

	// The first request consumes the single token
	resp, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("First request failed: %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	if _, err := httpClient.Do(req); err == nil {
		t.Fatal("Expected the second request to be rejected by the limiter")
	}
}
