package reporting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/config"
)

type recordingTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (r *recordingTransport) Configure(sentry.ClientOptions) {}
func (r *recordingTransport) Flush(time.Duration) bool { return true }
func (r *recordingTransport) FlushWithContext(context.Context) bool { return true }
func (r *recordingTransport) Close() {}
func (r *recordingTransport) SendEvent(event *sentry.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestInit_WithoutDSN(t *testing.T) {
	flush, err := Init(&config.Config{}, "test")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	flush()
}

func TestCapture_OnlyTransientFailures(t *testing.T) {
	transport := &recordingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{Dsn: "https://public@example.com/1", Transport: transport})
	if err != nil {
		t.Fatalf("Failed to create sentry client: %v", err)
	}
	sentry.CurrentHub().BindClient(client)
	defer sentry.CurrentHub().BindClient(nil)

	Capture(nil, nil)
	Capture(context.Canceled, nil)
	Capture(apperrors.NewNotFoundError("game", 1), nil)
	Capture(&apperrors.ErrUpstream{Endpoint: "games", StatusCode: 503}, map[string]string{"operation": "games"})
	Capture(errors.New("connection reset"), nil)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	if len(transport.events) != 2 {
		t.Fatalf("Expected 2 reported events, got %d", len(transport.events))
	}
	if transport.events[0].Tags["operation"] != "games" {
		t.Errorf("Expected operation tag, got %v", transport.events[0].Tags)
	}
}
