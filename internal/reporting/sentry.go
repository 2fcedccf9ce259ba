// Package reporting forwards unexpected failures to Sentry.
package reporting

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/config"
)

// Init configures the Sentry client when a DSN is set. The returned function
// flushes buffered events and must be called before the process exits.
// Without a DSN it is a no-op and Capture drops everything.
func Init(cfg *config.Config, release string) (func(), error) {
	if cfg.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     release,
	})
	if err != nil {
		return func() {}, err
	}

	logger := config.GetLogger()
	logger.Info().Str("environment", cfg.Sentry.Environment).Msg("Error reporting enabled")
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// Capture reports a transient failure. Cancellations and not-found results are
// expected outcomes and are never reported.
func Capture(err error, tags map[string]string) {
	if !apperrors.IsTransient(err) {
		return
	}
	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}
