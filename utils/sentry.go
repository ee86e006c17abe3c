package utils

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry configures the global Sentry client. An empty DSN disables
// reporting and is not an error.
func InitSentry(dsn, environment, release string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          release,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("sentry: init: %w", err)
	}
	return nil
}

// FlushSentry waits briefly for buffered events to be sent.
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
