package reporting

import (
	"fmt"
	"time"

	"github.com/Belphemur/popcorn/internal/config"

	"github.com/getsentry/sentry-go"
)

// FlushTimeout bounds how long Flush waits for pending events at exit
const FlushTimeout = 2 * time.Second

// Reporter sends fatal errors to Sentry. The zero value, and a Reporter
// built without a DSN, discards everything.
type Reporter struct {
	hub *sentry.Hub
}

// New creates a Reporter for dsn. An empty dsn disables reporting.
func New(dsn, release string) (*Reporter, error) {
	if dsn == "" {
		return &Reporter{}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Enabled reports whether events are sent anywhere
func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// Capture records err with the command that failed
func (r *Reporter) Capture(command string, err error) {
	if !r.Enabled() || err == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("command", command)
		if eventID := r.hub.CaptureException(err); eventID != nil {
			logger := config.GetLogger()
			logger.Debug().Str("event_id", string(*eventID)).Msg("Reported error to Sentry")
		}
	})
}

// Flush waits up to FlushTimeout for queued events to be delivered
func (r *Reporter) Flush() bool {
	if !r.Enabled() {
		return true
	}

	if !r.hub.Flush(FlushTimeout) {
		logger := config.GetLogger()
		logger.Warn().Dur("timeout", FlushTimeout).Msg("Timed out flushing Sentry events")
		return false
	}
	return true
}
