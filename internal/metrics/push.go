package metrics

import (
	"context"
	"fmt"

	"github.com/Belphemur/popcorn/internal/config"

	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends the current Registry to the Pushgateway at url under the given
// job name. An empty url disables pushing. Failures are returned, not logged.
func Push(ctx context.Context, url, job string) error {
	if url == "" {
		return nil
	}

	if err := push.New(url, job).Gatherer(Registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}

	logger := config.GetLogger()
	logger.Debug().Str("url", url).Str("job", job).Msg("Pushed metrics")
	return nil
}
