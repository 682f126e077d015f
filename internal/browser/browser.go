package browser

import (
	"os"

	"github.com/Belphemur/popcorn/internal/apperrors"
	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/metrics"

	pkgbrowser "github.com/pkg/browser"
)

// Launcher hands a URL to something that can open it
type Launcher interface {
	Open(url string) error
}

// SystemLauncher opens URLs with the operating system's default handler
// (xdg-open, open, or rundll32). It does not wait for the browser.
type SystemLauncher struct {
	openURL func(url string) error
}

// NewSystemLauncher creates a launcher backed by github.com/pkg/browser
func NewSystemLauncher() *SystemLauncher {
	// xdg-open chatter must not end up in the program output
	pkgbrowser.Stdout = os.Stderr
	return &SystemLauncher{openURL: pkgbrowser.OpenURL}
}

// Open launches url and wraps any failure in an *apperrors.LaunchError
func (l *SystemLauncher) Open(url string) error {
	logger := config.GetLogger()

	if err := l.openURL(url); err != nil {
		metrics.BrowserLaunchesTotal.WithLabelValues(metrics.StatusError).Inc()
		logger.Debug().Err(err).Str("url", url).Msg("Failed to open default browser")
		return &apperrors.LaunchError{URL: url, Err: err}
	}

	metrics.BrowserLaunchesTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	logger.Debug().Str("url", url).Msg("Handed URL to default browser")
	return nil
}

var _ Launcher = (*SystemLauncher)(nil)
