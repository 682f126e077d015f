package selector

import (
	"fmt"
	"io"

	"github.com/Belphemur/popcorn/internal/browser"
	"github.com/Belphemur/popcorn/internal/config"
)

// Presenter writes an Outcome and performs its side effect
type Presenter struct {
	Out      io.Writer
	Launcher browser.Launcher
}

// NewPresenter creates a presenter writing to out and opening torrents with launcher
func NewPresenter(out io.Writer, launcher browser.Launcher) *Presenter {
	return &Presenter{Out: out, Launcher: launcher}
}

// Present prints every line of the outcome, then opens its torrent if it has
// one. Lines are written before the launch so they stay printed when the
// launch fails.
func (p *Presenter) Present(outcome Outcome) error {
	logger := config.GetLogger()

	for _, line := range outcome.Lines {
		if _, err := fmt.Fprintln(p.Out, line); err != nil {
			return err
		}
	}

	logger.Debug().Str("outcome", outcome.Kind.String()).Int("lines", len(outcome.Lines)).Msg("Presented outcome")

	if outcome.Kind != OutcomeTorrent {
		return nil
	}
	return p.Launcher.Open(outcome.TorrentURL)
}
