// Package selector turns a decoded show or movie response plus the user's
// query into the text to print and, at most, one torrent URL to open.
// Nothing here touches the network or the browser; see Presenter.
package selector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Belphemur/popcorn/internal/models"
)

// Messages printed by the selection flows
const (
	MsgEpisodeNotFound    = "Episode not found. Try 1st episode of current season."
	MsgEpisodeListHint    = "Magnet-link should contain list of all available episodes."
	MsgOpening            = "Opening magnet-link in default browser..."
	MsgResolutionNotFound = "Selected resolution not found."
)

// Defaults holds the values a query falls back to when the user did not
// choose one. Resolution is a sentinel: when the requested resolution equals
// it, a missed lookup lists what is available without the not-found hint.
type Defaults struct {
	Locale     string
	Resolution string
}

// ShowQuery is the user's selection for a show. Season and Episode are only
// acted upon when both are set.
type ShowQuery struct {
	Season     *int
	Episode    *int
	Resolution string
}

// MovieQuery is the user's selection for a movie
type MovieQuery struct {
	Locale     string
	Resolution string
}

// OutcomeKind tells how a selection ended
type OutcomeKind int

const (
	// OutcomeSummary: only the show summary was printed
	OutcomeSummary OutcomeKind = iota
	OutcomeEpisodeNotFound
	// OutcomeResolutions: the requested resolution is missing, the
	// available ones are listed instead
	OutcomeResolutions
	// OutcomeTorrent: TorrentURL must be opened
	OutcomeTorrent
	OutcomeLocaleNotFound
	// OutcomeNotFound: the API answered with its failure payload
	OutcomeNotFound
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSummary:
		return "summary"
	case OutcomeEpisodeNotFound:
		return "episode_not_found"
	case OutcomeResolutions:
		return "resolutions"
	case OutcomeTorrent:
		return "torrent"
	case OutcomeLocaleNotFound:
		return "locale_not_found"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Outcome is the result of a selection: the lines to print, in order, and
// the torrent URL to open when Kind is OutcomeTorrent.
type Outcome struct {
	Kind       OutcomeKind
	Lines      []string
	TorrentURL string
}

// SeasonSummary is the highest episode number seen in one season
type SeasonSummary struct {
	Season     int
	MaxEpisode int
}

// SummarizeSeasons returns one entry per canonical season (≥ 1), ascending.
// Season 0 holds specials and is left out. Episodes may come in any order.
func SummarizeSeasons(episodes []models.Episode) []SeasonSummary {
	maxEpisode := make(map[int]int)
	for _, ep := range episodes {
		if ep.Season < 1 {
			continue
		}
		if current, ok := maxEpisode[ep.Season]; !ok || ep.Episode > current {
			maxEpisode[ep.Season] = ep.Episode
		}
	}

	summary := make([]SeasonSummary, 0, len(maxEpisode))
	for season, maxEp := range maxEpisode {
		summary = append(summary, SeasonSummary{Season: season, MaxEpisode: maxEp})
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Season < summary[j].Season
	})
	return summary
}

// SelectShow prints the season summary and, when both season and episode
// are given, resolves that episode's torrent.
func SelectShow(show models.ShowResponse, query ShowQuery, defaults Defaults) Outcome {
	lines := []string{"", " " + show.Title, ""}

	if seasons := SummarizeSeasons(show.Episodes); len(seasons) > 0 {
		noun := "seasons"
		if len(seasons) == 1 {
			noun = "season"
		}
		lines = append(lines, fmt.Sprintf(" %d %s:", len(seasons), noun))
		for _, s := range seasons {
			lines = append(lines, fmt.Sprintf("  %d. %d", s.Season, s.MaxEpisode))
		}
	}
	lines = append(lines, "")

	if query.Season == nil || query.Episode == nil {
		return Outcome{Kind: OutcomeSummary, Lines: lines}
	}

	for _, ep := range show.Episodes {
		if ep.Season == *query.Season && ep.Episode == *query.Episode {
			// Duplicated upstream entries are not merged, the first one wins
			return resolveTorrent(lines, ep.Torrents, query.Resolution, defaults)
		}
	}

	lines = append(lines, MsgEpisodeNotFound, MsgEpisodeListHint)
	return Outcome{Kind: OutcomeEpisodeNotFound, Lines: lines}
}

// SelectMovie prints the movie title and resolves the torrent for the
// query's locale and resolution.
func SelectMovie(movie models.MovieResponse, query MovieQuery, defaults Defaults) Outcome {
	lines := []string{"", movie.Title, ""}

	locale := query.Locale
	if locale == "" {
		locale = defaults.Locale
	}

	torrents, ok := movie.Torrents[locale]
	if !ok {
		lines = append(lines, fmt.Sprintf("%s locale not found", locale))
		return Outcome{Kind: OutcomeLocaleNotFound, Lines: lines}
	}

	return resolveTorrent(lines, torrents, query.Resolution, defaults)
}

// NotFound is the outcome for an ID the API has nothing for
func NotFound(imdbID string) Outcome {
	return Outcome{
		Kind:  OutcomeNotFound,
		Lines: []string{fmt.Sprintf("%s not found", imdbID)},
	}
}

// resolveTorrent looks resolution up verbatim: no case folding, no partial
// match.
func resolveTorrent(lines []string, torrents map[string]models.Torrent, resolution string, defaults Defaults) Outcome {
	if resolution == "" {
		resolution = defaults.Resolution
	}

	if torrent, ok := torrents[resolution]; ok {
		lines = append(lines, MsgOpening)
		return Outcome{Kind: OutcomeTorrent, Lines: lines, TorrentURL: torrent.URL}
	}

	if resolution != defaults.Resolution {
		lines = append(lines, MsgResolutionNotFound)
	}
	lines = append(lines, "Available resolutions: "+formatLabels(models.ResolutionLabels(torrents)))
	return Outcome{Kind: OutcomeResolutions, Lines: lines}
}

// formatLabels renders labels as a bracketed, quoted list: ["720p", "1080p"]
func formatLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, label := range labels {
		quoted[i] = fmt.Sprintf("%q", label)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
