package testutil

import (
	"encoding/json"
	"fmt"
)

// EpisodeOptions describes one episode of a generated show payload.
// Torrents maps a resolution label to a magnet URL.
type EpisodeOptions struct {
	Season   int
	Episode  int
	Title    string
	Torrents map[string]string
}

// torrentPayload mimics the API's torrent object, including the fields the
// client ignores.
func torrentPayload(url string) map[string]interface{} {
	return map[string]interface{}{
		"url":      url,
		"seeds":    42,
		"peers":    7,
		"provider": "EZTV",
	}
}

// GenerateShowJSON generates a GET /show/{id} success payload
func GenerateShowJSON(title, year string, episodes []EpisodeOptions) string {
	eps := make([]map[string]interface{}, 0, len(episodes))
	for i, ep := range episodes {
		torrents := make(map[string]interface{}, len(ep.Torrents))
		for resolution, url := range ep.Torrents {
			torrents[resolution] = torrentPayload(url)
		}

		epTitle := ep.Title
		if epTitle == "" {
			epTitle = fmt.Sprintf("Episode %d", ep.Episode)
		}

		eps = append(eps, map[string]interface{}{
			"season":      ep.Season,
			"episode":     ep.Episode,
			"title":       epTitle,
			"overview":    "",
			"tvdb_id":     1000 + i,
			"first_aired": 1385956800,
			"torrents":    torrents,
		})
	}

	return mustMarshal(map[string]interface{}{
		"_id":          "tt0000000",
		"imdb_id":      "tt0000000",
		"title":        title,
		"year":         year,
		"last_updated": 1600000000,
		"num_seasons":  len(episodes),
		"episodes":     eps,
	})
}

// GenerateMovieJSON generates a GET /movie/{id} success payload.
// torrents maps locale -> resolution -> magnet URL.
func GenerateMovieJSON(title, year string, torrents map[string]map[string]string) string {
	locales := make(map[string]interface{}, len(torrents))
	for locale, byResolution := range torrents {
		resolutions := make(map[string]interface{}, len(byResolution))
		for resolution, url := range byResolution {
			resolutions[resolution] = torrentPayload(url)
		}
		locales[locale] = resolutions
	}

	return mustMarshal(map[string]interface{}{
		"_id":      "tt0000000",
		"imdb_id":  "tt0000000",
		"title":    title,
		"year":     year,
		"runtime":  "141",
		"torrents": locales,
	})
}

// GenerateFailureJSON generates the API's failure payload
func GenerateFailureJSON(code int) string {
	return mustMarshal(map[string]interface{}{
		"code":    code,
		"message": "Not found",
	})
}

func mustMarshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
