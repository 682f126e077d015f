package models

import "encoding/json"

// Torrent is one downloadable variant of an episode or movie. The API sends
// seeds, peers, size and provider alongside the URL; only the URL is used.
type Torrent struct {
	URL string `json:"url"`
}

// Episode is a single episode entry of a show response
type Episode struct {
	Season   int                `json:"season"`
	Episode  int                `json:"episode"`
	Title    string             `json:"title"`
	Torrents map[string]Torrent `json:"torrents"` // keyed by resolution label ("720p", "1080p", "0")
}

// ShowResponse is the success payload of GET /show/{imdb_id}.
// Episodes are not guaranteed to be sorted by season or episode number.
type ShowResponse struct {
	Title       string    `json:"title"`
	Year        string    `json:"year"`
	LastUpdated int64     `json:"last_updated"`
	Episodes    []Episode `json:"episodes"`
}

// MovieResponse is the success payload of GET /movie/{imdb_id}
type MovieResponse struct {
	Title    string                        `json:"title"`
	Year     string                        `json:"year"`
	Torrents map[string]map[string]Torrent `json:"torrents"` // locale -> resolution -> torrent
}

// FailureResponse is the payload the API sends instead of a success shape
// when it has nothing for the requested ID.
type FailureResponse struct {
	Code int `json:"code"`
}

// UnmarshalJSON rejects torrents without a url.
func (t *Torrent) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "Torrent", "url"); err != nil {
		return err
	}
	type plain Torrent
	return json.Unmarshal(data, (*plain)(t))
}

// UnmarshalJSON rejects episodes missing any of their fields.
func (e *Episode) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "Episode", "season", "episode", "title", "torrents"); err != nil {
		return err
	}
	type plain Episode
	return json.Unmarshal(data, (*plain)(e))
}

// UnmarshalJSON rejects show payloads missing any of their fields.
func (s *ShowResponse) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "ShowResponse", "title", "episodes", "year", "last_updated"); err != nil {
		return err
	}
	type plain ShowResponse
	return json.Unmarshal(data, (*plain)(s))
}

// UnmarshalJSON rejects movie payloads missing any of their fields.
func (m *MovieResponse) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "MovieResponse", "title", "torrents", "year"); err != nil {
		return err
	}
	type plain MovieResponse
	return json.Unmarshal(data, (*plain)(m))
}

// UnmarshalJSON requires the code field.
func (f *FailureResponse) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "FailureResponse", "code"); err != nil {
		return err
	}
	type plain FailureResponse
	return json.Unmarshal(data, (*plain)(f))
}
