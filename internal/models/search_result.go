package models

// SearchResult is one title row of the IMDb search page
type SearchResult struct {
	Label  string `json:"label"`
	IMDBID string `json:"imdbId"`
}
