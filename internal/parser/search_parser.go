package parser

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

const (
	// titlesSectionHeader is the header of the find-page section listing titles
	// (other sections list names, keywords and companies).
	titlesSectionHeader = "Titles"
	// titleHrefPrefix precedes the IMDb ID in result links: /title/tt2861424/?ref_=fn_al_tt_1
	titleHrefPrefix = "/title/"
)

// SearchParser implements the Parser interface for the IMDb find page
type SearchParser struct{}

// NewSearchParser creates a new search page parser instance
func NewSearchParser() *SearchParser {
	return &SearchParser{}
}

// ParseHtml parses the find page and extracts one SearchResult per row of
// the "Titles" section. A page without that section yields no results.
func (p *SearchParser) ParseHtml(body io.Reader) ([]models.SearchResult, error) {
	logger := config.GetLogger()
	logger.Debug().Msg("Starting HTML parsing for search results")

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to parse HTML document")
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	results := []models.SearchResult{}

	section := doc.Find("div.findSection").FilterFunction(func(i int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Find("h3.findSectionHeader").Text()) == titlesSectionHeader
	}).First()
	if section.Length() == 0 {
		logger.Debug().Msg("No Titles section found on search page")
		return results, nil
	}

	section.Find(".result_text").Each(func(i int, row *goquery.Selection) {
		href, exists := row.Find("a").First().Attr("href")
		if !exists {
			logger.Warn().Int("row", i).Msg("Search result row has no link, skipping")
			return
		}

		id, err := p.extractIMDBIDFromHref(href)
		if err != nil {
			logger.Warn().Int("row", i).Str("href", href).Err(err).Msg("Failed to extract IMDb ID, skipping row")
			return
		}

		result := models.SearchResult{
			Label:  normalizeLabel(row.Text()),
			IMDBID: id,
		}
		logger.Debug().Int("row", i).Str("label", result.Label).Str("imdbID", result.IMDBID).Msg("Extracted search result")
		results = append(results, result)
	})

	logger.Debug().Int("total_results", len(results)).Msg("Completed HTML parsing for search results")
	return results, nil
}

// extractIMDBIDFromHref strips titleHrefPrefix from the link path and
// returns everything up to the next slash. Relative and absolute links are
// both accepted.
func (p *SearchParser) extractIMDBIDFromHref(href string) (string, error) {
	parsed, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %w", err)
	}

	rest, ok := strings.CutPrefix(parsed.Path, titleHrefPrefix)
	if !ok {
		return "", fmt.Errorf("link path does not start with %q", titleHrefPrefix)
	}

	id, _, _ := strings.Cut(rest, "/")
	if id == "" {
		return "", fmt.Errorf("empty title ID in link")
	}
	return id, nil
}

// normalizeLabel collapses the row's whitespace and NFC-normalises it so
// titles with combining accents print the same as precomposed ones.
func normalizeLabel(text string) string {
	return norm.NFC.String(strings.Join(strings.Fields(text), " "))
}
