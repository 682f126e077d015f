package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Belphemur/popcorn/internal/apperrors"
	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/metrics"
	"github.com/Belphemur/popcorn/internal/models"
	"github.com/Belphemur/popcorn/internal/parser"
)

// Search queries GET {search_domain}/find?q={query} and returns the rows of
// the page's Titles section. No Titles section means no results, not an error.
func (c *client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	logger := config.GetLogger()

	endpointURL := fmt.Sprintf("%s/find?q=%s", c.searchURL, url.QueryEscape(query))
	logger.Info().Str("query", query).Msg("Searching titles")

	results, err := c.fetchSearchPage(ctx, endpointURL)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(metrics.EndpointSearch, metrics.OutcomeError).Inc()
		logger.Debug().Err(err).Str("url", endpointURL).Msg("Search failed")
		return nil, err
	}

	metrics.APIRequestsTotal.WithLabelValues(metrics.EndpointSearch, metrics.OutcomeSuccess).Inc()
	metrics.SearchResultsTotal.Add(float64(len(results)))
	logger.Info().Str("query", query).Int("count", len(results)).Msg("Search completed")
	return results, nil
}

func (c *client) fetchSearchPage(ctx context.Context, endpointURL string) ([]models.SearchResult, error) {
	resp, body, err := c.get(ctx, endpointURL, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, err
	}

	// An error page is not a result page
	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.TransportError{URL: endpointURL, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	utf8Body, err := parser.NewUTF8Reader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &apperrors.DecodeError{Resource: metrics.EndpointSearch, Err: err}
	}

	results, err := c.searchParser.ParseHtml(utf8Body)
	if err != nil {
		return nil, &apperrors.DecodeError{Resource: metrics.EndpointSearch, Err: err}
	}
	return results, nil
}
