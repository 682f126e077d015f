package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/metrics"
	"github.com/Belphemur/popcorn/internal/models"
)

// FetchShow retrieves GET {domain}/show/{imdbID}?locale={locale}
func (c *client) FetchShow(ctx context.Context, imdbID, locale string) (models.APIResult[models.ShowResponse], error) {
	return fetchAPIResult[models.ShowResponse](ctx, c, metrics.EndpointShow, imdbID, locale)
}

// FetchMovie retrieves GET {domain}/movie/{imdbID}?locale={locale}
func (c *client) FetchMovie(ctx context.Context, imdbID, locale string) (models.APIResult[models.MovieResponse], error) {
	return fetchAPIResult[models.MovieResponse](ctx, c, metrics.EndpointMovie, imdbID, locale)
}

// fetchAPIResult does not look at the HTTP status: the API answers unknown
// IDs with its failure payload, sometimes with a 200, so the body shape
// decides between success and failure.
func fetchAPIResult[T any](ctx context.Context, c *client, endpoint, imdbID, locale string) (models.APIResult[T], error) {
	logger := config.GetLogger()

	endpointURL := fmt.Sprintf("%s/%s/%s?locale=%s", c.baseURL, endpoint, url.PathEscape(imdbID), url.QueryEscape(locale))
	logger.Info().Str("endpoint", endpoint).Str("imdbID", imdbID).Str("locale", locale).Msg("Fetching metadata")

	_, body, err := c.get(ctx, endpointURL, "application/json")
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		logger.Debug().Err(err).Str("url", endpointURL).Msg("Metadata request failed")
		return models.APIResult[T]{}, err
	}

	result, err := models.DecodeAPIResult[T](endpoint, body)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		logger.Debug().Err(err).Str("url", endpointURL).Msg("Metadata response matched neither shape")
		return models.APIResult[T]{}, err
	}

	if failure, ok := result.Failure(); ok {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeFailure).Inc()
		logger.Info().Str("imdbID", imdbID).Int("code", failure.Code).Msg("API returned failure payload")
		return result, nil
	}

	metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeSuccess).Inc()
	logger.Info().Str("imdbID", imdbID).Msg("Successfully fetched metadata")
	return result, nil
}
