package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Belphemur/popcorn/internal/apperrors"
	"github.com/Belphemur/popcorn/internal/config"
)

// get performs a GET and reads the whole body. Every failure, including a
// body cut short, is returned as an *apperrors.TransportError. The returned
// response is already closed; only its status and headers are meant to be used.
func (c *client) get(ctx context.Context, endpoint, accept string) (*http.Response, []byte, error) {
	logger := config.GetLogger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, &apperrors.TransportError{URL: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	// Set user agent to avoid being blocked
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &apperrors.TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &apperrors.TransportError{URL: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	logger.Debug().
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Received response")

	return resp, body, nil
}
