package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/models"
	"github.com/Belphemur/popcorn/internal/parser"
)

// Client defines the interface for querying the metadata API and the title search
type Client interface {
	// FetchShow and FetchMovie issue a single GET and decode the body by
	// shape. A failure payload is a successful call.
	FetchShow(ctx context.Context, imdbID, locale string) (models.APIResult[models.ShowResponse], error)
	FetchMovie(ctx context.Context, imdbID, locale string) (models.APIResult[models.MovieResponse], error)

	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// client implements the Client interface
type client struct {
	httpClient   *http.Client
	baseURL      string
	searchURL    string
	searchParser parser.Parser[models.SearchResult]
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to keep its pooling, HTTP/2 and dial settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	searchURL := cfg.SearchDomain
	if searchURL == "" {
		searchURL = config.DefaultSearchDomain
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newCompressionTransport(baseTransport),
		},
		baseURL:      strings.TrimRight(cfg.Domain, "/"),
		searchURL:    strings.TrimRight(searchURL, "/"),
		searchParser: parser.NewSearchParser(),
	}
}
