package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every popcorn metric. A one-shot CLI has nothing to scrape,
// so the registry is pushed to a Pushgateway at exit instead (see Push).
var Registry = prometheus.NewRegistry()

// Label values for APIRequestsTotal
const (
	EndpointShow   = "show"
	EndpointMovie  = "movie"
	EndpointSearch = "search"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure" // the API answered with its failure payload
	OutcomeError   = "error"
)

// Label values for BrowserLaunchesTotal
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request metrics
var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popcorn_api_requests_total",
			Help: "Total number of metadata and search requests by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	SearchResultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "popcorn_search_results_total",
			Help: "Total number of title matches returned by searches.",
		},
	)
)

// Browser metrics
var (
	BrowserLaunchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popcorn_browser_launches_total",
			Help: "Total number of magnet links handed to the default browser.",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(
		APIRequestsTotal,
		SearchResultsTotal,
		BrowserLaunchesTotal,
	)
}
