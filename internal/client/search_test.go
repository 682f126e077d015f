package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Belphemur/popcorn/internal/apperrors"
	"github.com/Belphemur/popcorn/internal/metrics"
	"github.com/Belphemur/popcorn/internal/models"
	"github.com/Belphemur/popcorn/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestClient_Search(t *testing.T) {
	page := testutil.GenerateFindPageHTML([]testutil.FindSectionOptions{
		{Header: "Names", Rows: []testutil.SearchRowOptions{{Title: "Justin Roiland", Href: "/name/nm1363595/"}}},
		{Header: "Titles", Rows: []testutil.SearchRowOptions{
			{IMDBID: "tt2861424", Title: "Rick and Morty", Extra: "(2013) (TV Series)"},
			{IMDBID: "tt10124426", Title: "Rick and Morty: The Non-Canonical Adventures", Extra: "(2019) (TV Series)"},
		}},
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find" {
			t.Errorf("Expected path /find, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "rick & morty" {
			t.Errorf("Expected query %q, got %q", "rick & morty", got)
		}
		if r.URL.RawQuery != "q=rick+%26+morty" {
			t.Errorf("Expected escaped raw query, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	beforeResults := getCounterValue(metrics.SearchResultsTotal)
	beforeSuccess := getCounterVecValue(metrics.APIRequestsTotal, metrics.EndpointSearch, metrics.OutcomeSuccess)

	results, err := newTestClient(server.URL).Search(context.Background(), "rick & morty")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := []models.SearchResult{
		{Label: "Rick and Morty (2013) (TV Series)", IMDBID: "tt2861424"},
		{Label: "Rick and Morty: The Non-Canonical Adventures (2019) (TV Series)", IMDBID: "tt10124426"},
	}
	if diff := cmp.Diff(expected, results); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}

	if after := getCounterValue(metrics.SearchResultsTotal); after != beforeResults+2 {
		t.Errorf("Expected search results to increase by 2, got diff %.0f", after-beforeResults)
	}
	if after := getCounterVecValue(metrics.APIRequestsTotal, metrics.EndpointSearch, metrics.OutcomeSuccess); after != beforeSuccess+1 {
		t.Errorf("Expected search success counter to increment by 1, got diff %.0f", after-beforeSuccess)
	}
}

func TestClient_Search_NoTitlesSection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testutil.GenerateEmptyHTML()))
	}))
	defer server.Close()

	results, err := newTestClient(server.URL).Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %v", results)
	}
}

func TestClient_Search_Latin1Page(t *testing.T) {
	page := testutil.GenerateTitlesPageHTML([]testutil.SearchRowOptions{
		{IMDBID: "tt0211915", Title: "Am\xe9lie", Extra: "(2001)"},
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=ISO-8859-1")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	results, err := newTestClient(server.URL).Search(context.Background(), "amelie")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := []models.SearchResult{{Label: "Amélie (2001)", IMDBID: "tt0211915"}}
	if diff := cmp.Diff(expected, results); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Search_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(testutil.GenerateTitlesPageHTML([]testutil.SearchRowOptions{{IMDBID: "tt1", Title: "x"}})))
	}))
	defer server.Close()

	before := getCounterVecValue(metrics.APIRequestsTotal, metrics.EndpointSearch, metrics.OutcomeError)

	_, err := newTestClient(server.URL).Search(context.Background(), "x")
	if !errors.Is(err, &apperrors.TransportError{}) {
		t.Fatalf("Expected TransportError, got: %v", err)
	}

	if after := getCounterVecValue(metrics.APIRequestsTotal, metrics.EndpointSearch, metrics.OutcomeError); after != before+1 {
		t.Errorf("Expected search error counter to increment by 1, got diff %.0f", after-before)
	}
}

func TestClient_Search_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	_, err := newTestClient(serverURL).Search(context.Background(), "x")
	if !errors.Is(err, &apperrors.TransportError{}) {
		t.Fatalf("Expected TransportError, got: %v", err)
	}
}
