package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JovialSquirrel/local-news-podcast/config"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

func newsConfigFor(server *httptest.Server) *config.NewsConfig {
	return &config.NewsConfig{
		ApiUrl:  server.URL,
		ApiKey:  "test-key",
		Timeout: time.Second,
	}
}

func newNewsFetcher(server *httptest.Server) *newsdataFetcher {
	logger := NewZerologWrapper()
	fetcher := NewContentFetcher(logger, time.Second)
	return NewNewsdataFetcher(fetcher, newsConfigFor(server), logger).(*newsdataFetcher)
}

func TestNewsdataFetcher_LimitsAndOrder(t *testing.T) {
	var gotQuery map[string][]string
	var gotKeyHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotKeyHeader = r.Header.Get("X-ACCESS-KEY")
		w.Write([]byte(`{"status":"success","results":[
			{"title":"one","description":"first story"},
			{"title":"two","description":""},
			{"title":"three","description":"third story"},
			{"title":"four","description":"fourth story"}
		]}`))
	}))
	defer server.Close()

	items, err := newNewsFetcher(server).Fetch(context.Background(), domain.Location{City: "State College", State: "PA"}, 3)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"one", "two", "three"} {
		if items[i].Title != want {
			t.Errorf("item %d: expected title %q, got %q", i, want, items[i].Title)
		}
		if !strings.HasPrefix(items[i].String(), items[i].Title+". ") {
			t.Errorf("item %d string form %q lacks title prefix", i, items[i].String())
		}
	}

	if got := gotQuery["q"][0]; got != "State College PA" {
		t.Errorf("unexpected query: %q", got)
	}
	for key, want := range map[string]string{"country": "us", "language": "en", "category": "top"} {
		if got := gotQuery[key][0]; got != want {
			t.Errorf("query param %s: expected %q, got %q", key, want, got)
		}
	}
	if gotKeyHeader != "test-key" {
		t.Errorf("expected API key in X-ACCESS-KEY header, got %q", gotKeyHeader)
	}
	if _, ok := gotQuery["apikey"]; ok {
		t.Error("API key must not appear in the query string")
	}
}

func TestNewsdataFetcher_TitleSplitsOnFirstSentenceBreak(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","results":[
			{"title":"Downtown. A new era","description":"The plaza opens."}
		]}`))
	}))
	defer server.Close()

	items, err := newNewsFetcher(server).Fetch(context.Background(), domain.Location{City: "Altoona"}, 5)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Downtown" || items[0].Description != "A new era. The plaza opens." {
		t.Errorf("unexpected split: %+v", items[0])
	}
}

func TestNewsdataFetcher_TransportErrorOmitsKey(t *testing.T) {
	logger := NewZerologWrapper()
	fetcher := NewNewsdataFetcher(NewContentFetcher(logger, time.Second), &config.NewsConfig{
		ApiUrl:  "http://127.0.0.1:1",
		ApiKey:  "SUPER-SECRET-KEY",
		Timeout: time.Second,
	}, logger)

	_, err := fetcher.Fetch(context.Background(), domain.Location{City: "Altoona"}, 5)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if strings.Contains(err.Error(), "SUPER-SECRET-KEY") {
		t.Errorf("error chain leaked the API key: %v", err)
	}
}

func TestNewsdataFetcher_ZeroLimit(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	items, err := newNewsFetcher(server).Fetch(context.Background(), domain.Location{City: "Altoona"}, 0)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if called {
		t.Error("upstream should not be called for a zero limit")
	}
}

func TestNewsdataFetcher_EmptyResultsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","results":[]}`))
	}))
	defer server.Close()

	items, err := newNewsFetcher(server).Fetch(context.Background(), domain.Location{City: "Nowhere"}, 5)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestNewsdataFetcher_UpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newNewsFetcher(server).Fetch(context.Background(), domain.Location{City: "Altoona"}, 5)
	var statusErr *domain.UpstreamStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected UpstreamStatusError, got %v", err)
	}
	if statusErr.Status != http.StatusTooManyRequests {
		t.Errorf("unexpected status: %d", statusErr.Status)
	}
}

func TestNewsdataFetcher_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newNewsFetcher(server).Fetch(context.Background(), domain.Location{City: "Altoona"}, 5)
	var shapeErr *domain.UpstreamShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected UpstreamShapeError, got %v", err)
	}
}
