package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roamio/pkg/utils"
)

func TestSearchSendsProviderParameters(t *testing.T) {
	var gotAuth string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"location": r.URL.Query().Get("location"),
			"term":     r.URL.Query().Get("term"),
			"limit":    r.URL.Query().Get("limit"),
			"sort_by":  r.URL.Query().Get("sort_by"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"businesses": [{"id": "x1", "name": "Spot", "rating": 4.5, "review_count": 120}],
			"total": 1,
			"region": {"center": {"latitude": 48.85, "longitude": 2.35}}
		}`))
	}))
	defer srv.Close()

	client := &YelpClient{HTTP: srv.Client(), APIKey: "test-key", BaseURL: srv.URL}

	result, err := client.Search(context.Background(), SearchQuery{
		Location: "Paris, France",
		Term:     "restaurants",
		Limit:    50,
		SortBy:   "best_match",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotQuery["location"] != "Paris, France" || gotQuery["term"] != "restaurants" ||
		gotQuery["limit"] != "50" || gotQuery["sort_by"] != "best_match" {
		t.Errorf("unexpected query parameters: %v", gotQuery)
	}

	if len(result.Businesses) != 1 || result.Businesses[0].ID != "x1" {
		t.Fatalf("unexpected decoded result: %+v", result)
	}
	if result.Region.Center == nil || result.Region.Center.Latitude != 48.85 {
		t.Errorf("region center not decoded: %+v", result.Region)
	}
}

func TestSearchWithoutAPIKeyFailsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := &YelpClient{HTTP: srv.Client(), APIKey: "", BaseURL: srv.URL}

	_, err := client.Search(context.Background(), SearchQuery{Location: "Paris, France"})
	if !errors.Is(err, utils.ErrProviderNotConfigured) {
		t.Fatalf("expected ErrProviderNotConfigured, got %v", err)
	}
	if called {
		t.Error("no network call should be made without an API key")
	}
}

func TestSearchBadStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &YelpClient{HTTP: srv.Client(), APIKey: "k", BaseURL: srv.URL}

	if _, err := client.Search(context.Background(), SearchQuery{Location: "Paris, France"}); err == nil {
		t.Fatal("expected an error for non-2xx status")
	}
}
