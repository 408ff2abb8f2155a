package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

const defaultSearchBaseURL = "https://api.yelp.com/v3"

// SearchQuery is one request against the business-search provider.
type SearchQuery struct {
	Location   string
	Term       string
	Categories string
	Limit      int
	SortBy     string // "best_match" or "rating"
}

type SearchResult struct {
	Businesses []response_models.BusinessRecord `json:"businesses"`
	Total      int                              `json:"total"`
	Region     response_models.Region           `json:"region"`
}

type BusinessSearchClient interface {
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)
}

type YelpClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewYelpClient() *YelpClient {
	base := os.Getenv("YELP_API_BASE_URL")
	if base == "" {
		base = defaultSearchBaseURL
	}
	return &YelpClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("YELP_API_KEY"),
		BaseURL: base,
	}
}

func (c *YelpClient) Search(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	// Checked per request so a misconfigured deployment fails before any
	// network call, not at startup.
	if c.APIKey == "" {
		return nil, utils.ErrProviderNotConfigured
	}

	q := url.Values{}
	q.Set("location", query.Location)
	if query.Term != "" {
		q.Set("term", query.Term)
	}
	if query.Categories != "" {
		q.Set("categories", query.Categories)
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.SortBy != "" {
		q.Set("sort_by", query.SortBy)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/businesses/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("business search http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("business search bad status: %s", resp.Status)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("business search decode: %w", err)
	}

	return &result, nil
}
