package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/cache"
	"roamio/pkg/utils"
)

const (
	discoveryCacheTTL = 24 * time.Hour

	maxInterestQueries = 4
	primaryLimit       = 50
	subQueryLimit      = 30

	familySearchTerm       = "family friendly activities"
	familySearchCategories = "kids_activities,amusementparks,zoos,aquariums"
)

// Conditional tags assigned on top of the unconditional "All".
var tagMatchers = []struct {
	tag string
	re  *regexp.Regexp
}{
	{"Food & Dining", regexp.MustCompile(`restaurant|food|cafe|coffee|bakery|brunch|dessert|diner`)},
	{"Activities", regexp.MustCompile(`tour|park|hik|beach|amusement|entertainment|active|shopping|outdoor`)},
	{"Nightlife", regexp.MustCompile(`bars?\b|nightlife|club|lounge|pubs?\b|cocktail|speakeas`)},
	{"Culture & Landmarks", regexp.MustCompile(`museum|galler|landmark|historic|art|theat|church|temple|monument`)},
}

type DiscoveryServiceInterface interface {
	Aggregate(ctx context.Context, traveler request_models.TravelerContext) (*response_models.DiscoveryResponse, error)
}

type DiscoveryService struct {
	search BusinessSearchClient
	store  cache.Store
}

func NewDiscoveryService(search BusinessSearchClient, store cache.Store) DiscoveryServiceInterface {
	return &DiscoveryService{
		search: search,
		store:  store,
	}
}

// subQueryResult is the outcome of one optional fan-out query. Failed
// sub-queries are logged and skipped; only successful ones are merged.
type subQueryResult struct {
	label      string
	businesses []response_models.BusinessRecord
	err        error
}

func (d *DiscoveryService) Aggregate(ctx context.Context, traveler request_models.TravelerContext) (*response_models.DiscoveryResponse, error) {
	if strings.TrimSpace(traveler.Location) == "" {
		return nil, utils.ErrLocationRequired
	}

	contextTerms := deriveContextTerms(traveler)
	cacheKey := discoveryCacheKey(traveler, contextTerms)

	if payload, ok := d.store.Get(ctx, cacheKey); ok {
		var cached response_models.DiscoveryResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		log.Printf("Discarding unreadable cache entry %s", cacheKey)
	}

	// Primary and rating-oriented queries are load-bearing: the response's
	// region comes from the primary result, so their failures propagate.
	primary, err := d.search.Search(ctx, SearchQuery{
		Location:   traveler.Location,
		Term:       contextTerms,
		Categories: traveler.SearchCategories,
		Limit:      primaryLimit,
		SortBy:     "best_match",
	})
	if err != nil {
		return nil, providerErr("primary search", err)
	}

	ratingTerm := traveler.Term
	if ratingTerm == "" {
		ratingTerm = "best"
	}
	topRated, err := d.search.Search(ctx, SearchQuery{
		Location: traveler.Location,
		Term:     ratingTerm,
		Limit:    primaryLimit,
		SortBy:   "rating",
	})
	if err != nil {
		return nil, providerErr("rating search", err)
	}

	subResults := d.runSubQueries(ctx, traveler)

	merged := make([]response_models.BusinessRecord, 0, len(primary.Businesses)+len(topRated.Businesses))
	seen := make(map[string]bool)
	appendUnseen := func(records []response_models.BusinessRecord) {
		for _, b := range records {
			if b.ID == "" || seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			merged = append(merged, b)
		}
	}

	appendUnseen(primary.Businesses)
	appendUnseen(topRated.Businesses)
	for _, sub := range subResults {
		if sub.err != nil {
			log.Printf("Skipping failed %s query: %v", sub.label, sub.err)
			continue
		}
		appendUnseen(sub.businesses)
	}

	for i := range merged {
		merged[i].CustomTags = assignTags(merged[i].Categories)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return businessScore(merged[i]) > businessScore(merged[j])
	})

	out := &response_models.DiscoveryResponse{
		Businesses: merged,
		Total:      len(merged),
		Region:     primary.Region,
	}

	if payload, err := json.Marshal(out); err == nil {
		d.store.Set(ctx, cacheKey, payload, discoveryCacheTTL)
	}

	return out, nil
}

// runSubQueries issues the optional per-interest and family queries. These are
// best-effort: a failure is carried back as a tagged result, never an error.
func (d *DiscoveryService) runSubQueries(ctx context.Context, traveler request_models.TravelerContext) []subQueryResult {
	var results []subQueryResult

	interests := traveler.Interests
	if len(interests) > maxInterestQueries {
		interests = interests[:maxInterestQueries]
	}
	for _, interest := range interests {
		mapping := lookupInterest(interest)
		res, err := d.search.Search(ctx, SearchQuery{
			Location:   traveler.Location,
			Term:       mapping.Terms,
			Categories: mapping.Categories,
			Limit:      subQueryLimit,
			SortBy:     "best_match",
		})
		if err != nil {
			results = append(results, subQueryResult{label: "interest " + interest, err: err})
			continue
		}
		results = append(results, subQueryResult{label: "interest " + interest, businesses: res.Businesses})
	}

	if traveler.TravelingWithKids {
		res, err := d.search.Search(ctx, SearchQuery{
			Location:   traveler.Location,
			Term:       familySearchTerm,
			Categories: familySearchCategories,
			Limit:      subQueryLimit,
			SortBy:     "best_match",
		})
		if err != nil {
			results = append(results, subQueryResult{label: "family", err: err})
		} else {
			results = append(results, subQueryResult{label: "family", businesses: res.Businesses})
		}
	}

	return results
}

// deriveContextTerms turns the traveler profile into the free-text search
// phrase for the primary query.
func deriveContextTerms(traveler request_models.TravelerContext) string {
	var attrs []string

	if traveler.TravelingWithKids {
		attrs = append(attrs, "family-friendly")
	}
	for _, age := range traveler.KidsAges {
		if age < 5 {
			attrs = append(attrs, "kid-friendly")
			break
		}
	}
	for _, age := range traveler.KidsAges {
		if age >= 5 && age <= 12 {
			attrs = append(attrs, "good for kids")
			break
		}
	}
	if traveler.GroupSize() >= 6 {
		attrs = append(attrs, "good for groups")
	}

	term := traveler.Term
	avgAge := traveler.AverageAge()
	if avgAge < 25 && term == "" {
		term = "trendy popular"
	}
	if avgAge > 55 {
		attrs = append(attrs, "quiet")
	}

	parts := make([]string, 0, 1+len(attrs))
	if term != "" {
		parts = append(parts, term)
	}
	parts = append(parts, attrs...)

	combined := strings.TrimSpace(strings.Join(parts, " "))
	if combined == "" {
		return "restaurants"
	}
	return combined
}

func discoveryCacheKey(traveler request_models.TravelerContext, contextTerms string) string {
	return fmt.Sprintf("discover:v1:%s|%s|%s|kids=%t|group=%d",
		strings.ToLower(strings.TrimSpace(traveler.Location)),
		contextTerms,
		traveler.SearchCategories,
		traveler.TravelingWithKids,
		traveler.GroupSize(),
	)
}

// assignTags returns "All" plus any conditional tag whose keyword pattern
// matches the joined category titles and aliases.
func assignTags(categories []response_models.Category) []string {
	var joined strings.Builder
	for _, c := range categories {
		joined.WriteString(strings.ToLower(c.Title))
		joined.WriteString(" ")
		joined.WriteString(strings.ToLower(c.Alias))
		joined.WriteString(" ")
	}
	haystack := joined.String()

	tags := []string{"All"}
	for _, m := range tagMatchers {
		if m.re.MatchString(haystack) {
			tags = append(tags, m.tag)
		}
	}
	return tags
}

// businessScore rewards both quality and popularity, damping very high review
// counts logarithmically. Missing rating scores 0; missing review counts are
// treated as a single review.
func businessScore(b response_models.BusinessRecord) float64 {
	reviews := b.ReviewCount
	if reviews <= 0 {
		reviews = 1
	}
	return b.Rating * math.Log10(float64(reviews)+1)
}

func providerErr(stage string, err error) error {
	if errors.Is(err, utils.ErrProviderNotConfigured) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", utils.ErrProviderUnavailable, stage, err)
}
