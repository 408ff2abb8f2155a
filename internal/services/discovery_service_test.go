package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/cache"
	"roamio/pkg/utils"
)

type fakeSearchClient struct {
	queries []SearchQuery
	handler func(q SearchQuery) (*SearchResult, error)
}

func (f *fakeSearchClient) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	f.queries = append(f.queries, q)
	return f.handler(q)
}

func searchResult(businesses ...response_models.BusinessRecord) *SearchResult {
	return &SearchResult{
		Businesses: businesses,
		Total:      len(businesses),
		Region: response_models.Region{
			Center: &response_models.Coordinates{Latitude: 48.85, Longitude: 2.35},
		},
	}
}

func ratedPlace(id string, rating float64, reviews int, aliases ...string) response_models.BusinessRecord {
	p := placeNoCoords(id, "Place "+id, rating, "$$", aliases)
	p.ReviewCount = reviews
	return p
}

func TestDeriveContextTerms(t *testing.T) {
	tests := []struct {
		name     string
		traveler request_models.TravelerContext
		expected string
	}{
		{
			"empty context defaults to restaurants",
			request_models.TravelerContext{Location: "Paris, France"},
			"restaurants",
		},
		{
			"young solo traveler gets trendy popular",
			request_models.TravelerContext{Location: "Berlin, Germany", UserAge: 22},
			"trendy popular",
		},
		{
			"explicit term survives for young travelers",
			request_models.TravelerContext{Location: "Berlin, Germany", UserAge: 22, Term: "sushi"},
			"sushi",
		},
		{
			"family attributes",
			request_models.TravelerContext{
				Location:          "Orlando, USA",
				UserAge:           40,
				CompanionAges:     []int{38, 36, 10, 8},
				TravelingWithKids: true,
				KidsAges:          []int{3, 9},
			},
			"family-friendly kid-friendly good for kids",
		},
		{
			"large group",
			request_models.TravelerContext{
				Location:      "Munich, Germany",
				UserAge:       30,
				CompanionAges: []int{30, 30, 30, 30, 30},
			},
			"good for groups",
		},
		{
			"older travelers prefer quiet",
			request_models.TravelerContext{Location: "Bath, UK", UserAge: 60, CompanionAges: []int{58}},
			"quiet",
		},
	}

	for _, tc := range tests {
		if got := deriveContextTerms(tc.traveler); got != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestFamilyOfFiveDoesNotGetGroupAttribute(t *testing.T) {
	traveler := request_models.TravelerContext{
		Location:          "Orlando, USA",
		UserAge:           40,
		CompanionAges:     []int{38, 36, 10},
		TravelingWithKids: true,
		KidsAges:          []int{3, 9},
	}

	if traveler.GroupSize() != 4+1 {
		t.Fatalf("expected group size 5, got %d", traveler.GroupSize())
	}
	terms := deriveContextTerms(traveler)
	if strings.Contains(terms, "good for groups") {
		t.Errorf("group of 5 should not get the groups attribute: %q", terms)
	}
	for _, want := range []string{"family-friendly", "kid-friendly", "good for kids"} {
		if !strings.Contains(terms, want) {
			t.Errorf("expected %q in %q", want, terms)
		}
	}
}

func TestCacheKeyReflectsDerivedTerms(t *testing.T) {
	traveler := request_models.TravelerContext{Location: "Paris, France"}
	key := discoveryCacheKey(traveler, deriveContextTerms(traveler))

	if !strings.Contains(key, "paris, france") || !strings.Contains(key, "restaurants") {
		t.Errorf("cache key should carry location and derived terms: %q", key)
	}
}

func TestAggregateDedupesAndSortsByScore(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		if q.SortBy == "rating" {
			return searchResult(
				ratedPlace("b", 3.0, 10, "thai"), // duplicate of a primary result
				ratedPlace("c", 5.0, 1000, "museums"),
			), nil
		}
		return searchResult(
			ratedPlace("a", 4.0, 100, "restaurants"),
			ratedPlace("b", 3.0, 10, "thai"),
		), nil
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	out, err := svc.Aggregate(context.Background(), request_models.TravelerContext{Location: "Paris, France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := make([]string, 0, len(out.Businesses))
	seen := make(map[string]bool)
	for _, b := range out.Businesses {
		if seen[b.ID] {
			t.Fatalf("duplicate id %s in output", b.ID)
		}
		seen[b.ID] = true
		ids = append(ids, b.ID)
	}

	// score: c = 5*log10(1001) > a = 4*log10(101) > b = 3*log10(11)
	expected := []string{"c", "a", "b"}
	for i, id := range expected {
		if ids[i] != id {
			t.Fatalf("expected order %v, got %v", expected, ids)
		}
	}
	if out.Total != 3 {
		t.Errorf("expected total 3, got %d", out.Total)
	}
	if out.Region.Center == nil {
		t.Error("region should come from the primary query")
	}
}

func TestAggregateStableOrderOnEqualScore(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		if q.SortBy == "rating" {
			return searchResult(), nil
		}
		return searchResult(
			ratedPlace("first", 4.0, 50, "thai"),
			ratedPlace("second", 4.0, 50, "thai"),
		), nil
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	out, err := svc.Aggregate(context.Background(), request_models.TravelerContext{Location: "Paris, France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Businesses[0].ID != "first" || out.Businesses[1].ID != "second" {
		t.Errorf("equal scores must keep insertion order, got %s then %s",
			out.Businesses[0].ID, out.Businesses[1].ID)
	}
}

func TestMergePrecedenceKeepsPrimaryRecord(t *testing.T) {
	primary := ratedPlace("dup", 4.0, 100, "restaurants")
	primary.Name = "Primary Name"
	shadow := ratedPlace("dup", 4.0, 100, "restaurants")
	shadow.Name = "Rating Name"

	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		if q.SortBy == "rating" {
			return searchResult(shadow), nil
		}
		return searchResult(primary), nil
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	out, err := svc.Aggregate(context.Background(), request_models.TravelerContext{Location: "Paris, France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Businesses) != 1 || out.Businesses[0].Name != "Primary Name" {
		t.Errorf("first-seen record should win the merge, got %+v", out.Businesses)
	}
}

func TestAssignTags(t *testing.T) {
	noMatch := assignTags([]response_models.Category{{Title: "Psychics", Alias: "psychics"}})
	if len(noMatch) != 1 || noMatch[0] != "All" {
		t.Errorf("unmatched categories should yield exactly [All], got %v", noMatch)
	}

	cultural := assignTags([]response_models.Category{{Title: "Art Museums", Alias: "artmuseums"}})
	if !containsTag(cultural, "All") || !containsTag(cultural, "Culture & Landmarks") {
		t.Errorf("museum should be tagged cultural, got %v", cultural)
	}

	multi := assignTags([]response_models.Category{
		{Title: "Restaurants", Alias: "restaurants"},
		{Title: "Cocktail Bars", Alias: "cocktailbars"},
	})
	if !containsTag(multi, "Food & Dining") || !containsTag(multi, "Nightlife") {
		t.Errorf("expected both dining and nightlife tags, got %v", multi)
	}
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func TestInterestQueryFailureIsSwallowed(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		if q.Limit == subQueryLimit {
			return nil, errors.New("provider hiccup")
		}
		return searchResult(ratedPlace("a", 4.0, 100, "restaurants")), nil
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	out, err := svc.Aggregate(context.Background(), request_models.TravelerContext{
		Location:  "Paris, France",
		Interests: []string{"nature", "art"},
	})
	if err != nil {
		t.Fatalf("interest failures must not abort aggregation: %v", err)
	}
	if len(out.Businesses) != 1 {
		t.Errorf("expected the primary result to survive, got %d businesses", len(out.Businesses))
	}
}

func TestPrimaryFailureAborts(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		return nil, errors.New("connection refused")
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	_, err := svc.Aggregate(context.Background(), request_models.TravelerContext{Location: "Paris, France"})
	if !errors.Is(err, utils.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRatingFailureAborts(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		if q.SortBy == "rating" {
			return nil, errors.New("timeout")
		}
		return searchResult(ratedPlace("a", 4.0, 100, "restaurants")), nil
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	_, err := svc.Aggregate(context.Background(), request_models.TravelerContext{Location: "Paris, France"})
	if !errors.Is(err, utils.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMissingAPIKeySurfacesConfigError(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		return nil, utils.ErrProviderNotConfigured
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	_, err := svc.Aggregate(context.Background(), request_models.TravelerContext{Location: "Paris, France"})
	if !errors.Is(err, utils.ErrProviderNotConfigured) {
		t.Fatalf("expected ErrProviderNotConfigured, got %v", err)
	}
}

func TestLocationRequired(t *testing.T) {
	svc := NewDiscoveryService(&fakeSearchClient{}, cache.NewMemoryStore())
	_, err := svc.Aggregate(context.Background(), request_models.TravelerContext{Location: "  "})
	if !errors.Is(err, utils.ErrLocationRequired) {
		t.Fatalf("expected ErrLocationRequired, got %v", err)
	}
}

func TestCacheShortCircuitsSecondCall(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		return searchResult(ratedPlace("a", 4.0, 100, "restaurants")), nil
	}}

	store := cache.NewMemoryStore()
	svc := NewDiscoveryService(client, store)
	traveler := request_models.TravelerContext{Location: "Paris, France"}

	first, err := svc.Aggregate(context.Background(), traveler)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	callsAfterFirst := len(client.queries)

	second, err := svc.Aggregate(context.Background(), traveler)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.queries) != callsAfterFirst {
		t.Errorf("cache hit should not reach the provider, got %d extra queries",
			len(client.queries)-callsAfterFirst)
	}
	if second.Total != first.Total || len(second.Businesses) != len(first.Businesses) {
		t.Errorf("cached payload should match the original response")
	}
}

func TestInterestQueriesUseCatalogAndCap(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		return searchResult(ratedPlace("a", 4.0, 100, "restaurants")), nil
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	_, err := svc.Aggregate(context.Background(), request_models.TravelerContext{
		Location:  "Paris, France",
		Interests: []string{"coffee", "unmapped thing", "art", "nature", "music", "sports"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var interestQueries []SearchQuery
	for _, q := range client.queries {
		if q.Limit == subQueryLimit {
			interestQueries = append(interestQueries, q)
		}
	}
	if len(interestQueries) != maxInterestQueries {
		t.Fatalf("expected %d interest queries, got %d", maxInterestQueries, len(interestQueries))
	}
	if interestQueries[0].Term != "specialty coffee" || interestQueries[0].Categories != "coffee" {
		t.Errorf("coffee interest should use the catalog mapping, got %+v", interestQueries[0])
	}
	if interestQueries[1].Term != "unmapped thing" || interestQueries[1].Categories != "" {
		t.Errorf("unknown interest should fall back to the lower-cased label, got %+v", interestQueries[1])
	}
}

func TestFamilyQueryIssuedForKids(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		if q.Term == familySearchTerm {
			return searchResult(ratedPlace("zoo", 4.5, 800, "zoos")), nil
		}
		return searchResult(ratedPlace("a", 4.0, 100, "restaurants")), nil
	}}

	svc := NewDiscoveryService(client, cache.NewMemoryStore())
	out, err := svc.Aggregate(context.Background(), request_models.TravelerContext{
		Location:          "San Diego, USA",
		UserAge:           40,
		TravelingWithKids: true,
		KidsAges:          []int{6},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, b := range out.Businesses {
		if b.ID == "zoo" {
			found = true
		}
	}
	if !found {
		t.Error("family query results should be merged in")
	}
}

func TestAggregateOutputFeedsItineraryBuilder(t *testing.T) {
	client := &fakeSearchClient{handler: func(q SearchQuery) (*SearchResult, error) {
		return searchResult(
			ratedPlace("a", 4.0, 100, "restaurants"),
			ratedPlace("b", 4.5, 300, "museums"),
			ratedPlace("c", 4.2, 50, "bakeries"),
		), nil
	}}

	discovery := NewDiscoveryService(client, cache.NewMemoryStore())
	out, err := discovery.Aggregate(context.Background(), request_models.TravelerContext{Location: "Paris, France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	builder := NewItineraryService()
	if _, err := builder.Generate(out.Businesses, 2, "Paris, France"); err != nil {
		t.Fatalf("aggregator output should always feed the builder: %v", err)
	}
}
