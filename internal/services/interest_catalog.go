package services

import "strings"

// interestMapping translates one profile interest into provider search terms
// and category filters.
type interestMapping struct {
	Terms      string
	Categories string
}

// Pure data so it can be extended without touching the discovery flow.
var interestCatalog = map[string]interestMapping{
	"food":      {Terms: "local food", Categories: "restaurants"},
	"coffee":    {Terms: "specialty coffee", Categories: "coffee"},
	"art":       {Terms: "art galleries", Categories: "galleries,museums"},
	"history":   {Terms: "historical landmarks", Categories: "landmarks,museums"},
	"culture":   {Terms: "cultural attractions", Categories: "museums,theater"},
	"nature":    {Terms: "parks nature", Categories: "parks,hiking"},
	"outdoors":  {Terms: "outdoor activities", Categories: "active"},
	"beaches":   {Terms: "beaches", Categories: "beaches"},
	"nightlife": {Terms: "nightlife", Categories: "nightlife,bars"},
	"music":     {Terms: "live music", Categories: "musicvenues,jazzandblues"},
	"shopping":  {Terms: "shopping", Categories: "shopping"},
	"sports":    {Terms: "sports", Categories: "active,stadiumsarenas"},
	"wellness":  {Terms: "spa wellness", Categories: "beautysvc,health"},
}

// lookupInterest resolves an interest label, falling back to the lower-cased
// label itself as a free-text term.
func lookupInterest(interest string) interestMapping {
	key := strings.ToLower(strings.TrimSpace(interest))
	if m, ok := interestCatalog[key]; ok {
		return m
	}
	return interestMapping{Terms: key}
}
