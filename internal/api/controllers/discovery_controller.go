package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type DiscoveryController struct {
	discoveryService services.DiscoveryServiceInterface
	summaryService   services.SummaryServiceInterface
}

func NewDiscoveryController(
	discoveryService services.DiscoveryServiceInterface,
	summaryService services.SummaryServiceInterface,
) *DiscoveryController {
	return &DiscoveryController{
		discoveryService: discoveryService,
		summaryService:   summaryService,
	}
}

func (d *DiscoveryController) Discover(c *gin.Context) {
	traveler, err := travelerContextFromQuery(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := d.discoveryService.Aggregate(c.Request.Context(), traveler)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Businesses fetched successfully")
}

func (d *DiscoveryController) DestinationSummary(c *gin.Context) {
	location := c.Query("location")

	summary, err := d.summaryService.DestinationSummary(c.Request.Context(), location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"location": location, "summary": summary}, "Summary generated")
}

// travelerContextFromQuery builds the request-scoped traveler profile from
// query parameters. The location is trimmed to "City, Region" form here, since
// provider accuracy degrades with longer location strings.
func travelerContextFromQuery(c *gin.Context) (request_models.TravelerContext, error) {
	location := trimLocation(c.Query("location"))
	if location == "" {
		return request_models.TravelerContext{}, utils.ErrLocationRequired
	}

	traveler := request_models.TravelerContext{
		Location:          location,
		Term:              strings.TrimSpace(c.Query("term")),
		SearchCategories:  strings.TrimSpace(c.Query("categories")),
		Interests:         splitList(c.Query("interests")),
		UserAge:           intQuery(c, "age"),
		CompanionAges:     intListQuery(c, "companion_ages"),
		TravelingWithKids: c.Query("with_kids") == "true",
		KidsAges:          intListQuery(c, "kids_ages"),
	}

	return traveler, nil
}

// trimLocation keeps at most the first two comma-separated parts.
func trimLocation(raw string) string {
	parts := strings.Split(raw, ",")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.TrimSpace(strings.Join(parts, ", "))
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

func intListQuery(c *gin.Context, name string) []int {
	var out []int
	for _, s := range splitList(c.Query(name)) {
		if v, err := strconv.Atoi(s); err == nil {
			out = append(out, v)
		}
	}
	return out
}
