package request_models

import "roamio/internal/models/response_models"

type CreateTripRequest struct {
	Title     string   `json:"title" binding:"required"`
	Location  string   `json:"location" binding:"required"`
	StartDate string   `json:"start_date"`
	DayCount  int      `json:"day_count"`
	Interests []string `json:"interests"`
}

type SaveItineraryRequest struct {
	Itinerary []response_models.DayPlan `json:"itinerary" binding:"required"`
}

type UpdateActivityRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
