package request_models

import "roamio/internal/models/response_models"

type GenerateItineraryRequest struct {
	Places   []response_models.BusinessRecord `json:"places" binding:"required"`
	Days     int                              `json:"days"`
	Location string                           `json:"location"`
}
