package request_models

import "roamio/internal/models/response_models"

type SavePlaceRequest struct {
	Place    response_models.BusinessRecord `json:"place" binding:"required"`
	Favorite bool                           `json:"favorite"`
}

type UpdatePlaceRequest struct {
	Favorite *bool `json:"favorite"`
	Visited  *bool `json:"visited"`
}
