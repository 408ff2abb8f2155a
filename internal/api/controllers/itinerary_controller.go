package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

const defaultItineraryDays = 3

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) Generate(c *gin.Context) {
	var request request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	days := request.Days
	if days < 1 {
		days = defaultItineraryDays
	}

	plans, err := i.itineraryService.Generate(request.Places, days, request.Location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		Location:  request.Location,
		Itinerary: plans,
	}, "Itinerary generated successfully")
}
