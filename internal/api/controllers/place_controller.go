package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{placeService: placeService}
}

func (p *PlaceController) SavePlace(c *gin.Context) {
	var request request_models.SavePlaceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	place, err := p.placeService.SavePlace(c.Request.Context(), c.GetString("user_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place saved successfully")
}

func (p *PlaceController) ListPlaces(c *gin.Context) {
	var filter repositories.PlaceFilter
	if v, ok := boolQuery(c, "favorite"); ok {
		filter.Favorite = &v
	}
	if v, ok := boolQuery(c, "visited"); ok {
		filter.Visited = &v
	}

	places, err := p.placeService.ListPlaces(c.Request.Context(), c.GetString("user_id"), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Saved places fetched successfully")
}

func (p *PlaceController) UpdatePlace(c *gin.Context) {
	var request request_models.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	place, err := p.placeService.UpdatePlace(c.Request.Context(), c.GetString("user_id"), c.Param("id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place updated successfully")
}

func (p *PlaceController) DeletePlace(c *gin.Context) {
	if err := p.placeService.DeletePlace(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place removed successfully")
}

func boolQuery(c *gin.Context, name string) (bool, bool) {
	switch c.Query(name) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
