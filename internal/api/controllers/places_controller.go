package controllers

import (
	"github.com/gin-gonic/gin"

	"aarav/internal/repositories"
	"aarav/pkg/utils"
)

type PlacesController struct {
	places repositories.PlaceRepository
}

func NewPlacesController(places repositories.PlaceRepository) *PlacesController {
	return &PlacesController{
		places: places,
	}
}

// ListPois godoc
// @Summary List all points of interest
// @Description Returns the full Kathmandu Valley POI catalog with coordinates and stories
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/pois [get]
func (pc *PlacesController) ListPois(c *gin.Context) {
	utils.RespondSuccess(c, pc.places.List(), "ok")
}

// GetPoi godoc
// @Summary Get one point of interest
// @Description Returns a single POI by its id slug
// @Tags Places
// @Produce json
// @Param id path string true "POI id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/pois/{id} [get]
func (pc *PlacesController) GetPoi(c *gin.Context) {
	place, ok := pc.places.GetByID(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrPlaceNotFound)
		return
	}
	utils.RespondSuccess(c, place, "ok")
}
