package controllers

import (
	"github.com/gin-gonic/gin"

	"aarav/internal/models/response_models"
	"aarav/internal/repositories"
	"aarav/internal/services"
	"aarav/pkg/utils"
)

type ExportController struct {
	sessions repositories.SessionRepository
	routes   services.RouteServiceInterface
}

func NewExportController(sessions repositories.SessionRepository, routes services.RouteServiceInterface) *ExportController {
	return &ExportController{
		sessions: sessions,
		routes:   routes,
	}
}

// ExportTrip godoc
// @Summary Export the planned trip as map links
// @Description Returns one Google Maps directions link per confirmed day
// @Tags Export
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Router /api/export/{sessionId} [get]
func (ec *ExportController) ExportTrip(c *gin.Context) {
	session, ok := ec.sessions.Get(c.Param("sessionId"))
	if !ok {
		// An unknown session exports an empty trip, not an error.
		utils.RespondSuccess(c, []response_models.DayLink{}, "ok")
		return
	}

	links := ec.routes.ExportLinks(session.Trip)
	if links == nil {
		links = []response_models.DayLink{}
	}
	utils.RespondSuccess(c, links, "ok")
}
