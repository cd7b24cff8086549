package handlers

import (
	"net/http"

	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type statisticsHandler struct {
	statisticsService portssvc.StatisticsSvcFacade
}

func newStatisticsHandler(ss portssvc.StatisticsSvcFacade) *statisticsHandler {
	return &statisticsHandler{statisticsService: ss}
}

func registerStatisticsRoutes(rg *gin.RouterGroup, statisticsService portssvc.StatisticsSvcFacade) {
	h := newStatisticsHandler(statisticsService)
	rg.GET("/statistics", h.dashboard)
}

// dashboard godoc
// @Summary Dashboard summary counts
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Security BearerAuth
// @Router /statistics [get]
func (h *statisticsHandler) dashboard(c *gin.Context) {
	stats, err := h.statisticsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatisticsResponse{
		TodayAppointments:  stats.TodayAppointments,
		WardPatients:       stats.WardPatients,
		ScheduledSurgeries: stats.ScheduledSurgeries,
		EmergencyCases:     stats.EmergencyCases,
		TotalPatients:      stats.TotalPatients,
	})
}
