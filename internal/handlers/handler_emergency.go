package handlers

import (
	"net/http"

	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// emergencyHandler handles emergency-department encounters.
type emergencyHandler struct {
	emergencyService portssvc.EmergencySvcFacade
}

func newEmergencyHandler(es portssvc.EmergencySvcFacade) *emergencyHandler {
	return &emergencyHandler{emergencyService: es}
}

func registerEmergencyRoutes(rg *gin.RouterGroup, emergencyService portssvc.EmergencySvcFacade) {
	h := newEmergencyHandler(emergencyService)

	emergencies := rg.Group("/emergency-cases")
	{
		emergencies.GET("", h.listOpenCases)
		emergencies.GET("/:id", h.getCase)
		emergencies.POST("", h.createCase)
		emergencies.PUT("/:id", h.updateCase)
	}
}

// listOpenCases godoc
// @Summary List open emergency cases
// @Description Discharged cases are excluded
// @Tags emergency-cases
// @Produce json
// @Success 200 {array} domain.EmergencyCase
// @Security BearerAuth
// @Router /emergency-cases [get]
func (h *emergencyHandler) listOpenCases(c *gin.Context) {
	cases, err := h.emergencyService.ListOpenCases(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cases)
}

// getCase godoc
// @Summary Get an emergency case
// @Tags emergency-cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} domain.EmergencyCase
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /emergency-cases/{id} [get]
func (h *emergencyHandler) getCase(c *gin.Context) {
	emergency, err := h.emergencyService.GetCaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emergency)
}

// createCase godoc
// @Summary Register an emergency arrival
// @Tags emergency-cases
// @Accept json
// @Produce json
// @Param case body dto.CreateEmergencyCaseRequest true "Case fields"
// @Success 201 {object} domain.EmergencyCase
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /emergency-cases [post]
func (h *emergencyHandler) createCase(c *gin.Context) {
	var req dto.CreateEmergencyCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	emergency, err := h.emergencyService.CreateCase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, emergency)
}

// updateCase godoc
// @Summary Update an emergency case
// @Tags emergency-cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param case body dto.UpdateEmergencyCaseRequest true "Editable fields"
// @Success 200 {object} domain.EmergencyCase
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /emergency-cases/{id} [put]
func (h *emergencyHandler) updateCase(c *gin.Context) {
	var req dto.UpdateEmergencyCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	emergency, err := h.emergencyService.UpdateCase(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emergency)
}
