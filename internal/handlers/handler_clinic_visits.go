package handlers

import (
	"net/http"

	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// clinicVisitHandler handles outpatient visit records.
type clinicVisitHandler struct {
	visitService portssvc.ClinicVisitSvcFacade
}

func newClinicVisitHandler(vs portssvc.ClinicVisitSvcFacade) *clinicVisitHandler {
	return &clinicVisitHandler{visitService: vs}
}

func registerClinicVisitRoutes(rg *gin.RouterGroup, visitService portssvc.ClinicVisitSvcFacade) {
	h := newClinicVisitHandler(visitService)

	visits := rg.Group("/clinic-visits")
	{
		visits.GET("", h.listVisits)
		visits.GET("/:id", h.getVisit)
		visits.POST("", h.createVisit)
		visits.PUT("/:id", h.updateVisit)
	}
}

// listVisits godoc
// @Summary List clinic visits
// @Tags clinic-visits
// @Produce json
// @Success 200 {array} domain.ClinicVisit
// @Security BearerAuth
// @Router /clinic-visits [get]
func (h *clinicVisitHandler) listVisits(c *gin.Context) {
	visits, err := h.visitService.ListVisits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, visits)
}

// getVisit godoc
// @Summary Get a clinic visit
// @Tags clinic-visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} domain.ClinicVisit
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /clinic-visits/{id} [get]
func (h *clinicVisitHandler) getVisit(c *gin.Context) {
	visit, err := h.visitService.GetVisitByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, visit)
}

// createVisit godoc
// @Summary Create a clinic visit
// @Tags clinic-visits
// @Accept json
// @Produce json
// @Param visit body dto.CreateClinicVisitRequest true "Visit fields"
// @Success 201 {object} domain.ClinicVisit
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /clinic-visits [post]
func (h *clinicVisitHandler) createVisit(c *gin.Context) {
	var req dto.CreateClinicVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	visit, err := h.visitService.CreateVisit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, visit)
}

// updateVisit godoc
// @Summary Update a clinic visit
// @Tags clinic-visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param visit body dto.UpdateClinicVisitRequest true "Editable fields"
// @Success 200 {object} domain.ClinicVisit
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /clinic-visits/{id} [put]
func (h *clinicVisitHandler) updateVisit(c *gin.Context) {
	var req dto.UpdateClinicVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	visit, err := h.visitService.UpdateVisit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, visit)
}
