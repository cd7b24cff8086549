package handlers

import (
	"net/http"

	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// wardAdmissionHandler handles inpatient stay records.
type wardAdmissionHandler struct {
	admissionService portssvc.WardAdmissionSvcFacade
}

func newWardAdmissionHandler(as portssvc.WardAdmissionSvcFacade) *wardAdmissionHandler {
	return &wardAdmissionHandler{admissionService: as}
}

func registerWardAdmissionRoutes(rg *gin.RouterGroup, admissionService portssvc.WardAdmissionSvcFacade) {
	h := newWardAdmissionHandler(admissionService)

	admissions := rg.Group("/ward-admissions")
	{
		admissions.GET("", h.listCurrentAdmissions)
		admissions.GET("/:id", h.getAdmission)
		admissions.POST("", h.createAdmission)
		admissions.PUT("/:id", h.updateAdmission)
	}
}

// listCurrentAdmissions godoc
// @Summary List patients currently on the ward
// @Tags ward-admissions
// @Produce json
// @Success 200 {array} domain.WardAdmission
// @Security BearerAuth
// @Router /ward-admissions [get]
func (h *wardAdmissionHandler) listCurrentAdmissions(c *gin.Context) {
	admissions, err := h.admissionService.ListCurrentAdmissions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admissions)
}

// getAdmission godoc
// @Summary Get a ward admission
// @Tags ward-admissions
// @Produce json
// @Param id path string true "Admission ID"
// @Success 200 {object} domain.WardAdmission
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /ward-admissions/{id} [get]
func (h *wardAdmissionHandler) getAdmission(c *gin.Context) {
	admission, err := h.admissionService.GetAdmissionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admission)
}

// createAdmission godoc
// @Summary Admit a patient to the ward
// @Tags ward-admissions
// @Accept json
// @Produce json
// @Param admission body dto.CreateWardAdmissionRequest true "Admission fields"
// @Success 201 {object} domain.WardAdmission
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /ward-admissions [post]
func (h *wardAdmissionHandler) createAdmission(c *gin.Context) {
	var req dto.CreateWardAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	admission, err := h.admissionService.CreateAdmission(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admission)
}

// updateAdmission godoc
// @Summary Update a ward admission
// @Description Moving the status to خرج stamps the discharge date once
// @Tags ward-admissions
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param admission body dto.UpdateWardAdmissionRequest true "Editable fields"
// @Success 200 {object} domain.WardAdmission
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /ward-admissions/{id} [put]
func (h *wardAdmissionHandler) updateAdmission(c *gin.Context) {
	var req dto.UpdateWardAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	admission, err := h.admissionService.UpdateAdmission(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admission)
}
