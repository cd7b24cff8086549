package handlers

import (
	"net/http"

	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// surgeryHandler handles surgery records.
type surgeryHandler struct {
	surgeryService portssvc.SurgerySvcFacade
}

func newSurgeryHandler(ss portssvc.SurgerySvcFacade) *surgeryHandler {
	return &surgeryHandler{surgeryService: ss}
}

func registerSurgeryRoutes(rg *gin.RouterGroup, surgeryService portssvc.SurgerySvcFacade) {
	h := newSurgeryHandler(surgeryService)

	surgeries := rg.Group("/surgeries")
	{
		surgeries.GET("", h.listSurgeries)
		surgeries.GET("/:id", h.getSurgery)
		surgeries.POST("", h.createSurgery)
		surgeries.PUT("/:id", h.updateSurgery)
	}
}

// listSurgeries godoc
// @Summary List surgeries
// @Tags surgeries
// @Produce json
// @Success 200 {array} domain.Surgery
// @Security BearerAuth
// @Router /surgeries [get]
func (h *surgeryHandler) listSurgeries(c *gin.Context) {
	surgeries, err := h.surgeryService.ListSurgeries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surgeries)
}

// getSurgery godoc
// @Summary Get a surgery
// @Tags surgeries
// @Produce json
// @Param id path string true "Surgery ID"
// @Success 200 {object} domain.Surgery
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /surgeries/{id} [get]
func (h *surgeryHandler) getSurgery(c *gin.Context) {
	surgery, err := h.surgeryService.GetSurgeryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surgery)
}

// createSurgery godoc
// @Summary Schedule a surgery
// @Tags surgeries
// @Accept json
// @Produce json
// @Param surgery body dto.CreateSurgeryRequest true "Surgery fields"
// @Success 201 {object} domain.Surgery
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /surgeries [post]
func (h *surgeryHandler) createSurgery(c *gin.Context) {
	var req dto.CreateSurgeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	surgery, err := h.surgeryService.CreateSurgery(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, surgery)
}

// updateSurgery godoc
// @Summary Update a surgery
// @Description Status moves follow the progression مجدولة، قيد التحضير، جارية، مكتملة/ملغاة
// @Tags surgeries
// @Accept json
// @Produce json
// @Param id path string true "Surgery ID"
// @Param surgery body dto.UpdateSurgeryRequest true "Editable fields"
// @Success 200 {object} domain.Surgery
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /surgeries/{id} [put]
func (h *surgeryHandler) updateSurgery(c *gin.Context) {
	var req dto.UpdateSurgeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	surgery, err := h.surgeryService.UpdateSurgery(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surgery)
}
