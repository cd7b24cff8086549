package handlers

import (
	"net/http"

	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// patientHandler handles the patient master records.
type patientHandler struct {
	patientService portssvc.PatientSvcFacade
}

func newPatientHandler(ps portssvc.PatientSvcFacade) *patientHandler {
	return &patientHandler{patientService: ps}
}

func registerPatientRoutes(rg *gin.RouterGroup, patientService portssvc.PatientSvcFacade) {
	h := newPatientHandler(patientService)

	patients := rg.Group("/patients")
	{
		patients.GET("", h.listPatients)
		patients.GET("/:id", h.getPatient)
		patients.POST("", h.createPatient)
		patients.PUT("/:id", h.updatePatient)
	}
}

// listPatients godoc
// @Summary List patients
// @Tags patients
// @Produce json
// @Success 200 {array} domain.Patient
// @Security BearerAuth
// @Router /patients [get]
func (h *patientHandler) listPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// getPatient godoc
// @Summary Get a patient
// @Tags patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} domain.Patient
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /patients/{id} [get]
func (h *patientHandler) getPatient(c *gin.Context) {
	patient, err := h.patientService.GetPatientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// createPatient godoc
// @Summary Create a patient
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body dto.CreatePatientRequest true "Patient fields"
// @Success 201 {object} domain.Patient
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /patients [post]
func (h *patientHandler) createPatient(c *gin.Context) {
	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// updatePatient godoc
// @Summary Update a patient
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param patient body dto.UpdatePatientRequest true "Editable fields"
// @Success 200 {object} domain.Patient
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /patients/{id} [put]
func (h *patientHandler) updatePatient(c *gin.Context) {
	var req dto.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patient, err := h.patientService.UpdatePatient(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}
