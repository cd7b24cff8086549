package dto

// CreateClinicVisitRequest carries the fields for a new clinic visit.
// Dates are YYYY-MM-DD and times are HH:MM, as the front end sends them.
type CreateClinicVisitRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	VisitDate string `json:"visit_date" binding:"required,datetime=2006-01-02"`
	VisitTime string `json:"visit_time" binding:"required,datetime=15:04"`
	VisitType string `json:"visit_type"`
	Status    string `json:"status"`
	Complaint string `json:"complaint"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

// UpdateClinicVisitRequest carries a partial clinic visit edit.
type UpdateClinicVisitRequest struct {
	VisitDate *string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
	VisitTime *string `json:"visit_time" binding:"omitempty,datetime=15:04"`
	VisitType *string `json:"visit_type"`
	Status    *string `json:"status"`
	Complaint *string `json:"complaint"`
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
}

// CreateWardAdmissionRequest carries the fields for a new ward admission.
// The admission date is stamped server-side and the status starts as منوم.
type CreateWardAdmissionRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	RoomNumber  string `json:"room_number"`
	BedNumber   string `json:"bed_number"`
	Diagnosis   string `json:"diagnosis"`
	Condition   string `json:"condition"`
	Medications string `json:"medications"`
	DailyNotes  string `json:"daily_notes"`
}

// UpdateWardAdmissionRequest carries a partial ward admission edit.
type UpdateWardAdmissionRequest struct {
	RoomNumber  *string `json:"room_number"`
	BedNumber   *string `json:"bed_number"`
	Diagnosis   *string `json:"diagnosis"`
	Condition   *string `json:"condition"`
	Medications *string `json:"medications"`
	DailyNotes  *string `json:"daily_notes"`
	Status      *string `json:"status"`
}

// CreateSurgeryRequest carries the fields for a new surgery.
type CreateSurgeryRequest struct {
	PatientID      string `json:"patient_id" binding:"required"`
	SurgeryType    string `json:"surgery_type" binding:"required"`
	SurgeryDate    string `json:"surgery_date" binding:"required,datetime=2006-01-02"`
	SurgeryTime    string `json:"surgery_time" binding:"required,datetime=15:04"`
	Duration       string `json:"duration"`
	OperatingRoom  string `json:"operating_room"`
	AnesthesiaType string `json:"anesthesia_type"`
	Status         string `json:"status"`
	PreOpNotes     string `json:"pre_op_notes"`
	PostOpNotes    string `json:"post_op_notes"`
	Complications  string `json:"complications"`
}

// UpdateSurgeryRequest carries a partial surgery edit.
type UpdateSurgeryRequest struct {
	SurgeryType    *string `json:"surgery_type"`
	SurgeryDate    *string `json:"surgery_date" binding:"omitempty,datetime=2006-01-02"`
	SurgeryTime    *string `json:"surgery_time" binding:"omitempty,datetime=15:04"`
	Duration       *string `json:"duration"`
	OperatingRoom  *string `json:"operating_room"`
	AnesthesiaType *string `json:"anesthesia_type"`
	Status         *string `json:"status"`
	PreOpNotes     *string `json:"pre_op_notes"`
	PostOpNotes    *string `json:"post_op_notes"`
	Complications  *string `json:"complications"`
}

// CreateEmergencyCaseRequest carries the fields for a new emergency case.
// Arrival time is stamped server-side.
type CreateEmergencyCaseRequest struct {
	PatientID         string `json:"patient_id" binding:"required"`
	Complaint         string `json:"complaint" binding:"required"`
	Priority          string `json:"priority" binding:"required"`
	Status            string `json:"status"`
	VitalSigns        string `json:"vital_signs"`
	InitialAssessment string `json:"initial_assessment"`
	Decision          string `json:"decision"`
	Notes             string `json:"notes"`
}

// UpdateEmergencyCaseRequest carries a partial emergency case edit.
type UpdateEmergencyCaseRequest struct {
	Complaint         *string `json:"complaint"`
	Priority          *string `json:"priority"`
	Status            *string `json:"status"`
	VitalSigns        *string `json:"vital_signs"`
	InitialAssessment *string `json:"initial_assessment"`
	Decision          *string `json:"decision"`
	Notes             *string `json:"notes"`
}

// StatisticsResponse is the dashboard summary.
type StatisticsResponse struct {
	TodayAppointments  int `json:"today_appointments"`
	WardPatients       int `json:"ward_patients"`
	ScheduledSurgeries int `json:"scheduled_surgeries"`
	EmergencyCases     int `json:"emergency_cases"`
	TotalPatients      int `json:"total_patients"`
}
