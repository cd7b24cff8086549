package domain

import "time"

// EmergencyPriority is the triage priority of an emergency case.
type EmergencyPriority string

const (
	PriorityCritical  EmergencyPriority = "حرج"
	PriorityUrgent    EmergencyPriority = "عاجل"
	PriorityModerate  EmergencyPriority = "متوسط"
	PriorityNonUrgent EmergencyPriority = "غير عاجل"
)

// Valid reports whether the priority is one of the known values.
func (p EmergencyPriority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityUrgent, PriorityModerate, PriorityNonUrgent:
		return true
	}
	return false
}

// EmergencyStatus is the closed set of emergency case states.
type EmergencyStatus string

const (
	EmergencyWaiting     EmergencyStatus = "في الانتظار"
	EmergencyAssessing   EmergencyStatus = "قيد التقييم"
	EmergencyTreating    EmergencyStatus = "قيد العلاج"
	EmergencyObservation EmergencyStatus = "قيد المراقبة"
	EmergencyDischarged  EmergencyStatus = "تم الخروج"
)

// Valid reports whether the status is one of the known values.
func (s EmergencyStatus) Valid() bool {
	switch s {
	case EmergencyWaiting, EmergencyAssessing, EmergencyTreating, EmergencyObservation, EmergencyDischarged:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next. Triage moves
// cases freely between the open states; a discharged case stays discharged.
func (s EmergencyStatus) CanTransitionTo(next EmergencyStatus) bool {
	if s == EmergencyDischarged {
		return next == EmergencyDischarged
	}
	return next.Valid()
}

// EmergencyCase is an emergency-department encounter record.
type EmergencyCase struct {
	CaseID            string            `json:"id"`
	PatientID         string            `json:"patient_id"`
	ArrivalTime       time.Time         `json:"arrival_time"`
	Complaint         string            `json:"complaint"`
	Priority          EmergencyPriority `json:"priority"`
	Status            EmergencyStatus   `json:"status"`
	VitalSigns        string            `json:"vital_signs"` // JSON blob maintained by the front end
	InitialAssessment string            `json:"initial_assessment"`
	Decision          string            `json:"decision"`
	Notes             string            `json:"notes"`
	CreatedAt         time.Time         `json:"created_at"`

	// Patient projection fields populated on reads.
	PatientName  string `json:"patient_name,omitempty"`
	PatientAge   int    `json:"patient_age,omitempty"`
	PatientPhone string `json:"patient_phone,omitempty"`
}
