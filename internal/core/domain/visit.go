package domain

import "time"

// VisitStatus is the closed set of clinic visit states. The practice runs in
// Arabic, so the wire values are the Arabic labels the staff actually use.
type VisitStatus string

const (
	VisitWaiting   VisitStatus = "قيد الانتظار"
	VisitConfirmed VisitStatus = "مؤكد"
	VisitCancelled VisitStatus = "ملغي"
	VisitCompleted VisitStatus = "مكتمل"
)

// Valid reports whether the status is one of the known values.
func (s VisitStatus) Valid() bool {
	switch s {
	case VisitWaiting, VisitConfirmed, VisitCancelled, VisitCompleted:
		return true
	}
	return false
}

// visitTransitions is deliberately permissive: the front desk corrects
// mistakes by moving visits backwards, so only resurrecting a cancelled or
// completed visit is blocked.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitWaiting:   {VisitWaiting, VisitConfirmed, VisitCancelled, VisitCompleted},
	VisitConfirmed: {VisitWaiting, VisitConfirmed, VisitCancelled, VisitCompleted},
	VisitCancelled: {VisitCancelled},
	VisitCompleted: {VisitCompleted},
}

// CanTransitionTo reports whether the status may move to next.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	for _, allowed := range visitTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ClinicVisit is an outpatient appointment record.
type ClinicVisit struct {
	VisitID   string      `json:"id"`
	PatientID string      `json:"patient_id"`
	VisitDate time.Time   `json:"visit_date"`
	VisitTime string      `json:"visit_time"` // HH:MM, wall clock of the practice
	VisitType string      `json:"visit_type"`
	Status    VisitStatus `json:"status"`
	Complaint string      `json:"complaint"`
	Diagnosis string      `json:"diagnosis"`
	Treatment string      `json:"treatment"`
	Notes     string      `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`

	// Patient projection fields populated on reads.
	PatientName  string `json:"patient_name,omitempty"`
	PatientAge   int    `json:"patient_age,omitempty"`
	PatientPhone string `json:"patient_phone,omitempty"`
}
