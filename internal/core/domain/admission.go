package domain

import "time"

// AdmissionStatus is the closed set of ward admission states.
type AdmissionStatus string

const (
	AdmissionInpatient  AdmissionStatus = "منوم"
	AdmissionDischarged AdmissionStatus = "خرج"
)

// Valid reports whether the status is one of the known values.
func (s AdmissionStatus) Valid() bool {
	return s == AdmissionInpatient || s == AdmissionDischarged
}

// CanTransitionTo reports whether the status may move to next. A discharge is
// final; everything else stays put or discharges.
func (s AdmissionStatus) CanTransitionTo(next AdmissionStatus) bool {
	if s == AdmissionDischarged {
		return next == AdmissionDischarged
	}
	return next.Valid()
}

// WardAdmission is an inpatient stay record.
type WardAdmission struct {
	AdmissionID   string          `json:"id"`
	PatientID     string          `json:"patient_id"`
	AdmissionDate time.Time       `json:"admission_date"`
	DischargeDate *time.Time      `json:"discharge_date,omitempty"`
	RoomNumber    string          `json:"room_number"`
	BedNumber     string          `json:"bed_number"`
	Diagnosis     string          `json:"diagnosis"`
	Condition     string          `json:"condition"`
	Medications   string          `json:"medications"` // JSON blob maintained by the front end
	DailyNotes    string          `json:"daily_notes"`
	Status        AdmissionStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`

	// Patient projection fields populated on reads.
	PatientName string `json:"patient_name,omitempty"`
	PatientAge  int    `json:"patient_age,omitempty"`
}
