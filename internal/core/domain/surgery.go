package domain

import "time"

// SurgeryStatus is the closed set of surgery states.
type SurgeryStatus string

const (
	SurgeryScheduled SurgeryStatus = "مجدولة"
	SurgeryPreparing SurgeryStatus = "قيد التحضير"
	SurgeryOngoing   SurgeryStatus = "جارية"
	SurgeryCompleted SurgeryStatus = "مكتملة"
	SurgeryCancelled SurgeryStatus = "ملغاة"
)

// Valid reports whether the status is one of the known values.
func (s SurgeryStatus) Valid() bool {
	switch s {
	case SurgeryScheduled, SurgeryPreparing, SurgeryOngoing, SurgeryCompleted, SurgeryCancelled:
		return true
	}
	return false
}

// surgeryTransitions encodes the progression
// مجدولة → قيد التحضير → جارية → مكتملة/ملغاة. Cancellation is allowed from
// every non-terminal state; an ongoing operation cannot go backwards.
var surgeryTransitions = map[SurgeryStatus][]SurgeryStatus{
	SurgeryScheduled: {SurgeryScheduled, SurgeryPreparing, SurgeryOngoing, SurgeryCancelled},
	SurgeryPreparing: {SurgeryScheduled, SurgeryPreparing, SurgeryOngoing, SurgeryCancelled},
	SurgeryOngoing:   {SurgeryOngoing, SurgeryCompleted, SurgeryCancelled},
	SurgeryCompleted: {SurgeryCompleted},
	SurgeryCancelled: {SurgeryCancelled},
}

// CanTransitionTo reports whether the status may move to next.
func (s SurgeryStatus) CanTransitionTo(next SurgeryStatus) bool {
	for _, allowed := range surgeryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Surgery is a scheduled or performed operation record.
type Surgery struct {
	SurgeryID      string        `json:"id"`
	PatientID      string        `json:"patient_id"`
	SurgeryType    string        `json:"surgery_type"`
	SurgeryDate    time.Time     `json:"surgery_date"`
	SurgeryTime    string        `json:"surgery_time"` // HH:MM
	Duration       string        `json:"duration"`
	OperatingRoom  string        `json:"operating_room"`
	AnesthesiaType string        `json:"anesthesia_type"`
	Status         SurgeryStatus `json:"status"`
	PreOpNotes     string        `json:"pre_op_notes"`
	PostOpNotes    string        `json:"post_op_notes"`
	Complications  string        `json:"complications"`
	CreatedAt      time.Time     `json:"created_at"`

	// Patient projection fields populated on reads.
	PatientName string `json:"patient_name,omitempty"`
	PatientAge  int    `json:"patient_age,omitempty"`
}
