package models

import (
	"database/sql"
	"time"
)

// ClinicVisit is the database row backing domain.ClinicVisit.
type ClinicVisit struct {
	VisitID   string         `db:"visit_id"`
	PatientID string         `db:"patient_id"`
	VisitDate time.Time      `db:"visit_date"`
	VisitTime string         `db:"visit_time"`
	VisitType sql.NullString `db:"visit_type"`
	Status    string         `db:"status"`
	Complaint sql.NullString `db:"complaint"`
	Diagnosis sql.NullString `db:"diagnosis"`
	Treatment sql.NullString `db:"treatment"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
}

// WardAdmission is the database row backing domain.WardAdmission.
type WardAdmission struct {
	AdmissionID   string         `db:"admission_id"`
	PatientID     string         `db:"patient_id"`
	AdmissionDate time.Time      `db:"admission_date"`
	DischargeDate sql.NullTime   `db:"discharge_date"`
	RoomNumber    sql.NullString `db:"room_number"`
	BedNumber     sql.NullString `db:"bed_number"`
	Diagnosis     sql.NullString `db:"diagnosis"`
	Condition     sql.NullString `db:"condition"`
	Medications   sql.NullString `db:"medications"`
	DailyNotes    sql.NullString `db:"daily_notes"`
	Status        string         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Surgery is the database row backing domain.Surgery.
type Surgery struct {
	SurgeryID      string         `db:"surgery_id"`
	PatientID      string         `db:"patient_id"`
	SurgeryType    string         `db:"surgery_type"`
	SurgeryDate    time.Time      `db:"surgery_date"`
	SurgeryTime    string         `db:"surgery_time"`
	Duration       sql.NullString `db:"duration"`
	OperatingRoom  sql.NullString `db:"operating_room"`
	AnesthesiaType sql.NullString `db:"anesthesia_type"`
	Status         string         `db:"status"`
	PreOpNotes     sql.NullString `db:"pre_op_notes"`
	PostOpNotes    sql.NullString `db:"post_op_notes"`
	Complications  sql.NullString `db:"complications"`
	CreatedAt      time.Time      `db:"created_at"`
}

// EmergencyCase is the database row backing domain.EmergencyCase.
type EmergencyCase struct {
	CaseID            string         `db:"case_id"`
	PatientID         string         `db:"patient_id"`
	ArrivalTime       time.Time      `db:"arrival_time"`
	Complaint         string         `db:"complaint"`
	Priority          string         `db:"priority"`
	Status            string         `db:"status"`
	VitalSigns        sql.NullString `db:"vital_signs"`
	InitialAssessment sql.NullString `db:"initial_assessment"`
	Decision          sql.NullString `db:"decision"`
	Notes             sql.NullString `db:"notes"`
	CreatedAt         time.Time      `db:"created_at"`
}
