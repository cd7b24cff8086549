package models

import (
	"database/sql"
	"time"
)

// Patient is the database row backing domain.Patient.
type Patient struct {
	PatientID       string         `db:"patient_id"`
	Name            string         `db:"name"`
	Age             int            `db:"age"`
	Phone           sql.NullString `db:"phone"`
	NationalID      sql.NullString `db:"national_id"`
	Gender          sql.NullString `db:"gender"`
	BloodType       sql.NullString `db:"blood_type"`
	Allergies       sql.NullString `db:"allergies"`
	ChronicDiseases sql.NullString `db:"chronic_diseases"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}
