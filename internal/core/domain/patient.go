package domain

import "time"

// Patient is the central clinical record every visit, admission, surgery,
// emergency case and medical file hangs off.
type Patient struct {
	PatientID       string    `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Phone           string    `json:"phone"`
	NationalID      string    `json:"national_id"`
	Gender          string    `json:"gender"`
	BloodType       string    `json:"blood_type"`
	Allergies       string    `json:"allergies"`
	ChronicDiseases string    `json:"chronic_diseases"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
