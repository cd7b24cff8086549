package dto

// CreatePatientRequest carries the fields for a new patient record.
type CreatePatientRequest struct {
	Name            string `json:"name" binding:"required"`
	Age             int    `json:"age" binding:"required,gt=0"`
	Phone           string `json:"phone"`
	NationalID      string `json:"national_id"`
	Gender          string `json:"gender"`
	BloodType       string `json:"blood_type"`
	Allergies       string `json:"allergies"`
	ChronicDiseases string `json:"chronic_diseases"`
}

// UpdatePatientRequest carries a partial patient edit. Pointers distinguish
// omitted fields from zero values.
type UpdatePatientRequest struct {
	Name            *string `json:"name"`
	Age             *int    `json:"age" binding:"omitempty,gt=0"`
	Phone           *string `json:"phone"`
	NationalID      *string `json:"national_id"`
	Gender          *string `json:"gender"`
	BloodType       *string `json:"blood_type"`
	Allergies       *string `json:"allergies"`
	ChronicDiseases *string `json:"chronic_diseases"`
}
