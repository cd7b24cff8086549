package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	"github.com/alnahhas/surgery_clinic_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPatientRepository struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) portsrepo.PatientRepository {
	return &PgxPatientRepository{db: db}
}

var _ portsrepo.PatientRepository = (*PgxPatientRepository)(nil)

func toModelPatient(d domain.Patient) models.Patient {
	return models.Patient{
		PatientID:       d.PatientID,
		Name:            d.Name,
		Age:             d.Age,
		Phone:           nullString(d.Phone),
		NationalID:      nullString(d.NationalID),
		Gender:          nullString(d.Gender),
		BloodType:       nullString(d.BloodType),
		Allergies:       nullString(d.Allergies),
		ChronicDiseases: nullString(d.ChronicDiseases),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toDomainPatient(m models.Patient) domain.Patient {
	return domain.Patient{
		PatientID:       m.PatientID,
		Name:            m.Name,
		Age:             m.Age,
		Phone:           stringOrEmpty(m.Phone),
		NationalID:      stringOrEmpty(m.NationalID),
		Gender:          stringOrEmpty(m.Gender),
		BloodType:       stringOrEmpty(m.BloodType),
		Allergies:       stringOrEmpty(m.Allergies),
		ChronicDiseases: stringOrEmpty(m.ChronicDiseases),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

const patientColumns = `patient_id, name, age, phone, national_id, gender, blood_type, allergies, chronic_diseases, created_at, updated_at`

func scanPatient(row pgx.Row) (*models.Patient, error) {
	var m models.Patient
	err := row.Scan(
		&m.PatientID,
		&m.Name,
		&m.Age,
		&m.Phone,
		&m.NationalID,
		&m.Gender,
		&m.BloodType,
		&m.Allergies,
		&m.ChronicDiseases,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPatientRepository) SavePatient(ctx context.Context, patient domain.Patient) error {
	m := toModelPatient(patient)
	query := `
        INSERT INTO patients (` + patientColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.PatientID,
		m.Name,
		m.Age,
		m.Phone,
		m.NationalID,
		m.Gender,
		m.BloodType,
		m.Allergies,
		m.ChronicDiseases,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "patients_national_id_key") {
			return fmt.Errorf("%w: national_id", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save patient: %w", err)
	}
	return nil
}

func (r *PgxPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE patient_id = $1;`
	m, err := scanPatient(r.db.QueryRow(ctx, query, patientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find patient by ID %s: %w", patientID, err)
	}
	patient := toDomainPatient(*m)
	return &patient, nil
}

func (r *PgxPatientRepository) FindPatients(ctx context.Context) ([]domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query patients: %w", err)
	}
	defer rows.Close()

	patients := []domain.Patient{}
	for rows.Next() {
		m, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		patients = append(patients, toDomainPatient(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating patient rows: %w", rows.Err())
	}
	return patients, nil
}

func (r *PgxPatientRepository) UpdatePatient(ctx context.Context, patient domain.Patient) error {
	m := toModelPatient(patient)
	query := `
        UPDATE patients
        SET name = $2, age = $3, phone = $4, national_id = $5, gender = $6,
            blood_type = $7, allergies = $8, chronic_diseases = $9, updated_at = $10
        WHERE patient_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.PatientID,
		m.Name,
		m.Age,
		m.Phone,
		m.NationalID,
		m.Gender,
		m.BloodType,
		m.Allergies,
		m.ChronicDiseases,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "patients_national_id_key") {
			return fmt.Errorf("%w: national_id", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("patient not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
