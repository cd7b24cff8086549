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

type PgxWardAdmissionRepository struct {
	db *pgxpool.Pool
}

func NewWardAdmissionRepository(db *pgxpool.Pool) portsrepo.WardAdmissionRepository {
	return &PgxWardAdmissionRepository{db: db}
}

var _ portsrepo.WardAdmissionRepository = (*PgxWardAdmissionRepository)(nil)

func toModelAdmission(d domain.WardAdmission) models.WardAdmission {
	return models.WardAdmission{
		AdmissionID:   d.AdmissionID,
		PatientID:     d.PatientID,
		AdmissionDate: d.AdmissionDate,
		DischargeDate: nullTime(d.DischargeDate),
		RoomNumber:    nullString(d.RoomNumber),
		BedNumber:     nullString(d.BedNumber),
		Diagnosis:     nullString(d.Diagnosis),
		Condition:     nullString(d.Condition),
		Medications:   nullString(d.Medications),
		DailyNotes:    nullString(d.DailyNotes),
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

const admissionSelect = `
    SELECT a.admission_id, a.patient_id, a.admission_date, a.discharge_date,
           a.room_number, a.bed_number, a.diagnosis, a.condition, a.medications,
           a.daily_notes, a.status, a.created_at,
           p.name, p.age
    FROM ward_admissions a
    JOIN patients p ON p.patient_id = a.patient_id
`

func scanAdmission(row pgx.Row) (*domain.WardAdmission, error) {
	var m models.WardAdmission
	var patientName string
	var patientAge int
	err := row.Scan(
		&m.AdmissionID,
		&m.PatientID,
		&m.AdmissionDate,
		&m.DischargeDate,
		&m.RoomNumber,
		&m.BedNumber,
		&m.Diagnosis,
		&m.Condition,
		&m.Medications,
		&m.DailyNotes,
		&m.Status,
		&m.CreatedAt,
		&patientName,
		&patientAge,
	)
	if err != nil {
		return nil, err
	}
	admission := domain.WardAdmission{
		AdmissionID:   m.AdmissionID,
		PatientID:     m.PatientID,
		AdmissionDate: m.AdmissionDate,
		DischargeDate: timePtr(m.DischargeDate),
		RoomNumber:    stringOrEmpty(m.RoomNumber),
		BedNumber:     stringOrEmpty(m.BedNumber),
		Diagnosis:     stringOrEmpty(m.Diagnosis),
		Condition:     stringOrEmpty(m.Condition),
		Medications:   stringOrEmpty(m.Medications),
		DailyNotes:    stringOrEmpty(m.DailyNotes),
		Status:        domain.AdmissionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		PatientName:   patientName,
		PatientAge:    patientAge,
	}
	return &admission, nil
}

func (r *PgxWardAdmissionRepository) SaveAdmission(ctx context.Context, admission domain.WardAdmission) error {
	m := toModelAdmission(admission)
	query := `
        INSERT INTO ward_admissions (admission_id, patient_id, admission_date, discharge_date, room_number, bed_number, diagnosis, condition, medications, daily_notes, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		m.AdmissionID,
		m.PatientID,
		m.AdmissionDate,
		m.DischargeDate,
		m.RoomNumber,
		m.BedNumber,
		m.Diagnosis,
		m.Condition,
		m.Medications,
		m.DailyNotes,
		m.Status,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save ward admission: %w", err)
	}
	return nil
}

func (r *PgxWardAdmissionRepository) FindAdmissionByID(ctx context.Context, admissionID string) (*domain.WardAdmission, error) {
	query := admissionSelect + ` WHERE a.admission_id = $1;`
	admission, err := scanAdmission(r.db.QueryRow(ctx, query, admissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ward admission by ID %s: %w", admissionID, err)
	}
	return admission, nil
}

func (r *PgxWardAdmissionRepository) FindAdmissionsByStatus(ctx context.Context, status domain.AdmissionStatus) ([]domain.WardAdmission, error) {
	query := admissionSelect + ` WHERE a.status = $1 ORDER BY a.admission_date DESC;`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query ward admissions: %w", err)
	}
	defer rows.Close()

	admissions := []domain.WardAdmission{}
	for rows.Next() {
		admission, err := scanAdmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ward admission row: %w", err)
		}
		admissions = append(admissions, *admission)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ward admission rows: %w", rows.Err())
	}
	return admissions, nil
}

func (r *PgxWardAdmissionRepository) UpdateAdmission(ctx context.Context, admission domain.WardAdmission) error {
	m := toModelAdmission(admission)
	query := `
        UPDATE ward_admissions
        SET admission_date = $2, discharge_date = $3, room_number = $4, bed_number = $5,
            diagnosis = $6, condition = $7, medications = $8, daily_notes = $9, status = $10
        WHERE admission_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.AdmissionID,
		m.AdmissionDate,
		m.DischargeDate,
		m.RoomNumber,
		m.BedNumber,
		m.Diagnosis,
		m.Condition,
		m.Medications,
		m.DailyNotes,
		m.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update ward admission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ward admission not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
