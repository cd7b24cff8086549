package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	"github.com/alnahhas/surgery_clinic_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClinicVisitRepository struct {
	db *pgxpool.Pool
}

func NewClinicVisitRepository(db *pgxpool.Pool) portsrepo.ClinicVisitRepository {
	return &PgxClinicVisitRepository{db: db}
}

var _ portsrepo.ClinicVisitRepository = (*PgxClinicVisitRepository)(nil)

func toModelVisit(d domain.ClinicVisit) models.ClinicVisit {
	return models.ClinicVisit{
		VisitID:   d.VisitID,
		PatientID: d.PatientID,
		VisitDate: d.VisitDate,
		VisitTime: d.VisitTime,
		VisitType: nullString(d.VisitType),
		Status:    string(d.Status),
		Complaint: nullString(d.Complaint),
		Diagnosis: nullString(d.Diagnosis),
		Treatment: nullString(d.Treatment),
		Notes:     nullString(d.Notes),
		CreatedAt: d.CreatedAt,
	}
}

// visitSelect joins the patient row so every read carries the projection the
// front end renders in list views.
const visitSelect = `
    SELECT v.visit_id, v.patient_id, v.visit_date, v.visit_time, v.visit_type,
           v.status, v.complaint, v.diagnosis, v.treatment, v.notes, v.created_at,
           p.name, p.age, p.phone
    FROM clinic_visits v
    JOIN patients p ON p.patient_id = v.patient_id
`

func scanVisit(row pgx.Row) (*domain.ClinicVisit, error) {
	var m models.ClinicVisit
	var patientName string
	var patientAge int
	var patientPhone sql.NullString
	err := row.Scan(
		&m.VisitID,
		&m.PatientID,
		&m.VisitDate,
		&m.VisitTime,
		&m.VisitType,
		&m.Status,
		&m.Complaint,
		&m.Diagnosis,
		&m.Treatment,
		&m.Notes,
		&m.CreatedAt,
		&patientName,
		&patientAge,
		&patientPhone,
	)
	if err != nil {
		return nil, err
	}
	visit := domain.ClinicVisit{
		VisitID:      m.VisitID,
		PatientID:    m.PatientID,
		VisitDate:    m.VisitDate,
		VisitTime:    m.VisitTime,
		VisitType:    stringOrEmpty(m.VisitType),
		Status:       domain.VisitStatus(m.Status),
		Complaint:    stringOrEmpty(m.Complaint),
		Diagnosis:    stringOrEmpty(m.Diagnosis),
		Treatment:    stringOrEmpty(m.Treatment),
		Notes:        stringOrEmpty(m.Notes),
		CreatedAt:    m.CreatedAt,
		PatientName:  patientName,
		PatientAge:   patientAge,
		PatientPhone: patientPhone.String,
	}
	return &visit, nil
}

func (r *PgxClinicVisitRepository) SaveVisit(ctx context.Context, visit domain.ClinicVisit) error {
	m := toModelVisit(visit)
	query := `
        INSERT INTO clinic_visits (visit_id, patient_id, visit_date, visit_time, visit_type, status, complaint, diagnosis, treatment, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.VisitID,
		m.PatientID,
		m.VisitDate,
		m.VisitTime,
		m.VisitType,
		m.Status,
		m.Complaint,
		m.Diagnosis,
		m.Treatment,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save clinic visit: %w", err)
	}
	return nil
}

func (r *PgxClinicVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.ClinicVisit, error) {
	query := visitSelect + ` WHERE v.visit_id = $1;`
	visit, err := scanVisit(r.db.QueryRow(ctx, query, visitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find clinic visit by ID %s: %w", visitID, err)
	}
	return visit, nil
}

func (r *PgxClinicVisitRepository) FindVisits(ctx context.Context) ([]domain.ClinicVisit, error) {
	query := visitSelect + ` ORDER BY v.visit_date DESC, v.visit_time DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clinic visits: %w", err)
	}
	defer rows.Close()

	visits := []domain.ClinicVisit{}
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clinic visit row: %w", err)
		}
		visits = append(visits, *visit)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating clinic visit rows: %w", rows.Err())
	}
	return visits, nil
}

func (r *PgxClinicVisitRepository) UpdateVisit(ctx context.Context, visit domain.ClinicVisit) error {
	m := toModelVisit(visit)
	query := `
        UPDATE clinic_visits
        SET visit_date = $2, visit_time = $3, visit_type = $4, status = $5,
            complaint = $6, diagnosis = $7, treatment = $8, notes = $9
        WHERE visit_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.VisitID,
		m.VisitDate,
		m.VisitTime,
		m.VisitType,
		m.Status,
		m.Complaint,
		m.Diagnosis,
		m.Treatment,
		m.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update clinic visit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("clinic visit not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
