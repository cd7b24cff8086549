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

type PgxEmergencyCaseRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyCaseRepository(db *pgxpool.Pool) portsrepo.EmergencyCaseRepository {
	return &PgxEmergencyCaseRepository{db: db}
}

var _ portsrepo.EmergencyCaseRepository = (*PgxEmergencyCaseRepository)(nil)

func toModelCase(d domain.EmergencyCase) models.EmergencyCase {
	return models.EmergencyCase{
		CaseID:            d.CaseID,
		PatientID:         d.PatientID,
		ArrivalTime:       d.ArrivalTime,
		Complaint:         d.Complaint,
		Priority:          string(d.Priority),
		Status:            string(d.Status),
		VitalSigns:        nullString(d.VitalSigns),
		InitialAssessment: nullString(d.InitialAssessment),
		Decision:          nullString(d.Decision),
		Notes:             nullString(d.Notes),
		CreatedAt:         d.CreatedAt,
	}
}

const emergencySelect = `
    SELECT e.case_id, e.patient_id, e.arrival_time, e.complaint, e.priority, e.status,
           e.vital_signs, e.initial_assessment, e.decision, e.notes, e.created_at,
           p.name, p.age, p.phone
    FROM emergency_cases e
    JOIN patients p ON p.patient_id = e.patient_id
`

func scanCase(row pgx.Row) (*domain.EmergencyCase, error) {
	var m models.EmergencyCase
	var patientName string
	var patientAge int
	var patientPhone sql.NullString
	err := row.Scan(
		&m.CaseID,
		&m.PatientID,
		&m.ArrivalTime,
		&m.Complaint,
		&m.Priority,
		&m.Status,
		&m.VitalSigns,
		&m.InitialAssessment,
		&m.Decision,
		&m.Notes,
		&m.CreatedAt,
		&patientName,
		&patientAge,
		&patientPhone,
	)
	if err != nil {
		return nil, err
	}
	emergency := domain.EmergencyCase{
		CaseID:            m.CaseID,
		PatientID:         m.PatientID,
		ArrivalTime:       m.ArrivalTime,
		Complaint:         m.Complaint,
		Priority:          domain.EmergencyPriority(m.Priority),
		Status:            domain.EmergencyStatus(m.Status),
		VitalSigns:        stringOrEmpty(m.VitalSigns),
		InitialAssessment: stringOrEmpty(m.InitialAssessment),
		Decision:          stringOrEmpty(m.Decision),
		Notes:             stringOrEmpty(m.Notes),
		CreatedAt:         m.CreatedAt,
		PatientName:       patientName,
		PatientAge:        patientAge,
		PatientPhone:      patientPhone.String,
	}
	return &emergency, nil
}

func (r *PgxEmergencyCaseRepository) SaveCase(ctx context.Context, emergency domain.EmergencyCase) error {
	m := toModelCase(emergency)
	query := `
        INSERT INTO emergency_cases (case_id, patient_id, arrival_time, complaint, priority, status, vital_signs, initial_assessment, decision, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.CaseID,
		m.PatientID,
		m.ArrivalTime,
		m.Complaint,
		m.Priority,
		m.Status,
		m.VitalSigns,
		m.InitialAssessment,
		m.Decision,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save emergency case: %w", err)
	}
	return nil
}

func (r *PgxEmergencyCaseRepository) FindCaseByID(ctx context.Context, caseID string) (*domain.EmergencyCase, error) {
	query := emergencySelect + ` WHERE e.case_id = $1;`
	emergency, err := scanCase(r.db.QueryRow(ctx, query, caseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find emergency case by ID %s: %w", caseID, err)
	}
	return emergency, nil
}

func (r *PgxEmergencyCaseRepository) FindOpenCases(ctx context.Context) ([]domain.EmergencyCase, error) {
	query := emergencySelect + ` WHERE e.status <> $1 ORDER BY e.arrival_time DESC;`
	rows, err := r.db.Query(ctx, query, string(domain.EmergencyDischarged))
	if err != nil {
		return nil, fmt.Errorf("failed to query emergency cases: %w", err)
	}
	defer rows.Close()

	cases := []domain.EmergencyCase{}
	for rows.Next() {
		emergency, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency case row: %w", err)
		}
		cases = append(cases, *emergency)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating emergency case rows: %w", rows.Err())
	}
	return cases, nil
}

func (r *PgxEmergencyCaseRepository) UpdateCase(ctx context.Context, emergency domain.EmergencyCase) error {
	m := toModelCase(emergency)
	query := `
        UPDATE emergency_cases
        SET arrival_time = $2, complaint = $3, priority = $4, status = $5,
            vital_signs = $6, initial_assessment = $7, decision = $8, notes = $9
        WHERE case_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.CaseID,
		m.ArrivalTime,
		m.Complaint,
		m.Priority,
		m.Status,
		m.VitalSigns,
		m.InitialAssessment,
		m.Decision,
		m.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update emergency case: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency case not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
