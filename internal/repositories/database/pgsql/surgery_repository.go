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

type PgxSurgeryRepository struct {
	db *pgxpool.Pool
}

func NewSurgeryRepository(db *pgxpool.Pool) portsrepo.SurgeryRepository {
	return &PgxSurgeryRepository{db: db}
}

var _ portsrepo.SurgeryRepository = (*PgxSurgeryRepository)(nil)

func toModelSurgery(d domain.Surgery) models.Surgery {
	return models.Surgery{
		SurgeryID:      d.SurgeryID,
		PatientID:      d.PatientID,
		SurgeryType:    d.SurgeryType,
		SurgeryDate:    d.SurgeryDate,
		SurgeryTime:    d.SurgeryTime,
		Duration:       nullString(d.Duration),
		OperatingRoom:  nullString(d.OperatingRoom),
		AnesthesiaType: nullString(d.AnesthesiaType),
		Status:         string(d.Status),
		PreOpNotes:     nullString(d.PreOpNotes),
		PostOpNotes:    nullString(d.PostOpNotes),
		Complications:  nullString(d.Complications),
		CreatedAt:      d.CreatedAt,
	}
}

const surgerySelect = `
    SELECT s.surgery_id, s.patient_id, s.surgery_type, s.surgery_date, s.surgery_time,
           s.duration, s.operating_room, s.anesthesia_type, s.status,
           s.pre_op_notes, s.post_op_notes, s.complications, s.created_at,
           p.name, p.age
    FROM surgeries s
    JOIN patients p ON p.patient_id = s.patient_id
`

func scanSurgery(row pgx.Row) (*domain.Surgery, error) {
	var m models.Surgery
	var patientName string
	var patientAge int
	err := row.Scan(
		&m.SurgeryID,
		&m.PatientID,
		&m.SurgeryType,
		&m.SurgeryDate,
		&m.SurgeryTime,
		&m.Duration,
		&m.OperatingRoom,
		&m.AnesthesiaType,
		&m.Status,
		&m.PreOpNotes,
		&m.PostOpNotes,
		&m.Complications,
		&m.CreatedAt,
		&patientName,
		&patientAge,
	)
	if err != nil {
		return nil, err
	}
	surgery := domain.Surgery{
		SurgeryID:      m.SurgeryID,
		PatientID:      m.PatientID,
		SurgeryType:    m.SurgeryType,
		SurgeryDate:    m.SurgeryDate,
		SurgeryTime:    m.SurgeryTime,
		Duration:       stringOrEmpty(m.Duration),
		OperatingRoom:  stringOrEmpty(m.OperatingRoom),
		AnesthesiaType: stringOrEmpty(m.AnesthesiaType),
		Status:         domain.SurgeryStatus(m.Status),
		PreOpNotes:     stringOrEmpty(m.PreOpNotes),
		PostOpNotes:    stringOrEmpty(m.PostOpNotes),
		Complications:  stringOrEmpty(m.Complications),
		CreatedAt:      m.CreatedAt,
		PatientName:    patientName,
		PatientAge:     patientAge,
	}
	return &surgery, nil
}

func (r *PgxSurgeryRepository) SaveSurgery(ctx context.Context, surgery domain.Surgery) error {
	m := toModelSurgery(surgery)
	query := `
        INSERT INTO surgeries (surgery_id, patient_id, surgery_type, surgery_date, surgery_time, duration, operating_room, anesthesia_type, status, pre_op_notes, post_op_notes, complications, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.SurgeryID,
		m.PatientID,
		m.SurgeryType,
		m.SurgeryDate,
		m.SurgeryTime,
		m.Duration,
		m.OperatingRoom,
		m.AnesthesiaType,
		m.Status,
		m.PreOpNotes,
		m.PostOpNotes,
		m.Complications,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save surgery: %w", err)
	}
	return nil
}

func (r *PgxSurgeryRepository) FindSurgeryByID(ctx context.Context, surgeryID string) (*domain.Surgery, error) {
	query := surgerySelect + ` WHERE s.surgery_id = $1;`
	surgery, err := scanSurgery(r.db.QueryRow(ctx, query, surgeryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find surgery by ID %s: %w", surgeryID, err)
	}
	return surgery, nil
}

func (r *PgxSurgeryRepository) FindSurgeries(ctx context.Context) ([]domain.Surgery, error) {
	query := surgerySelect + ` ORDER BY s.surgery_date DESC, s.surgery_time DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query surgeries: %w", err)
	}
	defer rows.Close()

	surgeries := []domain.Surgery{}
	for rows.Next() {
		surgery, err := scanSurgery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan surgery row: %w", err)
		}
		surgeries = append(surgeries, *surgery)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating surgery rows: %w", rows.Err())
	}
	return surgeries, nil
}

func (r *PgxSurgeryRepository) UpdateSurgery(ctx context.Context, surgery domain.Surgery) error {
	m := toModelSurgery(surgery)
	query := `
        UPDATE surgeries
        SET surgery_type = $2, surgery_date = $3, surgery_time = $4, duration = $5,
            operating_room = $6, anesthesia_type = $7, status = $8,
            pre_op_notes = $9, post_op_notes = $10, complications = $11
        WHERE surgery_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.SurgeryID,
		m.SurgeryType,
		m.SurgeryDate,
		m.SurgeryTime,
		m.Duration,
		m.OperatingRoom,
		m.AnesthesiaType,
		m.Status,
		m.PreOpNotes,
		m.PostOpNotes,
		m.Complications,
	)
	if err != nil {
		return fmt.Errorf("failed to update surgery: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("surgery not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
