package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatisticsRepository struct {
	db *pgxpool.Pool
}

func NewStatisticsRepository(db *pgxpool.Pool) portsrepo.StatisticsRepository {
	return &PgxStatisticsRepository{db: db}
}

var _ portsrepo.StatisticsRepository = (*PgxStatisticsRepository)(nil)

// DashboardCounts runs the five counters in one round trip using scalar
// subqueries. Today is truncated to the practice's calendar day.
func (r *PgxStatisticsRepository) DashboardCounts(ctx context.Context, today time.Time) (*domain.DashboardStats, error) {
	day := today.Truncate(24 * time.Hour)
	query := `
        SELECT
            (SELECT COUNT(*) FROM clinic_visits WHERE visit_date = $1),
            (SELECT COUNT(*) FROM ward_admissions WHERE status = $2),
            (SELECT COUNT(*) FROM surgeries WHERE status = $3),
            (SELECT COUNT(*) FROM emergency_cases WHERE status <> $4),
            (SELECT COUNT(*) FROM patients);
    `
	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, query,
		day,
		string(domain.AdmissionInpatient),
		string(domain.SurgeryScheduled),
		string(domain.EmergencyDischarged),
	).Scan(
		&stats.TodayAppointments,
		&stats.WardPatients,
		&stats.ScheduledSurgeries,
		&stats.EmergencyCases,
		&stats.TotalPatients,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard counts: %w", err)
	}
	return &stats, nil
}
