package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
)

type statisticsService struct {
	statsRepo portsrepo.StatisticsRepository
}

// NewStatisticsService creates the dashboard summary service.
func NewStatisticsService(statsRepo portsrepo.StatisticsRepository) portssvc.StatisticsSvcFacade {
	return &statisticsService{statsRepo: statsRepo}
}

var _ portssvc.StatisticsSvcFacade = (*statisticsService)(nil)

func (s *statisticsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.statsRepo.DashboardCounts(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard statistics: %w", err)
	}
	return stats, nil
}
