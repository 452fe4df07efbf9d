package services

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
)

type performanceService struct {
	BaseService
	perfRepo portsrepo.PerformanceRepository
}

// NewPerformanceService creates a new PerformanceService.
func NewPerformanceService(perfRepo portsrepo.PerformanceRepository) portssvc.PerformanceSvcFacade {
	return &performanceService{perfRepo: perfRepo}
}

var _ portssvc.PerformanceSvcFacade = (*performanceService)(nil)

// History returns the user's recent daily snapshots, most recent first.
// The window defaults to 30 days and never exceeds 365.
func (s *performanceService) History(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	if limit > 365 {
		limit = 365
	}
	return s.perfRepo.ListSnapshotsByUser(ctx, userID, limit)
}
