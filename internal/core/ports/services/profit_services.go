package services

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// ProfitSvcFacade runs the scheduled profit-increment job and reads the
// accrual history it writes.
type ProfitSvcFacade interface {
	// RunProfitDistribution executes one end-to-end pass over eligible
	// accounts and returns the run summary. Per-account failures are counted
	// in the summary; only whole-run failures return an error.
	RunProfitDistribution(ctx context.Context) (*domain.ProfitRunResult, error)

	// ListHistoryForUser returns a user's accrual history, newest first.
	ListHistoryForUser(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error)
}
