package repositories

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// ProfitHistoryRepository reads per-accrual history records. Writes happen
// inside LedgerWriter transactions.
type ProfitHistoryRepository interface {
	ListProfitEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error)
}

// PerformanceRepository reads daily portfolio snapshots. Writes happen inside
// LedgerWriter transactions.
type PerformanceRepository interface {
	// ListSnapshotsByUser returns up to limit snapshots, most recent first.
	ListSnapshotsByUser(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error)
}
