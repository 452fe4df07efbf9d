package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
)

type PgxPerformanceRepository struct {
	db *pgxpool.Pool
}

func newPgxPerformanceRepository(db *pgxpool.Pool) portsrepo.PerformanceRepository {
	return &PgxPerformanceRepository{db: db}
}

var _ portsrepo.PerformanceRepository = (*PgxPerformanceRepository)(nil)

func (r *PgxPerformanceRepository) ListSnapshotsByUser(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	query := `
        SELECT snapshot_id, user_id, date, portfolio_value, daily_change, daily_change_percent, total_roi, total_roi_percent
        FROM portfolio_performance
        WHERE user_id = $1
        ORDER BY date DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio snapshots: %w", err)
	}
	defer rows.Close()

	snaps := []domain.PortfolioSnapshot{}
	for rows.Next() {
		var s domain.PortfolioSnapshot
		err := rows.Scan(
			&s.SnapshotID,
			&s.UserID,
			&s.Date,
			&s.PortfolioValue,
			&s.DailyChange,
			&s.DailyChangePercent,
			&s.TotalROI,
			&s.TotalROIPercent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snaps = append(snaps, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", rows.Err())
	}
	return snaps, nil
}
