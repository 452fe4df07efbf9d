package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
)

type PgxProfitHistoryRepository struct {
	db *pgxpool.Pool
}

func newPgxProfitHistoryRepository(db *pgxpool.Pool) portsrepo.ProfitHistoryRepository {
	return &PgxProfitHistoryRepository{db: db}
}

var _ portsrepo.ProfitHistoryRepository = (*PgxProfitHistoryRepository)(nil)

func (r *PgxProfitHistoryRepository) ListProfitEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT entry_id, user_id, amount, plan_name, increment_type, created_at
        FROM profit_history
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query profit history: %w", err)
	}
	defer rows.Close()

	entries := []domain.ProfitEntry{}
	for rows.Next() {
		var e domain.ProfitEntry
		err := rows.Scan(&e.EntryID, &e.UserID, &e.Amount, &e.PlanName, &e.IncrementType, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profit history row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating profit history rows: %w", rows.Err())
	}
	return entries, nil
}
