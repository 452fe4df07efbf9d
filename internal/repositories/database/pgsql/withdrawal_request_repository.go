package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
)

const withdrawalRequestColumns = `request_id, user_id, amount, withdrawal_method, account_details, notes, status, created_at, processed_at, processed_by`

type PgxWithdrawalRequestRepository struct {
	db *pgxpool.Pool
}

func newPgxWithdrawalRequestRepository(db *pgxpool.Pool) portsrepo.WithdrawalRequestRepository {
	return &PgxWithdrawalRequestRepository{db: db}
}

var _ portsrepo.WithdrawalRequestRepository = (*PgxWithdrawalRequestRepository)(nil)

func scanWithdrawalRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var req domain.WithdrawalRequest
	err := row.Scan(
		&req.RequestID,
		&req.UserID,
		&req.Amount,
		&req.WithdrawalMethod,
		&req.AccountDetails,
		&req.Notes,
		&req.Status,
		&req.CreatedAt,
		&req.ProcessedAt,
		&req.ProcessedBy,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PgxWithdrawalRequestRepository) SaveWithdrawalRequest(ctx context.Context, request domain.WithdrawalRequest) error {
	query := `
        INSERT INTO withdrawal_requests (` + withdrawalRequestColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		request.RequestID,
		request.UserID,
		request.Amount,
		request.WithdrawalMethod,
		request.AccountDetails,
		request.Notes,
		request.Status,
		request.CreatedAt,
		request.ProcessedAt,
		request.ProcessedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save withdrawal request: %w", err)
	}
	return nil
}

func (r *PgxWithdrawalRequestRepository) FindWithdrawalRequestByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalRequestColumns + ` FROM withdrawal_requests WHERE request_id = $1;`
	req, err := scanWithdrawalRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find withdrawal request %s: %w", requestID, err)
	}
	return req, nil
}

func (r *PgxWithdrawalRequestRepository) ListWithdrawalRequestsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalRequestColumns + `
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawal requests: %w", err)
	}
	return collectWithdrawalRequests(rows)
}

func (r *PgxWithdrawalRequestRepository) ListWithdrawalRequestsByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalRequestColumns + `
        FROM withdrawal_requests
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawal requests: %w", err)
	}
	return collectWithdrawalRequests(rows)
}

func collectWithdrawalRequests(rows pgx.Rows) ([]domain.WithdrawalRequest, error) {
	defer rows.Close()
	reqs := []domain.WithdrawalRequest{}
	for rows.Next() {
		req, err := scanWithdrawalRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal request row: %w", err)
		}
		reqs = append(reqs, *req)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating withdrawal request rows: %w", rows.Err())
	}
	return reqs, nil
}

func (r *PgxWithdrawalRequestRepository) MarkWithdrawalRequestProcessed(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, processed_at = $2, processed_by = $3
        WHERE request_id = $4 AND status = 'pending';
    `
	cmdTag, err := r.db.Exec(ctx, query, status, now, adminID, requestID)
	if err != nil {
		return fmt.Errorf("failed to mark withdrawal request processed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal request %s is not pending: %w", requestID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxWithdrawalRequestRepository) CountWithdrawalRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM withdrawal_requests WHERE status = $1;`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count withdrawal requests: %w", err)
	}
	return count, nil
}
