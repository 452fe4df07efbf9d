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

const depositRequestColumns = `request_id, user_id, amount, payment_method, reference_number, notes, status, created_at, processed_at, processed_by`

type PgxDepositRequestRepository struct {
	db *pgxpool.Pool
}

func newPgxDepositRequestRepository(db *pgxpool.Pool) portsrepo.DepositRequestRepository {
	return &PgxDepositRequestRepository{db: db}
}

var _ portsrepo.DepositRequestRepository = (*PgxDepositRequestRepository)(nil)

func scanDepositRequest(row pgx.Row) (*domain.DepositRequest, error) {
	var req domain.DepositRequest
	err := row.Scan(
		&req.RequestID,
		&req.UserID,
		&req.Amount,
		&req.PaymentMethod,
		&req.ReferenceNumber,
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

func (r *PgxDepositRequestRepository) SaveDepositRequest(ctx context.Context, request domain.DepositRequest) error {
	query := `
        INSERT INTO deposit_requests (` + depositRequestColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		request.RequestID,
		request.UserID,
		request.Amount,
		request.PaymentMethod,
		request.ReferenceNumber,
		request.Notes,
		request.Status,
		request.CreatedAt,
		request.ProcessedAt,
		request.ProcessedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save deposit request: %w", err)
	}
	return nil
}

func (r *PgxDepositRequestRepository) FindDepositRequestByID(ctx context.Context, requestID string) (*domain.DepositRequest, error) {
	query := `SELECT ` + depositRequestColumns + ` FROM deposit_requests WHERE request_id = $1;`
	req, err := scanDepositRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deposit request %s: %w", requestID, err)
	}
	return req, nil
}

func (r *PgxDepositRequestRepository) ListDepositRequestsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.DepositRequest, error) {
	query := `
        SELECT ` + depositRequestColumns + `
        FROM deposit_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposit requests: %w", err)
	}
	return collectDepositRequests(rows)
}

func (r *PgxDepositRequestRepository) ListDepositRequestsByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.DepositRequest, error) {
	query := `
        SELECT ` + depositRequestColumns + `
        FROM deposit_requests
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposit requests: %w", err)
	}
	return collectDepositRequests(rows)
}

func collectDepositRequests(rows pgx.Rows) ([]domain.DepositRequest, error) {
	defer rows.Close()
	reqs := []domain.DepositRequest{}
	for rows.Next() {
		req, err := scanDepositRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit request row: %w", err)
		}
		reqs = append(reqs, *req)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating deposit request rows: %w", rows.Err())
	}
	return reqs, nil
}

func (r *PgxDepositRequestRepository) MarkDepositRequestProcessed(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error {
	query := `
        UPDATE deposit_requests
        SET status = $1, processed_at = $2, processed_by = $3
        WHERE request_id = $4 AND status = 'pending';
    `
	cmdTag, err := r.db.Exec(ctx, query, status, now, adminID, requestID)
	if err != nil {
		return fmt.Errorf("failed to mark deposit request processed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("deposit request %s is not pending: %w", requestID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDepositRequestRepository) CountDepositRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM deposit_requests WHERE status = $1;`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count deposit requests: %w", err)
	}
	return count, nil
}
