package repositories

import (
	"context"
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// DepositRequestRepository manages deposit request rows. Approval goes through
// the LedgerWriter; MarkProcessed only flips the review state (rejections).
type DepositRequestRepository interface {
	SaveDepositRequest(ctx context.Context, request domain.DepositRequest) error
	FindDepositRequestByID(ctx context.Context, requestID string) (*domain.DepositRequest, error)
	ListDepositRequestsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.DepositRequest, error)
	ListDepositRequestsByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.DepositRequest, error)
	MarkDepositRequestProcessed(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error
	CountDepositRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int, error)
}

// WithdrawalRequestRepository manages withdrawal request rows.
type WithdrawalRequestRepository interface {
	SaveWithdrawalRequest(ctx context.Context, request domain.WithdrawalRequest) error
	FindWithdrawalRequestByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	ListWithdrawalRequestsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WithdrawalRequest, error)
	ListWithdrawalRequestsByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.WithdrawalRequest, error)
	MarkWithdrawalRequestProcessed(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error
	CountWithdrawalRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int, error)
}
