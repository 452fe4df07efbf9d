package services

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// TransactionSvcFacade reads an investor's ledger.
type TransactionSvcFacade interface {
	// ListForUser retrieves a user's ledger entries, newest first.
	ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
}

// DepositSvcFacade manages the deposit request lifecycle.
type DepositSvcFacade interface {
	// CreateRequest stores a new pending deposit request and notifies support
	// by email on a best-effort basis.
	CreateRequest(ctx context.Context, userID string, req dto.CreateDepositRequest) (*domain.DepositRequest, error)

	// ListForUser retrieves the user's own requests, newest first.
	ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.DepositRequest, error)

	// ListByStatus retrieves requests in a review state, for admins.
	ListByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.DepositRequest, error)

	// Approve credits the request atomically and marks it approved.
	Approve(ctx context.Context, requestID, adminID string) error

	// Reject marks the request rejected without touching balances.
	Reject(ctx context.Context, requestID, adminID string) error
}

// WithdrawalSvcFacade manages the withdrawal request lifecycle.
type WithdrawalSvcFacade interface {
	CreateRequest(ctx context.Context, userID string, req dto.CreateWithdrawalRequest) (*domain.WithdrawalRequest, error)

	ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.WithdrawalRequest, error)

	ListByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.WithdrawalRequest, error)

	// Approve debits the request atomically; fails with ErrInsufficientFunds
	// when the balance cannot cover it.
	Approve(ctx context.Context, requestID, adminID string) error

	Reject(ctx context.Context, requestID, adminID string) error
}
