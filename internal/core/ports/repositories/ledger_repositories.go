package repositories

import (
	"context"
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// LedgerWriter persists balance-affecting events. Each method runs as a single
// database transaction per account: the balance update and its audit inserts
// either all apply or none do.
type LedgerWriter interface {
	// CommitAccrual applies one profit credit: user balance, lifetime and daily
	// profit totals, last-accrual timestamp, a profit_credit ledger entry, a
	// profit history entry, and the day's portfolio snapshot.
	CommitAccrual(ctx context.Context, accrual domain.Accrual) error

	// ApproveDeposit credits an approved deposit request: user balance and
	// lifetime deposit total, a deposit ledger entry, and the request status.
	ApproveDeposit(ctx context.Context, request domain.DepositRequest, adminID string, now time.Time) error

	// ApproveWithdrawal debits an approved withdrawal request after verifying
	// the balance covers it; returns apperrors.ErrInsufficientFunds otherwise.
	ApproveWithdrawal(ctx context.Context, request domain.WithdrawalRequest, adminID string, now time.Time) error

	// AdjustBalance applies a manual admin credit or debit with its
	// balance_adjustment ledger entry.
	AdjustBalance(ctx context.Context, adjustment domain.BalanceAdjustment) error
}

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// ListTransactionsByUser retrieves a user's ledger entries, newest first.
	ListTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
}

// LedgerRepositoryFacade combines ledger reads and writes with transaction
// management for callers that need all of it.
type LedgerRepositoryFacade interface {
	LedgerWriter
	TransactionReader
	TransactionManager
}
