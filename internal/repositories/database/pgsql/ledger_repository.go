package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository persists balance-affecting events. Every write method
// runs inside one database transaction so the account update and its audit
// inserts land together or not at all.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, user_id, type, amount, status, description, created_at, processed_at, processed_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

// CommitAccrual applies one profit credit. The daily profit total accumulates
// within the UTC day of the previous accrual and resets on the first accrual
// of a new day.
func (r *PgxLedgerRepository) CommitAccrual(ctx context.Context, accrual domain.Accrual) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	userQuery := `
		UPDATE users
		SET balance = balance + $1,
		    total_profits = total_profits + $1,
		    daily_profit_total = CASE
		        WHEN last_profit_increment IS NOT NULL
		             AND (last_profit_increment AT TIME ZONE 'UTC')::date = ($2::timestamptz AT TIME ZONE 'UTC')::date
		        THEN daily_profit_total + $1
		        ELSE $1
		    END,
		    last_profit_increment = $2,
		    last_updated_at = $2
		WHERE user_id = $3
		RETURNING balance, total_deposits;
	`
	var balance, totalDeposits decimal.Decimal
	err = tx.QueryRow(ctx, userQuery, accrual.Amount, accrual.OccurredAt, accrual.UserID).Scan(&balance, &totalDeposits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s: %w", accrual.UserID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to apply accrual to user %s: %w", accrual.UserID, err)
	}

	_, err = tx.Exec(ctx, insertTransactionQuery,
		uuid.NewString(), accrual.UserID, domain.TxnProfitCredit, accrual.Amount,
		domain.StatusApproved, accrual.Description(), accrual.OccurredAt, accrual.OccurredAt, nil)
	if err != nil {
		return fmt.Errorf("failed to insert profit ledger entry: %w", err)
	}

	historyQuery := `
		INSERT INTO profit_history (entry_id, user_id, amount, plan_name, increment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, historyQuery,
		uuid.NewString(), accrual.UserID, accrual.Amount, accrual.Plan, domain.IncrementAutomatic, accrual.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to insert profit history entry: %w", err)
	}

	snap := domain.NewPortfolioSnapshot(accrual.UserID, balance, accrual.Amount, totalDeposits, accrual.OccurredAt)
	if err := upsertSnapshot(ctx, tx, snap); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// upsertSnapshot records the day's valuation; a second accrual on the same day
// accumulates the daily change and takes the fresher derived figures.
func upsertSnapshot(ctx context.Context, tx pgx.Tx, snap domain.PortfolioSnapshot) error {
	query := `
		INSERT INTO portfolio_performance (snapshot_id, user_id, date, portfolio_value, daily_change, daily_change_percent, total_roi, total_roi_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date) DO UPDATE SET
			portfolio_value = EXCLUDED.portfolio_value,
			daily_change = portfolio_performance.daily_change + EXCLUDED.daily_change,
			daily_change_percent = EXCLUDED.daily_change_percent,
			total_roi = EXCLUDED.total_roi,
			total_roi_percent = EXCLUDED.total_roi_percent;
	`
	_, err := tx.Exec(ctx, query,
		uuid.NewString(), snap.UserID, snap.Date, snap.PortfolioValue,
		snap.DailyChange, snap.DailyChangePercent, snap.TotalROI, snap.TotalROIPercent)
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio snapshot: %w", err)
	}
	return nil
}

// ApproveDeposit credits an approved deposit request.
func (r *PgxLedgerRepository) ApproveDeposit(ctx context.Context, request domain.DepositRequest, adminID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	userQuery := `
		UPDATE users
		SET balance = balance + $1, total_deposits = total_deposits + $1, last_updated_at = $2
		WHERE user_id = $3;
	`
	cmdTag, err := tx.Exec(ctx, userQuery, request.Amount, now, request.UserID)
	if err != nil {
		return fmt.Errorf("failed to credit deposit for user %s: %w", request.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", request.UserID, apperrors.ErrNotFound)
	}

	description := fmt.Sprintf("Deposit via %s", request.PaymentMethod)
	_, err = tx.Exec(ctx, insertTransactionQuery,
		uuid.NewString(), request.UserID, domain.TxnDeposit, request.Amount,
		domain.StatusApproved, description, request.CreatedAt, now, adminID)
	if err != nil {
		return fmt.Errorf("failed to insert deposit ledger entry: %w", err)
	}

	if err := markRequestProcessed(ctx, tx, "deposit_requests", request.RequestID, domain.RequestApproved, adminID, now); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ApproveWithdrawal debits an approved withdrawal request. The balance is
// re-checked under row lock; an uncoverable amount leaves the request pending.
func (r *PgxLedgerRepository) ApproveWithdrawal(ctx context.Context, request domain.WithdrawalRequest, adminID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT balance FROM users WHERE user_id = $1 FOR UPDATE;`, request.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s: %w", request.UserID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock user %s: %w", request.UserID, err)
	}
	if balance.LessThan(request.Amount) {
		return fmt.Errorf("balance %s cannot cover withdrawal %s: %w",
			balance.StringFixed(2), request.Amount.StringFixed(2), apperrors.ErrInsufficientFunds)
	}

	userQuery := `
		UPDATE users
		SET balance = balance - $1, total_withdrawals = total_withdrawals + $1, last_updated_at = $2
		WHERE user_id = $3;
	`
	if _, err := tx.Exec(ctx, userQuery, request.Amount, now, request.UserID); err != nil {
		return fmt.Errorf("failed to debit withdrawal for user %s: %w", request.UserID, err)
	}

	description := fmt.Sprintf("Withdrawal via %s", request.WithdrawalMethod)
	_, err = tx.Exec(ctx, insertTransactionQuery,
		uuid.NewString(), request.UserID, domain.TxnWithdrawal, request.Amount,
		domain.StatusApproved, description, request.CreatedAt, now, adminID)
	if err != nil {
		return fmt.Errorf("failed to insert withdrawal ledger entry: %w", err)
	}

	if err := markRequestProcessed(ctx, tx, "withdrawal_requests", request.RequestID, domain.RequestApproved, adminID, now); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// markRequestProcessed flips a pending request into its final review state.
// Concurrent approval of the same request loses here and rolls back.
func markRequestProcessed(ctx context.Context, tx pgx.Tx, table, requestID string, status domain.RequestStatus, adminID string, now time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, processed_at = $2, processed_by = $3
		WHERE request_id = $4 AND status = 'pending';
	`, table)
	cmdTag, err := tx.Exec(ctx, query, status, now, adminID, requestID)
	if err != nil {
		return fmt.Errorf("failed to mark request %s processed: %w", requestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("request %s is not pending: %w", requestID, apperrors.ErrNotFound)
	}
	return nil
}

// AdjustBalance applies a manual admin credit or debit. Profit-flagged credits
// also count toward lifetime profits and the profit history.
func (r *PgxLedgerRepository) AdjustBalance(ctx context.Context, adjustment domain.BalanceAdjustment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT balance FROM users WHERE user_id = $1 FOR UPDATE;`, adjustment.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s: %w", adjustment.UserID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock user %s: %w", adjustment.UserID, err)
	}
	if balance.Add(adjustment.Amount).IsNegative() {
		return fmt.Errorf("balance %s cannot cover debit %s: %w",
			balance.StringFixed(2), adjustment.Amount.Neg().StringFixed(2), apperrors.ErrInsufficientFunds)
	}

	creditProfit := adjustment.IsProfit && adjustment.Amount.IsPositive()
	userQuery := `
		UPDATE users
		SET balance = balance + $1,
		    total_profits = total_profits + CASE WHEN $2 THEN $1 ELSE 0 END,
		    last_updated_at = $3
		WHERE user_id = $4;
	`
	if _, err := tx.Exec(ctx, userQuery, adjustment.Amount, creditProfit, adjustment.AdjustedAt, adjustment.UserID); err != nil {
		return fmt.Errorf("failed to adjust balance for user %s: %w", adjustment.UserID, err)
	}

	_, err = tx.Exec(ctx, insertTransactionQuery,
		uuid.NewString(), adjustment.UserID, domain.TxnBalanceAdjustment, adjustment.Amount,
		domain.StatusApproved, adjustment.Description, adjustment.AdjustedAt, adjustment.AdjustedAt, adjustment.AdminID)
	if err != nil {
		return fmt.Errorf("failed to insert adjustment ledger entry: %w", err)
	}

	if creditProfit {
		historyQuery := `
			INSERT INTO profit_history (entry_id, user_id, amount, plan_name, increment_type, created_at)
			VALUES ($1, $2, $3, (SELECT investment_plan FROM users WHERE user_id = $2), $4, $5);
		`
		_, err = tx.Exec(ctx, historyQuery,
			uuid.NewString(), adjustment.UserID, adjustment.Amount, domain.IncrementManual, adjustment.AdjustedAt)
		if err != nil {
			return fmt.Errorf("failed to insert manual profit history entry: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListTransactionsByUser retrieves a user's ledger entries, newest first.
func (r *PgxLedgerRepository) ListTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT transaction_id, user_id, type, amount, status, description, created_at, processed_at, processed_by
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.Type,
			&t.Amount,
			&t.Status,
			&t.Description,
			&t.CreatedAt,
			&t.ProcessedAt,
			&t.ProcessedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}
