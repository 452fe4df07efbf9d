package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const userColumns = `user_id, email, full_name, password_hash, balance, total_deposits,
		total_withdrawals, total_profits, daily_profit_total, last_profit_increment,
		investment_plan, auto_profit_enabled, is_admin, created_at, last_updated_at`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.Balance,
		&u.TotalDeposits,
		&u.TotalWithdrawals,
		&u.TotalProfits,
		&u.DailyProfitTotal,
		&u.LastProfitIncrement,
		&u.InvestmentPlan,
		&u.AutoProfitEnabled,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUserRows(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()
	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Balance,
		user.TotalDeposits,
		user.TotalWithdrawals,
		user.TotalProfits,
		user.DailyProfitTotal,
		user.LastProfitIncrement,
		user.InvestmentPlan,
		user.AutoProfitEnabled,
		user.IsAdmin,
		user.CreatedAt,
		user.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT ` + userColumns + `
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return scanUserRows(rows)
}

// FindEligibleForProfit selects the accounts the profit job may credit:
// lifetime deposits strictly positive, and opted in when requireOptIn is set.
func (r *PgxUserRepository) FindEligibleForProfit(ctx context.Context, requireOptIn bool) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE total_deposits > 0 AND ($1 = false OR auto_profit_enabled = true)
        ORDER BY user_id;
    `
	rows, err := r.db.Query(ctx, query, requireOptIn)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible users: %w", err)
	}
	return scanUserRows(rows)
}

func (r *PgxUserRepository) SummarizeUsers(ctx context.Context) (int, decimal.Decimal, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(balance), 0) FROM users;`
	var count int
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to summarize users: %w", err)
	}
	return count, total, nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET full_name = $1, investment_plan = $2, auto_profit_enabled = $3, last_updated_at = $4
        WHERE user_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.FullName,
		user.InvestmentPlan,
		user.AutoProfitEnabled,
		user.LastUpdatedAt,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
