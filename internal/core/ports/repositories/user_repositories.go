package repositories

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserReader defines read operations for investor records
type UserReader interface {
	// FindUserByID retrieves a specific user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users, newest first.
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// FindEligibleForProfit selects the accounts the profit job may credit:
	// lifetime deposits strictly positive, and opted in when requireOptIn is set.
	FindEligibleForProfit(ctx context.Context, requireOptIn bool) ([]domain.User, error)

	// SummarizeUsers returns the user count and the sum of all balances.
	SummarizeUsers(ctx context.Context) (int, decimal.Decimal, error)
}

// UserWriter defines write operations for investor records
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfile updates mutable profile fields (name, plan, opt-in flag).
	UpdateProfile(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
